package openai

import "context"

// IOpenAI defines the interface for the chat-completions client.
type IOpenAI interface {
	ChatCompletion(ctx context.Context, apiKey string, req *Request) (*Response, error)
	Model() string
}
