package intent

import (
	"context"

	"confluence-assistant/pkg/openai"
)

// mockLogger counts Debugf/Warnf calls and discards the rest.
type mockLogger struct {
	debugs int
	warns  int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any) {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {
	m.debugs++
}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warns++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockLLM returns a canned reply or error and records the last request.
type mockLLM struct {
	content string
	err     error
	lastReq *openai.Request
	lastKey string
}

func (m *mockLLM) ChatCompletion(ctx context.Context, apiKey string, req *openai.Request) (*openai.Response, error) {
	m.lastReq = req
	m.lastKey = apiKey
	if m.err != nil {
		return nil, m.err
	}
	return &openai.Response{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: m.content}},
		},
	}, nil
}

func (m *mockLLM) Model() string { return "test-model" }
