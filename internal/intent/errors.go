package intent

import "errors"

var (
	// ErrMissingCredential means no usable API key was provided.
	ErrMissingCredential = errors.New("missing API key")

	// ErrUpstreamAuth means the provider rejected the key.
	ErrUpstreamAuth = errors.New("provider rejected API key")

	// ErrUpstream is any other non-success provider response.
	ErrUpstream = errors.New("provider request failed")

	// ErrNetwork is a transport failure reaching the provider.
	ErrNetwork = errors.New("provider unreachable")

	// ErrMalformedResponse means a success response carried no content.
	// Only raised in chat mode; in parse mode missing structure is
	// reinterpreted as a conversational answer instead.
	ErrMalformedResponse = errors.New("provider returned no content")
)
