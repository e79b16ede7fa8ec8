package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"confluence-assistant/pkg/openai"
)

func TestChatCompletion(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth != "Bearer good-key" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "Incorrect API key provided", "type": "invalid_request_error"},
			})
			return
		}

		var req openai.Request
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		json.NewEncoder(w).Encode(openai.Response{
			Model: req.Model,
			Choices: []openai.Choice{
				{Message: openai.Message{Role: "assistant", Content: "hello back"}},
			},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := openai.New(openai.Config{BaseURL: ts.URL})
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		resp, err := client.ChatCompletion(ctx, "good-key", &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content() != "hello back" {
			t.Errorf("unexpected content: %q", resp.Content())
		}
	})

	t.Run("Default Model Applied", func(t *testing.T) {
		req := &openai.Request{Messages: []openai.Message{{Role: "user", Content: "x"}}}
		if _, err := client.ChatCompletion(ctx, "good-key", req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Model != openai.DefaultModel {
			t.Errorf("expected default model to be filled, got %q", req.Model)
		}
	})

	t.Run("Auth Error", func(t *testing.T) {
		_, err := client.ChatCompletion(ctx, "bad-key", &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hello"}},
		})
		var apiErr *openai.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if !apiErr.IsAuth() {
			t.Errorf("expected auth-class error, got status %d", apiErr.StatusCode)
		}
	})

	t.Run("Network Error", func(t *testing.T) {
		dead := openai.New(openai.Config{BaseURL: "http://127.0.0.1:1"})
		_, err := dead.ChatCompletion(ctx, "good-key", &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hello"}},
		})
		if err == nil {
			t.Fatal("expected transport error")
		}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			t.Errorf("transport failure must not be an APIError")
		}
	})

	t.Run("Empty Choices Content", func(t *testing.T) {
		var resp *openai.Response
		if resp.Content() != "" {
			t.Errorf("nil response must yield empty content")
		}
	})
}
