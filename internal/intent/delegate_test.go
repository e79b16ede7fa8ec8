package intent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"confluence-assistant/pkg/openai"
)

func TestDelegateResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Credential", func(t *testing.T) {
		d := NewDelegate(&mockLLM{}, &mockLogger{})
		_, err := d.Resolve(ctx, "hello", "  \u200b ", ModeParse)
		if !errors.Is(err, ErrMissingCredential) {
			t.Errorf("expected ErrMissingCredential, got %v", err)
		}
	})

	t.Run("Key Cleaning Strips Zero-Width Chars", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"spaces"}`}
		d := NewDelegate(llm, &mockLogger{})
		key := " \ufeffsk-\u200ba\u200cb\u200dc "
		if _, err := d.Resolve(ctx, "x", key, ModeParse); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if llm.lastKey != "sk-abc" {
			t.Errorf("expected cleaned key, got %q", llm.lastKey)
		}
	})

	t.Run("Parse JSON Create", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"create","title":"Roadmap 2026","content":"<h1>Roadmap</h1>"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, err := d.Resolve(ctx, "create roadmap page", "key", ModeParse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != KindCreate || out.Title != "Roadmap 2026" {
			t.Errorf("unexpected intent: %+v", out)
		}
		if out.Source != SourceAI {
			t.Error("delegate results must be tagged with the ai source")
		}
	})

	t.Run("Code Fence Stripped", func(t *testing.T) {
		llm := &mockLLM{content: "```json\n{\"type\":\"search\",\"query\":\"kpis\"}\n```"}
		d := NewDelegate(llm, &mockLogger{})
		out, err := d.Resolve(ctx, "find kpis", "key", ModeParse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != KindSearch || out.Query != "kpis" {
			t.Errorf("unexpected intent: %+v", out)
		}
	})

	t.Run("No JSON Becomes Chat", func(t *testing.T) {
		llm := &mockLLM{content: "Sure! You can create pages by asking me."}
		l := &mockLogger{}
		d := NewDelegate(llm, l)
		out, err := d.Resolve(ctx, "what is confluence", "key", ModeParse)
		if err != nil {
			t.Fatalf("absence of JSON must not be an error, got %v", err)
		}
		if out.Kind != KindChat {
			t.Fatalf("expected chat, got %s", out.Kind)
		}
		if out.Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %v", out.Confidence)
		}
		if out.Answer != "Sure! You can create pages by asking me." {
			t.Errorf("unexpected answer %q", out.Answer)
		}
		if l.debugs == 0 {
			t.Error("reinterpretation should be logged")
		}
	})

	t.Run("Empty Content In Parse Mode Degrades", func(t *testing.T) {
		llm := &mockLLM{content: ""}
		l := &mockLogger{}
		d := NewDelegate(llm, l)
		out, err := d.Resolve(ctx, "x", "key", ModeParse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != KindChat || out.Answer != UnknownAnswer {
			t.Errorf("expected generic chat answer, got %+v", out)
		}
		if l.warns == 0 {
			t.Error("empty completion should be logged")
		}
	})

	t.Run("Prefers Last Balanced Span", func(t *testing.T) {
		// A document that itself contains a JSON-looking object must not
		// shadow the intended trailing payload.
		llm := &mockLLM{content: `The doc mentions {"config": true} but here is the page:
{"type":"create","title":"Config Guide","content":"<p>x</p>"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, err := d.Resolve(ctx, "convert", "key", ModeParse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Title != "Config Guide" {
			t.Errorf("expected intended payload, got %+v", out)
		}
	})

	t.Run("Title Sanitization", func(t *testing.T) {
		wantPrefix := FallbackTitlePrefix + time.Now().Format("2006-01-02")
		for _, badTitle := range []string{"", "this", "Untitled", "document", "ab", "Page for this document"} {
			llm := &mockLLM{content: `{"type":"create","title":"` + badTitle + `","content":"<p>x</p>"}`}
			d := NewDelegate(llm, &mockLogger{})
			out, err := d.Resolve(ctx, "convert", "key", ModeParse)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Title == badTitle {
				t.Errorf("title %q must be replaced", badTitle)
			}
			if out.Title != wantPrefix {
				t.Errorf("expected fallback %q, got %q", wantPrefix, out.Title)
			}
		}
	})

	t.Run("Plain Text Content Wrapped", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"create","title":"Notes","content":"first paragraph\n\nsecond paragraph"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, err := d.Resolve(ctx, "convert", "key", ModeParse)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "<p>first paragraph</p><p>second paragraph</p>"
		if out.Content != want {
			t.Errorf("expected %q, got %q", want, out.Content)
		}
	})

	t.Run("Empty Create Content Gets Placeholder", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"create","title":"Empty Page"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, _ := d.Resolve(ctx, "convert", "key", ModeParse)
		if out.Content != PlaceholderContent {
			t.Errorf("expected placeholder content, got %q", out.Content)
		}
	})

	t.Run("Missing Type Defaults To Create", func(t *testing.T) {
		llm := &mockLLM{content: `{"title":"Some Page","content":"<p>x</p>"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, _ := d.Resolve(ctx, "convert", "key", ModeParse)
		if out.Kind != KindCreate {
			t.Errorf("expected create bias, got %s", out.Kind)
		}
	})

	t.Run("Document Mode Parameters", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"create","title":"Doc","content":"<p>x</p>"}`}
		d := NewDelegate(llm, &mockLogger{})
		msg := "DOCUMENT PROCESSING REQUEST\n\nDocument content: ..."
		d.Resolve(ctx, msg, "key", ModeParse)
		if llm.lastReq.Temperature != DocumentTemperature {
			t.Errorf("expected document temperature, got %v", llm.lastReq.Temperature)
		}
		if llm.lastReq.MaxTokens != DocumentMaxTokens {
			t.Errorf("expected document token budget, got %v", llm.lastReq.MaxTokens)
		}
		if llm.lastReq.Messages[0].Content != SystemPromptDocument {
			t.Error("expected document system prompt")
		}
	})

	t.Run("Command Mode Parameters", func(t *testing.T) {
		llm := &mockLLM{content: `{"type":"spaces"}`}
		d := NewDelegate(llm, &mockLogger{})
		d.Resolve(ctx, "list spaces", "key", ModeParse)
		if llm.lastReq.MaxTokens != CommandMaxTokens {
			t.Errorf("expected command token budget, got %v", llm.lastReq.MaxTokens)
		}
		if llm.lastReq.Messages[0].Content != SystemPromptCommand {
			t.Error("expected command system prompt")
		}
	})

	t.Run("Chat Mode Returns Raw Text", func(t *testing.T) {
		llm := &mockLLM{content: `{"looks":"like json but chat mode ignores it"}`}
		d := NewDelegate(llm, &mockLogger{})
		out, err := d.Resolve(ctx, "tell me a joke", "key", ModeChat)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Kind != KindChat || !strings.Contains(out.Answer, "chat mode ignores it") {
			t.Errorf("chat mode must not attempt JSON extraction: %+v", out)
		}
		if llm.lastReq.Messages[0].Content != SystemPromptChat {
			t.Error("expected chat system prompt")
		}
	})

	t.Run("Upstream Auth Error", func(t *testing.T) {
		llm := &mockLLM{err: &openai.APIError{StatusCode: 401, Message: "bad key"}}
		d := NewDelegate(llm, &mockLogger{})
		_, err := d.Resolve(ctx, "x", "key", ModeParse)
		if !errors.Is(err, ErrUpstreamAuth) {
			t.Errorf("expected ErrUpstreamAuth, got %v", err)
		}
	})

	t.Run("Upstream Error", func(t *testing.T) {
		llm := &mockLLM{err: &openai.APIError{StatusCode: 500, Message: "boom"}}
		d := NewDelegate(llm, &mockLogger{})
		_, err := d.Resolve(ctx, "x", "key", ModeParse)
		if !errors.Is(err, ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("Network Error", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("dial tcp: connection refused")}
		d := NewDelegate(llm, &mockLogger{})
		_, err := d.Resolve(ctx, "x", "key", ModeParse)
		if !errors.Is(err, ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("Empty Content In Chat Mode Is Malformed", func(t *testing.T) {
		llm := &mockLLM{content: ""}
		d := NewDelegate(llm, &mockLogger{})
		_, err := d.Resolve(ctx, "x", "key", ModeChat)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})
}
