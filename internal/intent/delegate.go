package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"confluence-assistant/pkg/log"
	"confluence-assistant/pkg/openai"
)

// Delegate converts free-form answers from a chat-completion service
// into validated ParsedIntents. It performs exactly one outbound call
// per invocation; there is no retry.
type Delegate struct {
	llm openai.IOpenAI
	l   log.Logger
}

// NewDelegate creates a new AI delegate.
func NewDelegate(llm openai.IOpenAI, l log.Logger) *Delegate {
	return &Delegate{llm: llm, l: l}
}

// aiPayload is the untrusted JSON object embedded in the provider's
// reply. Every field is optional; validation happens after parsing.
type aiPayload struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Query   string `json:"query"`
	Space   string `json:"space"`
	Answer  string `json:"answer"`
}

// Resolve invokes the provider and normalizes its answer.
func (d *Delegate) Resolve(ctx context.Context, message, apiKey string, mode Mode) (ParsedIntent, error) {
	key := cleanAPIKey(apiKey)
	if key == "" {
		return ParsedIntent{}, ErrMissingCredential
	}

	req := d.buildRequest(message, mode)

	resp, err := d.llm.ChatCompletion(ctx, key, req)
	if err != nil {
		return ParsedIntent{}, mapProviderError(err)
	}

	raw := resp.Content()
	if raw == "" {
		if mode == ModeChat {
			return ParsedIntent{}, ErrMalformedResponse
		}
		// Parse mode degrades to a conversational non-answer instead of
		// failing; the facade would otherwise fall back anyway.
		d.l.Warnf(ctx, "intent delegate: empty completion, answering generically")
		raw = UnknownAnswer
	}

	if mode == ModeChat {
		return ParsedIntent{
			Kind:       KindChat,
			Answer:     raw,
			Confidence: ConfidenceStrong,
			Source:     SourceAI,
		}, nil
	}

	payload, ok := extractJSON(raw)
	if !ok {
		// No structured output is not an error: the reply is treated as
		// a conversational answer.
		d.l.Debugf(ctx, "intent delegate: no JSON in completion, treating as chat answer")
		return ParsedIntent{
			Kind:       KindChat,
			Answer:     strings.TrimSpace(stripCodeFences(raw)),
			Confidence: ConfidenceStrong,
			Source:     SourceAI,
		}, nil
	}

	return d.normalize(payload), nil
}

// buildRequest selects the system prompt and generation parameters.
// Document conversion runs colder and with a larger token budget than
// command parsing.
func (d *Delegate) buildRequest(message string, mode Mode) *openai.Request {
	systemPrompt := SystemPromptCommand
	temperature := CommandTemperature
	maxTokens := CommandMaxTokens

	switch {
	case mode == ModeChat:
		systemPrompt = SystemPromptChat
		temperature = ChatTemperature
		maxTokens = ChatMaxTokens
	case isDocumentRequest(message):
		systemPrompt = SystemPromptDocument
		temperature = DocumentTemperature
		maxTokens = DocumentMaxTokens
	}

	return &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// normalize applies the validation and sanitization rules to the
// untrusted payload.
func (d *Delegate) normalize(p aiPayload) ParsedIntent {
	// Absent type is a deliberate bias toward create: ambiguous AI
	// output is treated as an attempt to create a page.
	kind := KindCreate
	switch strings.ToLower(strings.TrimSpace(p.Type)) {
	case "search":
		kind = KindSearch
	case "spaces", "list_spaces", "listspaces":
		kind = KindListSpaces
	case "help":
		kind = KindHelp
	case "chat", "conversation", "answer":
		kind = KindChat
	}

	out := ParsedIntent{
		Kind:       kind,
		Space:      strings.TrimSpace(p.Space),
		Confidence: ConfidenceStrong,
		Source:     SourceAI,
	}

	switch kind {
	case KindCreate:
		out.Title = sanitizeTitle(p.Title)
		out.Content = ensureHTML(p.Content)
		if out.Content == "" {
			out.Content = PlaceholderContent
		}
	case KindSearch:
		out.Query = strings.TrimSpace(p.Query)
	case KindHelp, KindChat:
		out.Answer = strings.TrimSpace(p.Answer)
		if out.Answer == "" {
			out.Answer = UnknownAnswer
		}
	}

	return out
}

// isDocumentRequest reports whether the outgoing message was produced by
// the document-processing template.
func isDocumentRequest(message string) bool {
	for _, marker := range documentMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// cleanAPIKey strips whitespace and zero-width characters that commonly
// sneak into copy-pasted keys.
func cleanAPIKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
}

// stripCodeFences removes markdown code-fence wrappers (```json ... ```).
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON locates a balanced {...} span in the text and parses it.
// When several balanced spans exist (e.g. the embedded document itself
// contains JSON-looking text), later spans are preferred: the intended
// object is instructed to come last, so scanning candidates from the
// end survives delimiter collisions.
func extractJSON(raw string) (aiPayload, bool) {
	text := stripCodeFences(raw)

	var fallback *aiPayload
	spans := balancedBraceSpans(text)
	for i := len(spans) - 1; i >= 0; i-- {
		var payload aiPayload
		if err := json.Unmarshal([]byte(spans[i]), &payload); err != nil {
			continue
		}
		if payload.Type != "" || payload.Title != "" || payload.Content != "" ||
			payload.Query != "" || payload.Answer != "" {
			return payload, true
		}
		// Parseable but carries none of our fields; remember the last
		// such span in case nothing better turns up.
		if fallback == nil {
			p := payload
			fallback = &p
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return aiPayload{}, false
}

// balancedBraceSpans returns all top-level balanced {...} substrings,
// tracking JSON string literals so braces inside strings don't count.
func balancedBraceSpans(text string) []string {
	var spans []string
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					spans = append(spans, text[start:i+1])
					start = -1
				}
			}
		}
	}
	return spans
}

// sanitizeTitle replaces unusable AI-returned titles with a dated
// fallback. Unusable: empty, "this"/"document"/"untitled" (any case),
// anything containing "for this", or shorter than 3 characters.
func sanitizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	lower := strings.ToLower(title)

	bad := lower == "" || lower == "this" || lower == "document" || lower == "untitled" ||
		strings.Contains(lower, "for this") || len([]rune(title)) < 3
	if bad {
		return FallbackTitlePrefix + time.Now().Format("2006-01-02")
	}
	return title
}

// ensureHTML guarantees the content carries HTML markup: plain text is
// split on blank lines and each paragraph wrapped in <p> tags, order
// preserved.
func ensureHTML(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	if strings.Contains(content, "<") {
		return content
	}

	var b strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(&b, "<p>%s</p>", para)
	}
	return b.String()
}

// mapProviderError translates transport-level failures into the
// delegate's error taxonomy.
func mapProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsAuth() {
			return fmt.Errorf("%w: %s", ErrUpstreamAuth, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d", ErrUpstream, apiErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
