package intent

import (
	"regexp"
	"strings"
)

// category is one entry of the rule cascade: a coarse intent plus the
// patterns that select it and a builder for the resulting ParsedIntent.
// The submatch passed to build is the first pattern's capture (may be "").
type category struct {
	kind     Kind
	patterns []*regexp.Regexp
	build    func(capture string) ParsedIntent
}

// ruleCascade is evaluated in order; the first category with any
// matching pattern wins, pre-empting later categories even when their
// patterns would also match. Priority: help > spaces > create > search.
var ruleCascade = []category{
	{
		kind: KindHelp,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^\s*help\s*[!.?]*\s*$`),
			regexp.MustCompile(`(?i)\bwhat can you do\b`),
			regexp.MustCompile(`(?i)\bhow (?:do|can) (?:i|you)\b`),
		},
		build: func(string) ParsedIntent {
			return ParsedIntent{
				Kind:       KindHelp,
				Answer:     HelpAnswer,
				Confidence: ConfidenceStrong,
				Source:     SourceRules,
			}
		},
	},
	{
		kind: KindListSpaces,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:list|show|view|display|get)\b.*\bspaces?\b`),
			regexp.MustCompile(`(?i)\bwhat spaces\b`),
			regexp.MustCompile(`(?i)\bmy spaces\b`),
			regexp.MustCompile(`(?i)^\s*spaces\s*$`),
		},
		build: func(string) ParsedIntent {
			return ParsedIntent{
				Kind:       KindListSpaces,
				Confidence: ConfidenceStrong,
				Source:     SourceRules,
			}
		},
	},
	{
		kind: KindCreate,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:create|make|add|new)\b.*?\bpage\b\s+(?:called|named|titled|about|on|for)\s+(.+)$`),
			regexp.MustCompile(`(?i)\b(?:create|make|add)\s+(?:a\s+|an\s+|the\s+)?(.+?)\s+page\s*$`),
			regexp.MustCompile(`(?i)\b(?:create|make|add|new)\b.*?\bpage\b`),
		},
		build: func(capture string) ParsedIntent {
			title := normalizeTitle(capture)
			if title == "" {
				title = "New Page"
			}
			return ParsedIntent{
				Kind:       KindCreate,
				Title:      title,
				Content:    templateContent(title),
				Confidence: ConfidenceMatched,
				Source:     SourceRules,
			}
		},
	},
	{
		kind: KindSearch,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:search|find|look up|look for)\b\s*(?:for\s+)?(.+)$`),
			regexp.MustCompile(`(?i)\bwhere(?:'s| is)\b\s+(.+)$`),
		},
		build: func(capture string) ParsedIntent {
			return ParsedIntent{
				Kind:       KindSearch,
				Query:      strings.TrimSpace(capture),
				Confidence: ConfidenceMatched,
				Source:     SourceRules,
			}
		},
	},
}

// MatchRules classifies a message with the deterministic rule cascade.
// It is a pure function of its input and cannot fail; unmatched input
// yields an Unknown intent with a fixed help-style answer.
func MatchRules(message string) ParsedIntent {
	msg := strings.TrimSpace(message)

	for _, cat := range ruleCascade {
		for _, p := range cat.patterns {
			m := p.FindStringSubmatch(msg)
			if m == nil {
				continue
			}
			capture := ""
			if len(m) > 1 {
				capture = m[1]
			}
			return cat.build(capture)
		}
	}

	return ParsedIntent{
		Kind:       KindUnknown,
		Answer:     UnknownAnswer,
		Confidence: ConfidenceUnmatched,
		Source:     SourceRules,
	}
}

var leadingArticle = regexp.MustCompile(`(?i)^(?:a|an|the)\s+`)

// normalizeTitle trims the captured title, strips a leading article and
// title-cases it word by word.
func normalizeTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, `"'`)
	title = leadingArticle.ReplaceAllString(title, "")
	if title == "" {
		return ""
	}

	words := strings.Fields(title)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// templateContent picks a deterministic content skeleton by keyword
// sniffing the title. This is a fixed lookup, not a generative step.
func templateContent(title string) string {
	lower := strings.ToLower(title)

	switch {
	case strings.Contains(lower, "meeting"):
		return "<h2>Attendees</h2><p></p>" +
			"<h2>Agenda</h2><ul><li></li></ul>" +
			"<h2>Notes</h2><p></p>" +
			"<h2>Action Items</h2><ul><li></li></ul>"
	case strings.Contains(lower, "retro"):
		return "<h2>What Went Well</h2><ul><li></li></ul>" +
			"<h2>What Could Improve</h2><ul><li></li></ul>" +
			"<h2>Action Items</h2><ul><li></li></ul>"
	case strings.Contains(lower, "status"), strings.Contains(lower, "weekly"):
		return "<h2>Highlights</h2><ul><li></li></ul>" +
			"<h2>In Progress</h2><ul><li></li></ul>" +
			"<h2>Blockers</h2><ul><li></li></ul>"
	default:
		return "<h2>Overview</h2><p></p><h2>Details</h2><p></p>"
	}
}
