package intent

// Kind is the caller-facing classification of what the user wants done.
type Kind string

const (
	KindCreate     Kind = "create"
	KindSearch     Kind = "search"
	KindListSpaces Kind = "spaces"
	KindHelp       Kind = "help"
	KindChat       Kind = "chat"
	KindUnknown    Kind = "unknown"
)

// Source records which resolver produced a ParsedIntent. Callers do not
// branch on it; it exists so tests can tell a degraded (rule-based)
// response from an AI one.
type Source string

const (
	SourceAI    Source = "ai"
	SourceRules Source = "rules"
)

// Mode selects the AI delegate's behavior.
type Mode string

const (
	ModeParse Mode = "parse"
	ModeChat  Mode = "chat"
)

// ParsedIntent is the unit of output from the resolution pipeline.
// Exactly one of {Title+Content, Query, Answer} is meaningfully
// populated depending on Kind.
type ParsedIntent struct {
	Kind       Kind
	Title      string
	Content    string
	Query      string
	Space      string
	Answer     string
	Confidence float64
	Source     Source
}
