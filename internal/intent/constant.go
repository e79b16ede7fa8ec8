package intent

// Match-strength confidences for the rule matcher.
const (
	ConfidenceStrong    = 0.9 // help, spaces
	ConfidenceMatched   = 0.8 // create, search
	ConfidenceUnmatched = 0.3 // unknown
)

// Generation parameters per delegate mode. Document conversion wants
// deterministic, complete transcription; command parsing wants short
// structured answers.
const (
	CommandTemperature = 0.1
	CommandMaxTokens   = 1024

	DocumentTemperature = 0.05
	DocumentMaxTokens   = 4096

	ChatTemperature = 0.7
	ChatMaxTokens   = 1024
)

// FallbackTitlePrefix prefixes the generated title used when the AI
// returns an unusable one. The full value is "Imported Document - <date>".
const FallbackTitlePrefix = "Imported Document - "

// PlaceholderContent is substituted when a create intent would otherwise
// carry no content at all.
const PlaceholderContent = "<p>Content to be added.</p>"

// DefaultDocumentRequest stands in for an empty user message when a
// document is attached.
const DefaultDocumentRequest = "Create a Confluence page from this document"

// Delimiters around the embedded document text in the
// document-processing template. Fixed so an auditor can locate exactly
// what was sent. The document text itself is NOT escaped; extraction
// robustness is the delegate's job.
const (
	DocumentBeginDelimiter = "----- BEGIN DOCUMENT -----"
	DocumentEndDelimiter   = "----- END DOCUMENT -----"
)

// documentMarkers flag a message as a document-processing request when
// selecting the delegate's system prompt.
var documentMarkers = []string{
	"DOCUMENT PROCESSING REQUEST",
	"[User uploaded",
	"Document content:",
	"File content:",
}

// UnknownAnswer is the fixed help-style reply for unmatched messages.
const UnknownAnswer = `I didn't quite catch that. Here is what I can do:
- "create a page called <title>" to create a Confluence page
- "search for <text>" to search pages
- "list spaces" to show your spaces
- "help" to see this message again`

// HelpAnswer is the reply for help requests.
const HelpAnswer = `Here is what I can do:
- Create pages: "create a page called Project Roadmap"
- Search pages: "search for onboarding checklist"
- List spaces: "show my spaces"
- Upload a document and say "turn this into a page"`

// SystemPromptChat is the conversational system prompt.
const SystemPromptChat = `You are a helpful assistant for a Confluence workspace. Answer the user's question conversationally and concisely. Do not return JSON.`

// SystemPromptCommand is the general command-parsing system prompt.
const SystemPromptCommand = `You are a command parser for a Confluence assistant. Classify the user's message into one of: create, search, spaces, help, chat.

Return a single JSON object:
{"type": "create|search|spaces|help|chat", "title": "...", "content": "...", "query": "...", "answer": "..."}

Rules:
- "create": set "title" and "content" (content as HTML).
- "search": set "query" to the search text.
- "spaces": no extra fields.
- "help" or "chat": set "answer" to your reply.
- Omit fields that do not apply. Return ONLY the JSON object, no markdown, no explanation.`

// SystemPromptDocument is the strict document-conversion system prompt.
const SystemPromptDocument = `You are a document-to-Confluence converter. The user message contains a full document between fixed delimiter lines.

Rules:
1. Include EVERYTHING from the document, verbatim. Do NOT summarize, shorten, or omit any part.
2. Format the content as HTML using only these tags: <h1> <h2> <h3> <p> <ul> <ol> <li> <strong> <em> <table> <tr> <th> <td> <code> <pre>.
3. Output must be a single JSON object with exactly these keys: "type", "title", "content". "type" is always "create".

Example output:
{"type": "create", "title": "Q3 Planning Notes", "content": "<h1>Q3 Planning Notes</h1><p>...</p>"}

Return ONLY the JSON object.`
