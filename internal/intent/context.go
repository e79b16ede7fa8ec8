package intent

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"confluence-assistant/internal/model"
)

// vagueReference matches pronouns and generic noun phrases that point at
// an attachment without naming it ("summarize it", "convert the pdf").
var vagueReference = regexp.MustCompile(`(?i)\b(?:this|it|that|the\s+(?:file|document|pdf|content))\b`)

// BuildOutboundMessage produces the single string sent downstream. With
// no attachment the message passes through unchanged. With an
// attachment, a vague or empty message selects the document-processing
// template; a specific instruction selects the pass-through template so
// the user's literal request is preserved. The attachment is only read,
// never mutated, and the result is rebuilt fresh per call.
func BuildOutboundMessage(userMessage string, doc *model.UploadedDocument) string {
	if doc == nil {
		return userMessage
	}

	request := strings.TrimSpace(userMessage)
	if request == "" {
		return documentTemplate(doc, DefaultDocumentRequest)
	}
	if vagueReference.MatchString(request) {
		return documentTemplate(doc, request)
	}
	return passThroughTemplate(doc, request)
}

// documentTemplate embeds the full document between fixed delimiter
// lines. The document text is not escaped; a document containing the
// delimiters themselves is a known limitation handled on the extraction
// side.
func documentTemplate(doc *model.UploadedDocument, request string) string {
	defaultTitle := strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName))

	return fmt.Sprintf(`DOCUMENT PROCESSING REQUEST

[User uploaded a document: %s]
Default title: %s

Document content:
%s
%s
%s

User request: %s

Convert the document above into a Confluence page. Include every part of the document, do not summarize. Use only HTML formatting. Respond with a single JSON object with exactly "type", "title" and "content", e.g. {"type":"create","title":"%s","content":"<h1>...</h1><p>...</p>"}.`,
		doc.FileName,
		defaultTitle,
		DocumentBeginDelimiter,
		doc.Content,
		DocumentEndDelimiter,
		request,
		defaultTitle,
	)
}

// passThroughTemplate prefixes the attachment before the literal user
// request without forcing a "create" framing.
func passThroughTemplate(doc *model.UploadedDocument, request string) string {
	return fmt.Sprintf(`[User uploaded a document: %s]

File content:
%s

User request: %s`,
		doc.FileName,
		doc.Content,
		request,
	)
}
