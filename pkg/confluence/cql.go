package confluence

import "strings"

// BuildSearchCQL builds a CQL expression for a page text search,
// optionally scoped to one space. Free-text terms are quoted, with
// backslashes and double quotes escaped so user input cannot break out
// of the string literal.
func BuildSearchCQL(query, spaceKey string) string {
	clauses := []string{"type = page"}

	if q := strings.TrimSpace(query); q != "" {
		clauses = append(clauses, `text ~ "`+escapeCQLString(q)+`"`)
	}

	if key := strings.TrimSpace(spaceKey); key != "" {
		clauses = append(clauses, `space = "`+escapeCQLString(key)+`"`)
	}

	return strings.Join(clauses, " AND ")
}

func escapeCQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
