package usecase

import (
	"fmt"
	"strings"

	"confluence-assistant/pkg/confluence"
)

const (
	replyNotConfigured = "Confluence is not configured yet. Open Settings and add your site URL, email and API token first."
	replyNoSpace       = "I need a space for that page. Mention one (e.g. \"in the DOCS space\") or set a default space in Settings."
)

func replyPageCreated(page confluence.Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Created \"%s\" in the %s space.", page.Title, page.SpaceKey)
	if page.Link != "" {
		fmt.Fprintf(&b, "\n%s", page.Link)
	}
	return b.String()
}

func replySearchResults(query string, pages []confluence.Page) string {
	if len(pages) == 0 {
		return fmt.Sprintf("No pages matched \"%s\".", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d page(s) for \"%s\":\n", len(pages), query)
	for _, page := range pages {
		fmt.Fprintf(&b, "- %s", page.Title)
		if page.SpaceKey != "" {
			fmt.Fprintf(&b, " (%s)", page.SpaceKey)
		}
		if page.Link != "" {
			fmt.Fprintf(&b, "\n  %s", page.Link)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func replySpaces(spaces []confluence.Space) string {
	if len(spaces) == 0 {
		return "Your Confluence site has no spaces I can see."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have access to %d space(s):\n", len(spaces))
	for _, space := range spaces {
		fmt.Fprintf(&b, "- %s (%s)\n", space.Name, space.Key)
	}
	return strings.TrimRight(b.String(), "\n")
}
