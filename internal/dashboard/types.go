package dashboard

import "confluence-assistant/pkg/confluence"

// SpacePages is one space's page count.
type SpacePages struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Pages int    `json:"pages"`
}

// Contributor is one account's page count across the surveyed spaces.
type Contributor struct {
	Name  string `json:"name"`
	Pages int    `json:"pages"`
}

// ConfluenceStats summarizes the user's Confluence site. Page-level
// numbers cover the surveyed spaces only (the survey is capped to keep
// the request count bounded).
type ConfluenceStats struct {
	Spaces          int               `json:"spaces"`
	Pages           int               `json:"pages"`
	PagesPerSpace   []SpacePages      `json:"pages_per_space"`
	TopContributors []Contributor     `json:"top_contributors"`
	RecentlyUpdated []confluence.Page `json:"recently_updated"`
}

// Stats is one user's activity summary. Confluence is nil when the
// integration is not configured or unreachable.
type Stats struct {
	Conversations  int            `json:"conversations"`
	Messages       int            `json:"messages"`
	ByIntent       map[string]int `json:"by_intent"`
	MessagesLast7d int            `json:"messages_last_7d"`

	Confluence *ConfluenceStats `json:"confluence,omitempty"`
}
