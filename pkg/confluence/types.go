package confluence

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnauthorized = errors.New("confluence: invalid credentials")
	ErrNotFound     = errors.New("confluence: not found")
)

// Config holds everything needed to talk to one Confluence site.
// Credentials are per-user, so a Client is cheap to build per request.
type Config struct {
	BaseURL    string // e.g. https://your-site.atlassian.net/wiki
	Email      string
	APIToken   string
	HTTPClient *http.Client
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("confluence: BaseURL is required")
	}
	if c.Email == "" || c.APIToken == "" {
		return fmt.Errorf("confluence: Email and APIToken are required")
	}
	return nil
}

// Space is the simplified space shape exposed to callers.
type Space struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Type string `json:"type"`
	Link string `json:"link"`
}

// Page is the simplified page shape exposed to callers.
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	SpaceKey  string    `json:"space_key"`
	Link      string    `json:"link"`
	Excerpt   string    `json:"excerpt,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CreatePageInput holds parameters for creating a page.
type CreatePageInput struct {
	SpaceKey string
	Title    string
	Content  string // Confluence storage-format HTML
}

// SearchPagesInput holds parameters for a CQL text search.
type SearchPagesInput struct {
	Query    string
	SpaceKey string // optional
	Limit    int
}

// ListPagesInput holds parameters for listing pages of a space.
type ListPagesInput struct {
	SpaceKey string
	Limit    int
	Start    int
}

// --- raw wire shapes (Confluence REST v1) ---

type rawLinks struct {
	WebUI string `json:"webui"`
	Base  string `json:"base"`
}

type rawSpace struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Links rawLinks `json:"_links"`
}

type rawSpaceList struct {
	Results []rawSpace `json:"results"`
	Size    int        `json:"size"`
	Links   rawLinks   `json:"_links"`
}

type rawUser struct {
	DisplayName string `json:"displayName"`
}

type rawLastUpdated struct {
	By   rawUser `json:"by"`
	When string  `json:"when"`
}

type rawHistory struct {
	LastUpdated rawLastUpdated `json:"lastUpdated"`
}

type rawContent struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt"`
	Space   *rawSpace `json:"space"`
	History *rawHistory `json:"history"`
	Links   rawLinks  `json:"_links"`
}

type rawContentList struct {
	Results []rawContent `json:"results"`
	Size    int          `json:"size"`
	Links   rawLinks     `json:"_links"`
}

type rawErrorBody struct {
	Message string `json:"message"`
}
