package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client implements IConfluence against the Confluence Cloud REST API.
type Client struct {
	baseURL  string
	email    string
	apiToken string
	client   *http.Client
}

// New creates a new Confluence client for one site.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		email:    cfg.Email,
		apiToken: cfg.APIToken,
		client:   cfg.HTTPClient,
	}, nil
}

// ListSpaces returns up to limit spaces, reshaped into the simplified form.
func (c *Client) ListSpaces(ctx context.Context, limit int) ([]Space, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampLimit(limit)))

	var raw rawSpaceList
	if err := c.do(ctx, http.MethodGet, "/rest/api/space?"+params.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	spaces := make([]Space, 0, len(raw.Results))
	for _, rs := range raw.Results {
		spaces = append(spaces, c.toSpace(rs))
	}
	return spaces, nil
}

// GetSpace returns a single space by key.
func (c *Client) GetSpace(ctx context.Context, key string) (Space, error) {
	var raw rawSpace
	if err := c.do(ctx, http.MethodGet, "/rest/api/space/"+url.PathEscape(key), nil, &raw); err != nil {
		return Space{}, err
	}
	return c.toSpace(raw), nil
}

// CreatePage creates a page in the given space with storage-format content.
func (c *Client) CreatePage(ctx context.Context, input CreatePageInput) (Page, error) {
	body := map[string]any{
		"type":  "page",
		"title": input.Title,
		"space": map[string]any{"key": input.SpaceKey},
		"body": map[string]any{
			"storage": map[string]any{
				"value":          input.Content,
				"representation": "storage",
			},
		},
	}

	var raw rawContent
	if err := c.do(ctx, http.MethodPost, "/rest/api/content", body, &raw); err != nil {
		return Page{}, err
	}

	page := c.toPage(raw)
	if page.SpaceKey == "" {
		page.SpaceKey = input.SpaceKey
	}
	return page, nil
}

// SearchPages runs a CQL text search and reshapes the results.
func (c *Client) SearchPages(ctx context.Context, input SearchPagesInput) ([]Page, error) {
	params := url.Values{}
	params.Set("cql", BuildSearchCQL(input.Query, input.SpaceKey))
	params.Set("limit", strconv.Itoa(clampLimit(input.Limit)))
	params.Set("expand", "space")

	var raw rawContentList
	if err := c.do(ctx, http.MethodGet, "/rest/api/content/search?"+params.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(raw.Results))
	for _, rc := range raw.Results {
		pages = append(pages, c.toPage(rc))
	}
	return pages, nil
}

// ListPages lists pages of one space, including last-updated metadata
// for the dashboard aggregation.
func (c *Client) ListPages(ctx context.Context, input ListPagesInput) ([]Page, error) {
	params := url.Values{}
	params.Set("spaceKey", input.SpaceKey)
	params.Set("type", "page")
	params.Set("limit", strconv.Itoa(clampLimit(input.Limit)))
	params.Set("start", strconv.Itoa(max(input.Start, 0)))
	params.Set("expand", "space,history.lastUpdated")

	var raw rawContentList
	if err := c.do(ctx, http.MethodGet, "/rest/api/content?"+params.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	pages := make([]Page, 0, len(raw.Results))
	for _, rc := range raw.Results {
		pages = append(pages, c.toPage(rc))
	}
	return pages, nil
}

// do runs one authenticated request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("confluence: failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("confluence: failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("confluence: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("confluence: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var errBody rawErrorBody
		if err := json.Unmarshal(respBody, &errBody); err == nil && errBody.Message != "" {
			return fmt.Errorf("confluence: API error %d: %s", resp.StatusCode, errBody.Message)
		}
		return fmt.Errorf("confluence: API error %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("confluence: failed to parse response: %w", err)
		}
	}
	return nil
}

func (c *Client) toSpace(rs rawSpace) Space {
	return Space{
		Key:  rs.Key,
		Name: rs.Name,
		Type: rs.Type,
		Link: c.webLink(rs.Links.WebUI),
	}
}

func (c *Client) toPage(rc rawContent) Page {
	page := Page{
		ID:      rc.ID,
		Title:   rc.Title,
		Excerpt: rc.Excerpt,
		Link:    c.webLink(rc.Links.WebUI),
	}
	if rc.Space != nil {
		page.SpaceKey = rc.Space.Key
	}
	if rc.History != nil {
		page.UpdatedBy = rc.History.LastUpdated.By.DisplayName
		if ts, err := time.Parse(time.RFC3339, rc.History.LastUpdated.When); err == nil {
			page.UpdatedAt = ts
		}
	}
	return page
}

func (c *Client) webLink(webui string) string {
	if webui == "" {
		return ""
	}
	return c.baseURL + webui
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
