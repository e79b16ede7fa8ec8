package confluence_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"confluence-assistant/pkg/confluence"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/rest/api/space", func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := r.BasicAuth()
		if !ok || user != "me@example.com" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"key": "ENG", "name": "Engineering", "type": "global", "_links": map[string]string{"webui": "/spaces/ENG"}},
				{"key": "DOC", "name": "Docs", "type": "global", "_links": map[string]string{"webui": "/spaces/DOC"}},
			},
			"size": 2,
		})
	})

	mux.HandleFunc("/rest/api/space/MISSING", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/rest/api/content", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["title"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "title required"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "12345",
				"title":  body["title"],
				"_links": map[string]string{"webui": "/pages/12345"},
			})
			return
		}
		// list pages of a space
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id":    "1",
					"title": "Team Handbook",
					"space": map[string]any{"key": r.URL.Query().Get("spaceKey")},
					"history": map[string]any{
						"lastUpdated": map[string]any{
							"by":   map[string]any{"displayName": "Dana"},
							"when": "2026-08-01T10:00:00Z",
						},
					},
					"_links": map[string]string{"webui": "/pages/1"},
				},
			},
			"size": 1,
		})
	})

	mux.HandleFunc("/rest/api/content/search", func(w http.ResponseWriter, r *http.Request) {
		cql := r.URL.Query().Get("cql")
		if !strings.Contains(cql, "type = page") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id":      "9",
					"title":   "Budget 2026",
					"excerpt": "numbers...",
					"space":   map[string]any{"key": "FIN"},
					"_links":  map[string]string{"webui": "/pages/9"},
				},
			},
			"size": 1,
		})
	})

	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, err := confluence.New(confluence.Config{
		BaseURL:  ts.URL,
		Email:    "me@example.com",
		APIToken: "token",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("ListSpaces", func(t *testing.T) {
		spaces, err := client.ListSpaces(ctx, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(spaces) != 2 {
			t.Fatalf("expected 2 spaces, got %d", len(spaces))
		}
		if spaces[0].Key != "ENG" || spaces[0].Link != ts.URL+"/spaces/ENG" {
			t.Errorf("unexpected space mapping: %+v", spaces[0])
		}
	})

	t.Run("GetSpace Not Found", func(t *testing.T) {
		_, err := client.GetSpace(ctx, "MISSING")
		if !errors.Is(err, confluence.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreatePage", func(t *testing.T) {
		page, err := client.CreatePage(ctx, confluence.CreatePageInput{
			SpaceKey: "ENG",
			Title:    "New Page",
			Content:  "<p>hello</p>",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.ID != "12345" || page.SpaceKey != "ENG" {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("SearchPages", func(t *testing.T) {
		pages, err := client.SearchPages(ctx, confluence.SearchPagesInput{Query: "budget"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pages) != 1 || pages[0].Title != "Budget 2026" || pages[0].SpaceKey != "FIN" {
			t.Errorf("unexpected search results: %+v", pages)
		}
	})

	t.Run("ListPages With History", func(t *testing.T) {
		pages, err := client.ListPages(ctx, confluence.ListPagesInput{SpaceKey: "ENG"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pages) != 1 {
			t.Fatalf("expected 1 page, got %d", len(pages))
		}
		if pages[0].UpdatedBy != "Dana" || pages[0].UpdatedAt.IsZero() {
			t.Errorf("expected last-updated metadata, got %+v", pages[0])
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, _ := confluence.New(confluence.Config{
			BaseURL:  ts.URL,
			Email:    "wrong@example.com",
			APIToken: "token",
		})
		_, err := bad.ListSpaces(ctx, 0)
		if !errors.Is(err, confluence.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("Config Validation", func(t *testing.T) {
		if _, err := confluence.New(confluence.Config{BaseURL: ""}); err == nil {
			t.Error("expected error for missing base URL")
		}
		if _, err := confluence.New(confluence.Config{BaseURL: "http://x", Email: "a"}); err == nil {
			t.Error("expected error for missing token")
		}
	})
}
