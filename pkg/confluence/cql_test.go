package confluence_test

import (
	"testing"

	"confluence-assistant/pkg/confluence"
)

func TestBuildSearchCQL(t *testing.T) {
	t.Run("Query Only", func(t *testing.T) {
		got := confluence.BuildSearchCQL("budget numbers", "")
		want := `type = page AND text ~ "budget numbers"`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Query And Space", func(t *testing.T) {
		got := confluence.BuildSearchCQL("roadmap", "ENG")
		want := `type = page AND text ~ "roadmap" AND space = "ENG"`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Quotes Escaped", func(t *testing.T) {
		got := confluence.BuildSearchCQL(`the "big" plan`, "")
		want := `type = page AND text ~ "the \"big\" plan"`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Backslash Escaped Before Quote", func(t *testing.T) {
		got := confluence.BuildSearchCQL(`a\"b`, "")
		want := `type = page AND text ~ "a\\\"b"`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("Empty Query", func(t *testing.T) {
		got := confluence.BuildSearchCQL("  ", "DOC")
		want := `type = page AND space = "DOC"`
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
