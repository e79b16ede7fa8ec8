package intent

import (
	"strings"
	"testing"
)

func TestMatchRules(t *testing.T) {
	t.Run("Help", func(t *testing.T) {
		out := MatchRules("help")
		if out.Kind != KindHelp {
			t.Fatalf("expected help, got %s", out.Kind)
		}
		if out.Confidence != ConfidenceStrong {
			t.Errorf("expected confidence %v, got %v", ConfidenceStrong, out.Confidence)
		}
		if out.Answer == "" {
			t.Error("help intent must carry an answer")
		}
	})

	t.Run("List Spaces", func(t *testing.T) {
		for _, msg := range []string{"list spaces", "show my spaces", "what spaces do I have", "spaces"} {
			out := MatchRules(msg)
			if out.Kind != KindListSpaces {
				t.Errorf("%q: expected spaces, got %s", msg, out.Kind)
			}
		}
	})

	t.Run("Spaces Pre-empts Create", func(t *testing.T) {
		// Matches both a spaces pattern and a create pattern; the
		// earlier category must win.
		out := MatchRules("show spaces and create a page called Test")
		if out.Kind != KindListSpaces {
			t.Errorf("expected spaces to pre-empt create, got %s", out.Kind)
		}
	})

	t.Run("Create Title Normalization", func(t *testing.T) {
		out := MatchRules("create a page called project roadmap")
		if out.Kind != KindCreate {
			t.Fatalf("expected create, got %s", out.Kind)
		}
		if out.Title != "Project Roadmap" {
			t.Errorf("expected %q, got %q", "Project Roadmap", out.Title)
		}
		if out.Confidence != ConfidenceMatched {
			t.Errorf("expected confidence %v, got %v", ConfidenceMatched, out.Confidence)
		}
	})

	t.Run("Create Strips Leading Article", func(t *testing.T) {
		out := MatchRules("create a page called the project roadmap")
		if out.Title != "Project Roadmap" {
			t.Errorf("expected article stripped, got %q", out.Title)
		}
	})

	t.Run("Meeting Template", func(t *testing.T) {
		out := MatchRules("create a page called Team Meeting Notes")
		for _, marker := range []string{"Attendees", "Agenda", "Notes", "Action Items"} {
			if !strings.Contains(out.Content, marker) {
				t.Errorf("meeting template missing %q: %s", marker, out.Content)
			}
		}
	})

	t.Run("Retro Template", func(t *testing.T) {
		out := MatchRules("create a page called Sprint Retro")
		for _, marker := range []string{"What Went Well", "What Could Improve"} {
			if !strings.Contains(out.Content, marker) {
				t.Errorf("retro template missing %q: %s", marker, out.Content)
			}
		}
	})

	t.Run("Generic Template", func(t *testing.T) {
		out := MatchRules("create a page called Architecture Overview Doc")
		if !strings.Contains(out.Content, "Overview") || !strings.Contains(out.Content, "Details") {
			t.Errorf("expected generic two-element skeleton, got %s", out.Content)
		}
	})

	t.Run("Search", func(t *testing.T) {
		out := MatchRules("search for onboarding checklist")
		if out.Kind != KindSearch {
			t.Fatalf("expected search, got %s", out.Kind)
		}
		if out.Query != "onboarding checklist" {
			t.Errorf("unexpected query %q", out.Query)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		out := MatchRules("blorp blorp")
		if out.Kind != KindUnknown {
			t.Fatalf("expected unknown, got %s", out.Kind)
		}
		if out.Confidence != ConfidenceUnmatched {
			t.Errorf("expected confidence %v, got %v", ConfidenceUnmatched, out.Confidence)
		}
		if out.Answer == "" {
			t.Error("unknown intent must carry the help-style answer")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := MatchRules("create a page called project roadmap")
		b := MatchRules("create a page called project roadmap")
		if a != b {
			t.Errorf("rule matcher must be deterministic: %+v vs %+v", a, b)
		}
	})

	t.Run("Source Is Rules", func(t *testing.T) {
		if MatchRules("help").Source != SourceRules {
			t.Error("rule results must be tagged with the rules source")
		}
	})
}
