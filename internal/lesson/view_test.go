package lesson_test

import (
	"reflect"
	"testing"

	"github.com/edukit/coursed/internal/catalog"
	"github.com/edukit/coursed/internal/lesson"
)

func TestBuildView(t *testing.T) {
	r := lesson.Resolved{
		Section: catalog.Section{
			ID:     "graphs",
			Title:  "Graphs",
			Banner: "assets/banners/graphs.svg",
		},
		Subsection: catalog.Subsection{
			ID:          "bfs",
			Title:       "BFS",
			Description: "Breadth-first search",
			Duration:    "12 min",
			VideoURL:    "https://youtu.be/abc123",
			Text:        catalog.Paragraphs{"One.", "Two."},
		},
		Canonical: lesson.Selection{SectionID: "graphs", SubID: "bfs"},
	}

	v := lesson.BuildView(r)

	if v.Title != "BFS" {
		t.Errorf("Title = %q, want BFS", v.Title)
	}
	if v.SectionID != "graphs" || v.SubID != "bfs" {
		t.Errorf("canonical ids = %s/%s, want graphs/bfs", v.SectionID, v.SubID)
	}
	if v.Banner != "assets/banners/graphs.svg" {
		t.Errorf("Banner = %q, want section banner", v.Banner)
	}
	if v.EmbedURL != "https://www.youtube.com/embed/abc123" {
		t.Errorf("EmbedURL = %q", v.EmbedURL)
	}
	if !reflect.DeepEqual(v.Paragraphs, []string{"One.", "Two."}) {
		t.Errorf("Paragraphs = %v", v.Paragraphs)
	}
}

func TestBuildView_Fallbacks(t *testing.T) {
	r := lesson.Resolved{
		Section:    catalog.Section{ID: "s1"},
		Subsection: catalog.Subsection{ID: "l1"},
		Canonical:  lesson.Selection{SectionID: "s1", SubID: "l1"},
	}

	v := lesson.BuildView(r)

	if v.Title != "Untitled sub-section" {
		t.Errorf("Title = %q, want fallback title", v.Title)
	}
	if v.Banner != "assets/banners/default.svg" {
		t.Errorf("Banner = %q, want default banner", v.Banner)
	}
	if v.EmbedURL != "" {
		t.Errorf("EmbedURL = %q, want empty for missing video", v.EmbedURL)
	}
	if v.Paragraphs == nil || len(v.Paragraphs) != 0 {
		t.Errorf("Paragraphs = %v, want empty non-nil", v.Paragraphs)
	}
}
