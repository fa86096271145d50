package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testContent = `{
	"sections": [
		{
			"id": "graphs",
			"title": "Graphs",
			"subsections": [
				{"id": "bfs", "title": "BFS", "duration": "12 min"}
			]
		}
	]
}`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "content.json")
	if err := os.WriteFile(source, []byte(testContent), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		format string
	}{
		{"xlsx", "xlsx"},
		{"csv", "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "outline."+tt.format)
			if err := run(source, tt.format, out); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("output missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("output is empty")
			}
		})
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "content.json")
	if err := os.WriteFile(source, []byte(testContent), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(source, "pdf", filepath.Join(dir, "outline.pdf")); err == nil {
		t.Error("run() should reject unknown format")
	}
}

func TestRun_MissingContent(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "nope.json"), "csv", filepath.Join(dir, "out.csv")); err == nil {
		t.Error("run() should fail for missing content document")
	}
}
