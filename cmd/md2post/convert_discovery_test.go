package main

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"testing"
)

func TestDiscoverNotes(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"a.md":                   "# A",
		"b.PDF":                  "%PDF",
		"readme.txt":             "skip",
		"sub/c.md":               "# C",
		".git/d.md":              "# hidden",
		"_posts/old.md":          "# generated",
		"assets/pdf/posts/e.pdf": "%PDF",
	})

	got, err := discoverNotes(dir, filepath.Join(dir, "_posts"), filepath.Join(dir, "assets"))
	if err != nil {
		t.Fatalf("discoverNotes() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.PDF"),
		filepath.Join(dir, "sub", "c.md"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("discoverNotes() = %v, want %v", got, want)
	}
}

func TestDiscoverNotes_SingleFile(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"notes.txt": "x"})
	path := filepath.Join(dir, "notes.txt")

	got, err := discoverNotes(path)
	if err != nil {
		t.Fatalf("discoverNotes() error = %v", err)
	}
	if !slices.Equal(got, []string{path}) {
		t.Errorf("single file input should pass through, got %v", got)
	}
}

func TestDiscoverNotes_Missing(t *testing.T) {
	t.Parallel()

	_, err := discoverNotes(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("discoverNotes() error = %v, want fs.ErrNotExist", err)
	}
}

func TestIsNoteFile(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"a.md":     true,
		"a.MD":     true,
		"a.pdf":    true,
		"a.Pdf":    true,
		"a.txt":    false,
		"a.md.bak": false,
		"md":       false,
	}
	for path, want := range tests {
		if got := isNoteFile(path); got != want {
			t.Errorf("isNoteFile(%q) = %v, want %v", path, got, want)
		}
	}
}
