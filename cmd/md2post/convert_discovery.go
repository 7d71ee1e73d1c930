package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// isNoteFile reports whether path has a note extension (.md or .pdf,
// any case).
func isNoteFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".pdf":
		return true
	}
	return false
}

// discoverNotes returns the notes to convert. A file input is returned as
// is, whatever its extension, so the processor can reject it. A directory
// is walked recursively for .md and .pdf files; hidden directories and the
// given skip directories (output and assets) are not entered.
func discoverNotes(inputPath string, skipDirs ...string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	skip := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			skip[abs] = true
		}
	}

	var notes []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, absErr := filepath.Abs(path); absErr == nil && skip[abs] && path != inputPath {
				return filepath.SkipDir
			}
			return nil
		}
		if isNoteFile(path) {
			notes = append(notes, path)
		}
		return nil
	})

	return notes, err
}
