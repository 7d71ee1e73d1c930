package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var noteTime = time.Date(2012, 3, 12, 12, 22, 12, 0, time.Local)

// testEnv returns an Environment with captured output and the given
// environment variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given files, all dated
// noteTime. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
		if err := os.Chtimes(fullPath, noteTime, noteTime); err != nil {
			t.Fatalf("failed to date %s: %v", path, err)
		}
	}

	return tempDir
}
