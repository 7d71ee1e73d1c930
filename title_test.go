package md2post

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTitleFromFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "first heading",
			content: "# Group Theory\n\nbody\n# Second\n",
			want:    "Group Theory",
		},
		{
			name:    "crlf line endings",
			content: "intro\r\n# Rings\r\n",
			want:    "Rings",
		},
		{
			name:    "heading in code fence is skipped",
			content: "```\n# not a title\n```\n\n# Fields\n",
			want:    "Fields",
		},
		{
			name:    "level two only",
			content: "## Section\n",
			wantErr: ErrInputFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "note.md")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := ExtractTitleFromFile(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractTitleFromFile() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractTitleFromFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTitleFromFile_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ExtractTitleFromFile(""); !errors.Is(err, ErrEmptyInputPath) {
		t.Errorf("empty path error = %v, want ErrEmptyInputPath", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.md")
	if _, err := ExtractTitleFromFile(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v, want fs.ErrNotExist", err)
	}
}
