package hints

import (
	"strings"
	"testing"
)

func TestForMissingHeading(t *testing.T) {
	t.Parallel()

	hint := ForMissingHeading()
	if !strings.Contains(hint, "# Title") || !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("ForMissingHeading() = %q", hint)
	}
}

func TestForUnsupportedType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		contains string
	}{
		{"notes.docx", ".docx"},
		{"NOTES.TXT", ".txt"},
		{"README", "extension"},
	}

	for _, tt := range tests {
		hint := ForUnsupportedType(tt.path)
		if !strings.Contains(hint, tt.contains) {
			t.Errorf("ForUnsupportedType(%q) = %q, want to contain %q", tt.path, hint, tt.contains)
		}
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user path",
			paths:    []string{"./foo.yaml", "/home/u/.config/go-md2post/foo.yaml"},
			contains: "create /home/u/.config/go-md2post/foo.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("ForConfigNotFound() = %q, want to contain %q", hint, tt.contains)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", hint)
	}
	if hint := ForStyleNotFound([]string{"default", "minimal"}); !strings.Contains(hint, "default, minimal") {
		t.Errorf("ForStyleNotFound() = %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForMissingHeading(),
		ForEncoding(),
		ForUnsupportedType("a.txt"),
		ForConfigNotFound(nil),
		ForOutputDirectory(),
		ForAssetsDirectory(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
