// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMissingHeading returns a hint for Markdown notes without a title line.
func ForMissingHeading() string {
	return format(`add a "# Title" line at the top of the note`)
}

// ForEncoding returns a hint for notes saved in a legacy encoding.
func ForEncoding() string {
	return format("re-save the note as UTF-8")
}

// ForUnsupportedType returns a hint listing the accepted input types.
func ForUnsupportedType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return format("input needs a .md or .pdf extension")
	}
	return format("only .md and .pdf notes are converted, got " + ext)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "go-md2post/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetsDirectory returns hints for PDF copy failures.
func ForAssetsDirectory() string {
	return format("check --assets-dir and --pdf-dir point to a writable location")
}

// ForStyleNotFound returns hints for preview style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
