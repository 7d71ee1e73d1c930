package md2post

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2post/internal/pipeline"
)

// ExtractTitleFromFile returns the text of the first "# Title" line of a
// Markdown note. A note without one returns ErrInputFormat.
func ExtractTitleFromFile(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyInputPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided note path
	if err != nil {
		return "", fmt.Errorf("reading note: %w", err)
	}

	title, ok := pipeline.ExtractTitle(pipeline.NormalizeLineEndings(string(data)))
	if !ok {
		return "", fmt.Errorf("%w: %s has no level-1 heading (# Title)", ErrInputFormat, path)
	}
	return title.Text, nil
}
