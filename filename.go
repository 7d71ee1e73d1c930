package md2post

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

var (
	// Characters illegal in file names on common file systems, plus any
	// Unicode whitespace.
	slugUnsafe = regexp.MustCompile(`[\\/:*?"<>|\s\p{Z}\v\x{85}]+`)

	colonRun = regexp.MustCompile(`:+`)
)

// postExtension is the extension of every generated post.
const postExtension = ".md"

// NormalizeTitle replaces runs of ":" with "-" and trims whitespace.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(colonRun.ReplaceAllString(title, "-"))
}

// Slugify turns a title into a file-name-safe slug. Unsafe characters and
// whitespace runs become "-"; leading and trailing "-" are trimmed.
// Non-ASCII letters are kept, NFC-normalized so composed and decomposed
// input give the same name.
func Slugify(title string) string {
	slug := slugUnsafe.ReplaceAllString(norm.NFC.String(title), "-")
	return strings.Trim(strings.TrimSpace(slug), "-")
}

// GenerateFilename returns "YYYY-MM-DD-<slug>.md" for a post dated t.
func GenerateFilename(title string, t time.Time) string {
	return t.Format("2006-01-02") + "-" + Slugify(title) + postExtension
}
