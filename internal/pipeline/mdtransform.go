package pipeline

import (
	"context"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// [TOC], [[TOC]], {:toc} markers with their surrounding newlines
	tocMarker = regexp2.MustCompile(`\n*(?:\[\[TOC\]\]|\[TOC\]|\{:\s*toc\s*\})\n*`, regexp2.IgnoreCase)

	// Generated TOC lists: consecutive items linking to in-page anchors,
	// directly followed (after blank lines) by a heading.
	tocList = regexp2.MustCompile(
		`(?:^[ \t]*(?:[-*+]|\d+\.)[ \t]+\[[^\]\n]*\]\(#[^)\n]*\)[^\n]*\n)+(?=\n*#)`,
		regexp2.Multiline,
	)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// NotePreprocessor prepares a note's Markdown before math normalization.
type NotePreprocessor struct{}

// PreprocessMarkdown normalizes line endings and removes table-of-contents
// markers. It returns content unchanged if ctx is already done.
func (p *NotePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	return StripTOC(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// StripTOC removes table-of-contents markers and generated TOC lists.
// The blog renders its own TOC from front matter, so the note's copy is
// dropped. Ordinary lists are kept: only items whose text is an in-page
// anchor link ("- [Intro](#intro)") count as TOC entries.
func StripTOC(content string) string {
	content = replaceAllLiteral(tocMarker, content, "\n")
	return replaceAllLiteral(tocList, content, "\n")
}
