package pipeline

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// headingParser parses notes to locate headings. Each Parse call gets its
// own parser context, so the parser is shared.
var headingParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
).Parser()

// Title is the first level-1 ATX heading of a note.
type Title struct {
	Text  string // raw heading text, trimmed
	Start int    // byte offset of the start of the heading line
	End   int    // byte offset of the end of the heading line, before its newline
}

// ExtractTitle returns the first "# Title" line of source. Only ATX
// headings starting in column one count; headings inside code blocks,
// block quotes, or list items are skipped, as are setext headings.
func ExtractTitle(source string) (Title, bool) {
	src := []byte(source)
	doc := headingParser.Parse(text.NewReader(src))

	var title Title
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		seg := h.Lines().At(0)
		start := bytes.LastIndexByte(src[:seg.Start], '\n') + 1
		if src[start] != '#' {
			return ast.WalkContinue, nil
		}

		headingText := strings.TrimSpace(string(h.Lines().Value(src)))
		if headingText == "" {
			return ast.WalkContinue, nil
		}

		end := len(src)
		if idx := bytes.IndexByte(src[seg.Start:], '\n'); idx != -1 {
			end = seg.Start + idx
		}

		title = Title{Text: headingText, Start: start, End: end}
		found = true
		return ast.WalkStop, nil
	})

	return title, found
}

// RemoveLine blanks the heading line of t in source. The line's newline is
// kept so the surrounding layout does not shift.
func RemoveLine(source string, t Title) string {
	if t.Start < 0 || t.End > len(source) || t.Start > t.End {
		return source
	}
	return source[:t.Start] + source[t.End:]
}
