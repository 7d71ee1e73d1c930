package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// mathToken prefixes the placeholders standing in for math spans while
// goldmark runs. Letters and digits only, so no Markdown rule touches it.
const mathToken = "MDPOSTMATHSPAN"

// quoteMarkers matches blockquote markers at the start of a line.
var quoteMarkers = regexp.MustCompile(`^[ \t]*(?:>[ \t]?)+`)

// delimiterPair is one opener/closer pair of normalized math.
type delimiterPair struct {
	open, close string
	multiline   bool
}

// GoldmarkConverter renders post bodies to HTML fragments using goldmark.
// Math spans written in its MathStyle pass through verbatim (HTML
// escaped) so MathJax sees the same TeX as the published blog.
type GoldmarkConverter struct {
	md    goldmark.Markdown
	pairs []delimiterPair
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// footnotes, and chroma syntax highlighting, protecting math written in
// style.
func NewGoldmarkConverter(style MathStyle) *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by the preview stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md, pairs: delimiterPairs(style)}
}

// delimiterPairs lists the math delimiters of style, longest opener
// first so "$$" is tried before "$".
func delimiterPairs(style MathStyle) []delimiterPair {
	var pairs []delimiterPair
	if open, closer := style.BlockBegin, strings.TrimRight(style.BlockEnd, "\n"); open != "" && closer != "" {
		pairs = append(pairs, delimiterPair{open: open, close: closer, multiline: true})
	}
	if style.InlineWrap != "" && (style.InlineWrap != style.BlockBegin || style.InlineWrap != strings.TrimRight(style.BlockEnd, "\n")) {
		pairs = append(pairs, delimiterPair{open: style.InlineWrap, close: style.InlineWrap})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return len(pairs[i].open) > len(pairs[j].open) })
	return pairs
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// ctx is honored through select.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		protected, spans := c.protectMath(content)
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(protected), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: restoreMath(buf.String(), spans)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// protectMath replaces every delimited math span with a numbered
// placeholder and returns the spans in order. Openers without a closer
// are left as text. Inline spans never cross a blank line.
func (c *GoldmarkConverter) protectMath(content string) (string, []string) {
	if len(c.pairs) == 0 {
		return content, nil
	}

	var b strings.Builder
	b.Grow(len(content))
	var spans []string

	for i := 0; i < len(content); {
		span, ok := c.spanAt(content, i)
		if !ok {
			b.WriteByte(content[i])
			i++
			continue
		}
		b.WriteString(mathToken + strconv.Itoa(len(spans)) + "X")
		spans = append(spans, cleanSpan(content, i, span))
		i += len(span)
	}
	return b.String(), spans
}

// spanAt returns the math span starting at i, delimiters included.
func (c *GoldmarkConverter) spanAt(content string, i int) (string, bool) {
	for _, p := range c.pairs {
		if !strings.HasPrefix(content[i:], p.open) {
			continue
		}
		body := content[i+len(p.open):]
		end := strings.Index(body, p.close)
		if end <= 0 {
			continue
		}
		if !p.multiline && strings.Contains(body[:end], "\n\n") {
			continue
		}
		return content[i : i+len(p.open)+end+len(p.close)], true
	}
	return "", false
}

// cleanSpan drops blockquote markers from the continuation lines of a
// span that starts on a quoted line.
func cleanSpan(content string, start int, span string) string {
	lineStart := strings.LastIndexByte(content[:start], '\n') + 1
	if !strings.HasPrefix(strings.TrimLeft(content[lineStart:start], " \t"), ">") {
		return span
	}
	lines := strings.Split(span, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = quoteMarkers.ReplaceAllString(lines[i], "")
	}
	return strings.Join(lines, "\n")
}

// restoreMath puts the escaped spans back in place of their placeholders.
func restoreMath(rendered string, spans []string) string {
	if len(spans) == 0 {
		return rendered
	}
	pairs := make([]string, 0, 2*len(spans))
	for i, span := range spans {
		pairs = append(pairs, mathToken+strconv.Itoa(i)+"X", nethtml.EscapeString(span))
	}
	return strings.NewReplacer(pairs...).Replace(rendered)
}
