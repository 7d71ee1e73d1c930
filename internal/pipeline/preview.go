package pipeline

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrPreviewTemplate indicates the preview template failed to parse or execute.
var ErrPreviewTemplate = errors.New("preview template failed")

// PreviewPage is the data handed to the preview template.
type PreviewPage struct {
	Title string
	Date  string
	CSS   template.CSS
	Body  template.HTML

	// MathJax delimiters, matching the style the post was written with.
	InlineOpen  string
	InlineClose string
	BlockOpen   string
	BlockClose  string
}

// NewPreviewPage builds a PreviewPage. css and body must come from trusted
// sources: the embedded or configured stylesheet, and goldmark output
// rendered without raw HTML.
func NewPreviewPage(title, date, css, body string, style MathStyle) PreviewPage {
	return PreviewPage{
		Title:       title,
		Date:        date,
		CSS:         template.CSS(css),   // #nosec G203 -- stylesheet from assets
		Body:        template.HTML(body), // #nosec G203 -- goldmark escapes raw HTML
		InlineOpen:  style.InlineWrap,
		InlineClose: style.InlineWrap,
		BlockOpen:   strings.TrimSpace(style.BlockBegin),
		BlockClose:  strings.TrimSpace(style.BlockEnd),
	}
}

// RenderPreview executes the html/template source with page.
func RenderPreview(tmplSource string, page PreviewPage) (string, error) {
	tmpl, err := template.New("preview").Parse(tmplSource)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewTemplate, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewTemplate, err)
	}
	return b.String(), nil
}
