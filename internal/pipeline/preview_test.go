package pipeline

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewPreviewPage
// ---------------------------------------------------------------------------

func TestNewPreviewPage(t *testing.T) {
	t.Parallel()

	page := NewPreviewPage("T", "2024-01-02", "body{}", "<p>x</p>", DefaultMathStyle())

	if page.InlineOpen != "$$" || page.InlineClose != "$$" {
		t.Errorf("inline delimiters = %q, %q, want $$", page.InlineOpen, page.InlineClose)
	}
	if page.BlockOpen != "$$" || page.BlockClose != "$$" {
		t.Errorf("block delimiters = %q, %q, want $$ without newline", page.BlockOpen, page.BlockClose)
	}
	if string(page.Body) != "<p>x</p>" {
		t.Errorf("Body = %q, want %q", page.Body, "<p>x</p>")
	}
}

// ---------------------------------------------------------------------------
// TestRenderPreview
// ---------------------------------------------------------------------------

func TestRenderPreview(t *testing.T) {
	t.Parallel()

	const tmpl = `<title>{{.Title}}</title><style>{{.CSS}}</style>` +
		`<script>var m=[{{.InlineOpen}}];</script><main>{{.Body}}</main>`

	t.Run("escapes title and keeps body", func(t *testing.T) {
		t.Parallel()

		page := NewPreviewPage("A <b> & c", "", "p{margin:0}", "<p>body</p>", DefaultMathStyle())
		got, err := RenderPreview(tmpl, page)
		if err != nil {
			t.Fatalf("RenderPreview() error = %v", err)
		}

		wantContains := []string{
			"<title>A &lt;b&gt; &amp; c</title>",
			"<main><p>body</p></main>",
			"p{margin:0}",
			`"$$"`,
		}
		for _, want := range wantContains {
			if !strings.Contains(got, want) {
				t.Errorf("RenderPreview() missing %q in:\n%s", want, got)
			}
		}
	})

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()

		_, err := RenderPreview("{{.Title", PreviewPage{})
		if !errors.Is(err, ErrPreviewTemplate) {
			t.Errorf("RenderPreview() error = %v, want ErrPreviewTemplate", err)
		}
	})

	t.Run("execute error", func(t *testing.T) {
		t.Parallel()

		_, err := RenderPreview("{{.Missing}}", PreviewPage{})
		if !errors.Is(err, ErrPreviewTemplate) {
			t.Errorf("RenderPreview() error = %v, want ErrPreviewTemplate", err)
		}
	})
}
