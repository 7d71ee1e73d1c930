package md2post

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/pipeline"
)

// previewExtension replaces the post's extension on the preview path.
const previewExtension = "html"

// writePreview renders doc's body to a standalone HTML page next to the
// post. Relative links and images in the note are rewritten so they still
// resolve from the post's directory.
func (p *Processor) writePreview(ctx context.Context, inputPath, postPath string, doc post) error {
	fragment, err := p.htmlConverter.ToHTML(ctx, doc.body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}

	sourceDir, err := filepath.Abs(filepath.Dir(inputPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}
	outputDir, err := filepath.Abs(filepath.Dir(postPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}

	fragment, err = pipeline.RewriteRelativePaths(fragment, sourceDir, outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}

	page := pipeline.NewPreviewPage(doc.title, doc.date, p.previewCSS, fragment, p.converter.Style().mathStyle())
	rendered, err := pipeline.RenderPreview(p.previewTmpl, page)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}

	previewPath, err := fileutil.ReplaceExtension(postPath, previewExtension)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPreview, err)
	}

	if err := fileutil.WriteFileAtomic(previewPath, []byte(rendered), fileutil.FilePermissions); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	p.logger.Debug("preview written", "output", previewPath)
	return nil
}
