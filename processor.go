package md2post

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/dateutil"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/logging"
	"github.com/alnah/go-md2post/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.NotePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Input extensions, matched case-insensitively.
const (
	extMarkdown = ".md"
	extPDF      = ".pdf"
)

// Processor turns note files into posts.
// Create with NewProcessor; a Processor is safe for concurrent use.
type Processor struct {
	converter    *Converter
	preprocessor pipeline.MarkdownPreprocessor
	logger       *slog.Logger

	assetsRoot string
	pdfSubdir  string
	dateFormat string
	date       dateutil.Layout
	toc        bool

	preview       bool
	previewStyle  string
	previewAssets string
	previewCSS    string
	previewTmpl   string
	htmlConverter pipeline.HTMLConverter
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConverter sets the math converter. Nil keeps the default.
func WithConverter(c *Converter) ProcessorOption {
	return func(p *Processor) {
		if c != nil {
			p.converter = c
		}
	}
}

// WithAssetsDir sets where PDF notes are copied: root is the assets root
// the redirect is relative to, pdfSubdir the directory under it. A
// relative root is resolved against the working directory. Empty values
// keep the defaults.
func WithAssetsDir(root, pdfSubdir string) ProcessorOption {
	return func(p *Processor) {
		if root != "" {
			p.assetsRoot = root
		}
		if pdfSubdir != "" {
			p.pdfSubdir = pdfSubdir
		}
	}
}

// WithDateFormat sets the front matter date format: tokens such as
// "YYYY-MM-DD HH:mm:ss" or a preset name. Empty keeps the default.
func WithDateFormat(format string) ProcessorOption {
	return func(p *Processor) {
		p.dateFormat = format
	}
}

// WithTOC sets whether Markdown posts request a table of contents.
func WithTOC(enabled bool) ProcessorOption {
	return func(p *Processor) {
		p.toc = enabled
	}
}

// WithPreview enables an HTML preview written beside each Markdown post.
// An empty style selects the default stylesheet.
func WithPreview(enabled bool, style string) ProcessorOption {
	return func(p *Processor) {
		p.preview = enabled
		if style != "" {
			p.previewStyle = style
		}
	}
}

// WithPreviewAssets sets a directory holding custom preview styles and
// templates. Assets it lacks fall back to the embedded ones.
func WithPreviewAssets(path string) ProcessorOption {
	return func(p *Processor) {
		p.previewAssets = path
	}
}

// WithLogger sets the logger for warnings and progress. Nil discards.
func WithLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor. It fails when the date format is
// invalid or, with the preview enabled, when its assets cannot be loaded.
func NewProcessor(opts ...ProcessorOption) (*Processor, error) {
	p := &Processor{
		converter:    NewConverter(),
		preprocessor: &pipeline.NotePreprocessor{},
		assetsRoot:   DefaultAssetsDir,
		pdfSubdir:    DefaultPDFSubdir,
		dateFormat:   dateutil.DefaultDateFormat,
		toc:          true,
		previewStyle: assets.DefaultStyleName,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logging.Discard()
	}

	date, err := dateutil.Compile(p.dateFormat)
	if err != nil {
		return nil, err
	}
	p.date = date

	if p.preview {
		if err := p.loadPreviewAssets(); err != nil {
			return nil, err
		}
		p.htmlConverter = pipeline.NewGoldmarkConverter(p.converter.Style().mathStyle())
	}

	return p, nil
}

// loadPreviewAssets reads the preview stylesheet and page template once.
func (p *Processor) loadPreviewAssets() error {
	resolver, err := assets.NewAssetResolver(p.previewAssets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	css, err := resolver.LoadStyle(p.previewStyle)
	if err != nil {
		return fmt.Errorf("loading preview style: %w", err)
	}

	tmpl, err := resolver.LoadTemplate(assets.PreviewTemplateName)
	if err != nil {
		return fmt.Errorf("loading preview template: %w", err)
	}

	p.previewCSS = css
	p.previewTmpl = tmpl
	return nil
}

// post is a rendered output file before it is written.
type post struct {
	title       string
	date        string
	frontMatter string
	body        string // empty for redirect posts
	asset       string // PDF copy a redirect post points to
}

// Process converts the note at inputPath and writes the post into
// outputDir, returning the post's path. An empty outputDir writes next to
// the input. The input's modification time dates the post.
//
// Markdown notes without a "# Title" line or not encoded as UTF-8 return
// ErrInputFormat; other extensions than .md and .pdf return
// ErrUnsupportedType. Nothing is written in either case.
func (p *Processor) Process(ctx context.Context, inputPath, outputDir string, meta Metadata) (string, error) {
	if inputPath == "" {
		return "", ErrEmptyInputPath
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != extMarkdown && ext != extPDF {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, inputPath)
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrUnsupportedType, inputPath)
	}

	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	date := p.date.Format(info.ModTime())

	meta = meta.withDefaults()
	p.logger.Debug("processing note", "input", inputPath, "type", ext)

	var doc post
	switch ext {
	case extMarkdown:
		doc, err = p.markdownPost(ctx, inputPath, date, meta)
	case extPDF:
		doc, err = p.redirectPost(ctx, inputPath, date, meta)
	}
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		p.discardAsset(doc)
		return "", err
	}

	outputPath, err := p.write(outputDir, doc, info.ModTime())
	if err != nil {
		p.discardAsset(doc)
		return "", err
	}

	if p.preview && doc.body != "" {
		if err := p.writePreview(ctx, inputPath, outputPath, doc); err != nil {
			return "", err
		}
	}

	p.logger.Info("post written", "input", inputPath, "output", outputPath)
	return outputPath, nil
}

// markdownPost builds a post from a Markdown note.
func (p *Processor) markdownPost(ctx context.Context, inputPath, date string, meta Metadata) (post, error) {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided note path
	if err != nil {
		return post{}, fmt.Errorf("reading input: %w", err)
	}
	if !utf8.Valid(data) {
		return post{}, fmt.Errorf("%w: %s: %w", ErrInputFormat, inputPath, ErrEncoding)
	}

	content := p.preprocessor.PreprocessMarkdown(ctx, string(data))
	if err := ctx.Err(); err != nil {
		return post{}, err
	}

	note, rest, found, err := SplitFrontMatter(content)
	switch {
	case err != nil:
		p.logger.Warn("ignoring unreadable note front matter", "input", inputPath, "error", err)
	case found:
		content = rest
		meta = meta.fillFrom(note)
	}

	heading, ok := pipeline.ExtractTitle(content)
	if !ok {
		return post{}, fmt.Errorf("%w: %s has no level-1 heading (# Title)", ErrInputFormat, inputPath)
	}
	content = pipeline.RemoveLine(content, heading)

	title := NormalizeTitle(meta.Title)
	if title == "" {
		title = NormalizeTitle(heading.Text)
	}

	body := p.converter.Convert(content)
	p.warnStrayDollars(inputPath, body)

	fm := PostFrontMatter{
		Layout:      meta.Layout,
		Title:       title,
		Date:        date,
		Description: meta.Description,
		Tags:        meta.Tags,
		Categories:  meta.Categories,
	}
	if p.toc {
		fm.TOC = &TOCSettings{Beginning: true}
	}

	header, err := RenderFrontMatter(fm)
	if err != nil {
		return post{}, err
	}

	return post{title: title, date: date, frontMatter: header, body: body}, nil
}

// redirectPost copies a PDF note into the assets directory and builds a
// post redirecting to the copy.
func (p *Processor) redirectPost(ctx context.Context, inputPath, date string, meta Metadata) (post, error) {
	title := NormalizeTitle(meta.Title)
	if title == "" {
		stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		title = NormalizeTitle(stem)
	}

	if err := ctx.Err(); err != nil {
		return post{}, err
	}

	doc := post{title: title, date: date}
	redirect, err := p.copyPDF(inputPath, &doc)
	if err != nil {
		p.discardAsset(doc)
		return post{}, err
	}

	doc.frontMatter, err = RenderFrontMatter(RedirectFrontMatter{
		Layout:     meta.Layout,
		Title:      title,
		Date:       date,
		Redirect:   redirect,
		Categories: meta.Categories,
	})
	if err != nil {
		p.discardAsset(doc)
		return post{}, err
	}

	return doc, nil
}

// copyPDF copies inputPath under the assets root, records the copy in doc
// and returns the redirect target: "../" followed by the copy's path
// relative to the root.
func (p *Processor) copyPDF(inputPath string, doc *post) (string, error) {
	root, err := filepath.Abs(p.assetsRoot)
	if err != nil {
		return "", fmt.Errorf("resolving assets directory: %w", err)
	}

	dst, err := fileutil.CopyToUnique(inputPath, filepath.Join(root, p.pdfSubdir))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCopyPDF, err)
	}
	doc.asset = dst
	p.logger.Debug("pdf copied", "input", inputPath, "copy", dst)

	rel, err := filepath.Rel(root, dst)
	if err != nil {
		return "", fmt.Errorf("resolving redirect: %w", err)
	}
	return "../" + filepath.ToSlash(rel), nil
}

// discardAsset removes the PDF copy of a post that was never written, so a
// failed conversion leaves no orphan behind.
func (p *Processor) discardAsset(doc post) {
	if doc.asset == "" {
		return
	}
	if err := os.Remove(doc.asset); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("could not remove pdf copy", "copy", doc.asset, "error", err)
	}
}

// write stores doc in outputDir under its generated file name.
func (p *Processor) write(outputDir string, doc post, modTime time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, fileutil.DirPermissions); err != nil {
		return "", fmt.Errorf("%w: creating output directory: %w", ErrWritePost, err)
	}

	outputPath := filepath.Join(outputDir, GenerateFilename(doc.title, modTime))
	content := doc.frontMatter + doc.body
	if err := fileutil.WriteFileAtomic(outputPath, []byte(content), fileutil.FilePermissions); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritePost, err)
	}
	return outputPath, nil
}

// warnStrayDollars logs one warning when converted text still holds
// unpaired "$" signs. The text itself is left as is.
func (p *Processor) warnStrayDollars(inputPath, converted string) {
	offsets := p.converter.strayDollars(converted)
	if len(offsets) == 0 {
		return
	}
	lines := make([]int, 0, len(offsets))
	for _, off := range offsets {
		line := strings.Count(converted[:off], "\n") + 1
		if len(lines) == 0 || lines[len(lines)-1] != line {
			lines = append(lines, line)
		}
	}
	p.logger.Warn("unpaired dollar signs left in output",
		"input", inputPath,
		"count", len(offsets),
		"lines", lines,
	)
}
