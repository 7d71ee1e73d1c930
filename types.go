package md2post

import (
	"fmt"

	"github.com/alnah/go-md2post/internal/pipeline"
)

// Front matter defaults.
const (
	DefaultLayout     = "post"
	DefaultCategories = "Notes"
)

// Default asset locations for copied PDFs.
const (
	DefaultAssetsDir = "../assets"
	DefaultPDFSubdir = "pdf/posts"
)

// OutputStyle holds the delimiters written for normalized math.
// BlockEnd conventionally ends with "\n" so a block closes on its own line.
type OutputStyle struct {
	InlineWrap string // both sides of inline math
	BlockBegin string // before block math
	BlockEnd   string // after block math
}

// DefaultStyle returns the kramdown/MathJax delimiters: "$$" everywhere,
// with a newline after each block.
func DefaultStyle() OutputStyle {
	return OutputStyle{
		InlineWrap: pipeline.DefaultInlineWrap,
		BlockBegin: pipeline.DefaultBlockBegin,
		BlockEnd:   pipeline.DefaultBlockEnd,
	}
}

// Validate checks that block delimiters are set. An empty InlineWrap is
// allowed and strips inline delimiters.
func (s OutputStyle) Validate() error {
	if s.BlockBegin == "" {
		return fmt.Errorf("%w: BlockBegin", ErrEmptyDelimiter)
	}
	if s.BlockEnd == "" {
		return fmt.Errorf("%w: BlockEnd", ErrEmptyDelimiter)
	}
	return nil
}

func (s OutputStyle) mathStyle() pipeline.MathStyle {
	return pipeline.MathStyle{
		InlineWrap: s.InlineWrap,
		BlockBegin: s.BlockBegin,
		BlockEnd:   s.BlockEnd,
	}
}

// Metadata is the per-post information supplied by the caller.
// Empty fields take defaults: Layout "post", Categories "Notes", no tags,
// and a title taken from the note's heading or the PDF file name.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
	Layout      string
	Categories  string
}

// withDefaults returns a copy of m with empty fields defaulted.
func (m Metadata) withDefaults() Metadata {
	if m.Layout == "" {
		m.Layout = DefaultLayout
	}
	if m.Categories == "" {
		m.Categories = DefaultCategories
	}
	tags := make([]string, 0, len(m.Tags))
	for _, tag := range m.Tags {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	m.Tags = tags
	return m
}
