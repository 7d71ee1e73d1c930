package md2post

import "github.com/alnah/go-md2post/internal/pipeline"

// Converter normalizes LaTeX math in Markdown text.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	style      OutputStyle
	normalizer *pipeline.MathNormalizer
}

// Option configures a Converter.
type Option func(*Converter)

// WithStyle sets the delimiters written for normalized math.
func WithStyle(s OutputStyle) Option {
	return func(c *Converter) {
		c.style = s
	}
}

// NewConverter creates a Converter. Without options it writes DefaultStyle.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{style: DefaultStyle()}
	for _, opt := range opts {
		opt(c)
	}
	c.normalizer = pipeline.NewMathNormalizer(c.style.mathStyle())
	return c
}

// Style returns the delimiters this converter writes.
func (c *Converter) Style() OutputStyle {
	return c.style
}

// Convert rewrites every math region in text. It never fails: input
// without math, or with unmatched delimiters, is returned as far as it
// could be normalized.
func (c *Converter) Convert(text string) string {
	return c.normalizer.Normalize(text)
}

// strayDollars returns offsets of unpaired "$" signs left in converted text.
func (c *Converter) strayDollars(converted string) []int {
	return pipeline.FindStrayDollars(converted, c.style.mathStyle())
}
