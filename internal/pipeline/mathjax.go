package pipeline

// Default delimiters, compatible with kramdown + MathJax 3 blogs.
const (
	DefaultInlineWrap = "$$"
	DefaultBlockBegin = "$$"
	DefaultBlockEnd   = "$$\n"
)

// MathStyle holds the delimiters emitted for normalized math.
// BlockEnd conventionally ends with a newline so the block closes on its
// own line.
type MathStyle struct {
	InlineWrap string // written on both sides of inline math
	BlockBegin string // written before block math bodies
	BlockEnd   string // written after block math bodies
}

// DefaultMathStyle returns the default delimiters.
func DefaultMathStyle() MathStyle {
	return MathStyle{
		InlineWrap: DefaultInlineWrap,
		BlockBegin: DefaultBlockBegin,
		BlockEnd:   DefaultBlockEnd,
	}
}

// MathNormalizer rewrites LaTeX math delimiters into a MathStyle.
// It holds no mutable state and is safe for concurrent use.
type MathNormalizer struct {
	style MathStyle
}

// NewMathNormalizer creates a MathNormalizer emitting the given style.
func NewMathNormalizer(style MathStyle) *MathNormalizer {
	return &MathNormalizer{style: style}
}

// Style returns the delimiters this normalizer emits.
func (n *MathNormalizer) Style() MathStyle {
	return n.style
}

// Normalize runs the math stages in their required order:
// block math, blank-line merging, then inline math. Inline math must come
// last so block delimiters are never read as inline ones.
func (n *MathNormalizer) Normalize(text string) string {
	text = n.normalizeBlocks(text)
	text = MergeBlankRuns(text)
	return n.normalizeInline(text)
}
