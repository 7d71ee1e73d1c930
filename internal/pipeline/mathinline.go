package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// \( ... \) where neither backslash is itself escaped.
	parenMath = regexp2.MustCompile(`(?<!\\)\\\((.*?)(?<!\\)\\\)`, regexp2.Singleline)

	// $ ... $ with no whitespace just inside either dollar, no "$" in the
	// body, and a closer that is not the start of "$$".
	dollarMath = regexp2.MustCompile(`(?<!\\)\$(?!\s)([^$]+?)(?<!\s)\$(?!\$)`, regexp2.Singleline)
)

// normalizeInline replaces \(...\) and $...$ spans with the configured
// inline wrapper. A literal unescaped "$" inside a formula makes the
// dollar pass pair the wrong signs; such input is left best-effort.
func (n *MathNormalizer) normalizeInline(text string) string {
	wrap := func(m regexp2.Match) string {
		body := SanitizeMath(group(m, 1))
		var b strings.Builder
		b.Grow(len(body) + 2*len(n.style.InlineWrap))
		b.WriteString(n.style.InlineWrap)
		b.WriteString(body)
		b.WriteString(n.style.InlineWrap)
		return b.String()
	}
	text = replaceAllFunc(parenMath, text, wrap)
	return replaceAllFunc(dollarMath, text, wrap)
}
