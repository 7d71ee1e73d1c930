package pipeline

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// blockMath matches one display-math region. Openers and closers pair
// positionally: the first opener, then the first closer after it, so
// "\[ ... $$" is a region too. Groups:
//
//	1: blockquote prefix at the start of the line ("> > ", may be empty)
//	2: opening delimiter
//	3: body (non-greedy, may span lines)
//	4: closing delimiter
//	5: the newline after the closer, or empty at end of text
var blockMath = regexp2.MustCompile(
	`(^[> ]*)`+
		`\s*`+
		`(\\begin\{equation\*\}|\\\[|\$\$|\$\$\$)`+
		`(.*?)`+
		`(\\end\{equation\*\}|\\\]|\$\$|\$\$\$)`+
		`[^\S\n]*`+
		`(\n|$)`,
	regexp2.Multiline|regexp2.Singleline,
)

// normalizeBlocks replaces every display-math region with the configured
// block delimiters. The quote prefix is written on a line of its own before
// the block, before the opening delimiter, and again after the closing
// delimiter, so the block stands apart from the surrounding quoted prose
// without leaving its quote level.
func (n *MathNormalizer) normalizeBlocks(text string) string {
	return replaceAllFunc(blockMath, text, func(m regexp2.Match) string {
		prefix := strings.TrimSpace(group(m, 1))
		body := group(m, 3)
		trailing := group(m, 5)

		space := ""
		if prefix != "" {
			space = " "
		}

		var b strings.Builder
		b.Grow(len(body) + 3*len(prefix) + len(n.style.BlockBegin) + len(n.style.BlockEnd) + 4)
		b.WriteString(prefix)
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(space)
		b.WriteString(n.style.BlockBegin)
		b.WriteString(SanitizeMath(body))
		b.WriteString(n.style.BlockEnd)
		b.WriteString(prefix)
		b.WriteString(trailing)
		return b.String()
	})
}
