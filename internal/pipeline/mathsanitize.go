package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Sub/superscript bracing patterns. regexp2 is used so \b and \s follow
// Unicode rules instead of RE2's ASCII-only classes.
var (
	// _\alpha, ^\infty: a named command right after the script marker.
	scriptCommand = regexp2.MustCompile(`(_|\^)(\\[a-zA-Z]+)\b`, regexp2.None)

	// _1, ^n: one bare character right after the script marker.
	scriptChar = regexp2.MustCompile(`([_^])([^{}\s\\])`, regexp2.None)

	multipleSpaces = regexp.MustCompile(` {2,}`)
)

// SanitizeMath escapes characters in a formula body that Markdown
// renderers would otherwise misread. It must only be applied to the body
// of one math region, never to surrounding prose.
//
// Steps, in order:
//  1. "|" becomes `\vert ` so table syntax never sees a bare pipe.
//  2. Bare script arguments are braced: named commands first
//     (x_\alpha -> x_{\alpha}), then single characters (x^2 -> x^{2}).
//     The command pass must run first; the two passes are not merged.
//  3. Runs of spaces collapse to one space.
//
// Already-braced arguments are left alone, so the result is stable when
// sanitized again.
func SanitizeMath(body string) string {
	body = strings.ReplaceAll(body, "|", `\vert `)
	body = braceScripts(body)
	return multipleSpaces.ReplaceAllString(body, " ")
}

// braceScripts wraps bare sub/superscript arguments in braces.
func braceScripts(body string) string {
	brace := func(m regexp2.Match) string {
		return group(m, 1) + "{" + group(m, 2) + "}"
	}
	body = replaceAllFunc(scriptCommand, body, brace)
	return replaceAllFunc(scriptChar, body, brace)
}
