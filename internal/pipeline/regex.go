package pipeline

import "github.com/dlclark/regexp2"

// replaceAllFunc replaces every non-overlapping match of re in s, scanning
// left to right. Replaced text is never rescanned.
//
// regexp2 only returns an error when a match timeout expires. None of the
// patterns in this package set one, so s is returned as-is in that case.
func replaceAllFunc(re *regexp2.Regexp, s string, fn regexp2.MatchEvaluator) string {
	out, err := re.ReplaceFunc(s, fn, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// replaceAllLiteral replaces every match of re in s with repl verbatim.
func replaceAllLiteral(re *regexp2.Regexp, s, repl string) string {
	return replaceAllFunc(re, s, func(regexp2.Match) string { return repl })
}

// group returns the text captured by group n of m.
func group(m regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil {
		return ""
	}
	return g.String()
}
