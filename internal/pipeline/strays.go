package pipeline

import "strings"

// FindStrayDollars returns the byte offsets of lone, unescaped "$" signs in
// normalized text. Such a sign was not paired into a formula and will
// usually render as a literal dollar or break the MathJax pass on the page.
// Dollars inside fenced code blocks and inline code spans are ignored.
//
// Returns nil when style itself emits single dollars, since every formula
// would then be reported.
func FindStrayDollars(text string, style MathStyle) []int {
	if isSingleDollar(style.InlineWrap) || isSingleDollar(style.BlockBegin) || isSingleDollar(style.BlockEnd) {
		return nil
	}

	var offsets []int
	var fence string

	for lineStart := 0; lineStart <= len(text); {
		lineEnd := len(text)
		if idx := strings.IndexByte(text[lineStart:], '\n'); idx != -1 {
			lineEnd = lineStart + idx
		}
		line := text[lineStart:lineEnd]

		marker := fenceMarker(line)
		switch {
		case fence == "" && marker != "":
			fence = marker
		case fence != "" && marker == fence:
			fence = ""
		case fence == "":
			offsets = scanLineDollars(line, lineStart, offsets)
		}

		if lineEnd == len(text) {
			break
		}
		lineStart = lineEnd + 1
	}

	return offsets
}

func isSingleDollar(delim string) bool {
	return strings.TrimSpace(delim) == "$"
}

// fenceMarker returns "```" or "~~~" when line opens or closes a fenced
// code block, including inside block quotes.
func fenceMarker(line string) string {
	trimmed := strings.TrimLeft(line, " >")
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, m) {
			return m
		}
	}
	return ""
}

// scanLineDollars appends the offsets of lone dollars in line, skipping
// inline code spans.
func scanLineDollars(line string, base int, offsets []int) []int {
	for i := 0; i < len(line); {
		switch line[i] {
		case '`':
			run := runLength(line, i, '`')
			closer := strings.Repeat("`", run)
			if end := strings.Index(line[i+run:], closer); end != -1 {
				i += run + end + run
				continue
			}
			i += run
		case '$':
			run := runLength(line, i, '$')
			escaped := i > 0 && line[i-1] == '\\'
			if run == 1 && !escaped {
				offsets = append(offsets, base+i)
			}
			i += run
		default:
			i++
		}
	}
	return offsets
}

func runLength(s string, i int, c byte) int {
	n := 0
	for i+n < len(s) && s[i+n] == c {
		n++
	}
	return n
}
