package pipeline

import "strings"

// lineKind classifies a line for blank-run merging.
type lineKind int

const (
	lineContent    lineKind = iota // anything with visible text
	lineBlank                      // empty or whitespace only
	lineQuoteBlank                 // only ">" markers, optionally space separated
)

// classifyLine returns the kind of line and, for quote-only lines, its
// blockquote depth. Plain blank lines have depth 0.
func classifyLine(line string) (lineKind, int) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineBlank, 0
	}
	markers := strings.ReplaceAll(trimmed, " ", "")
	if strings.Trim(markers, ">") == "" {
		return lineQuoteBlank, len(markers)
	}
	return lineContent, 0
}

// blankRun tracks a run of consecutive blank and quote-only lines.
type blankRun struct {
	active   bool
	minDepth int
}

func (r *blankRun) add(depth int) {
	if !r.active || depth < r.minDepth {
		r.minDepth = depth
	}
	r.active = true
}

// line returns the single line that replaces the run: empty when any line
// in it was a plain blank, otherwise the shallowest quote depth seen,
// written with spaced markers ("> >") like the quoted lines around it.
func (r *blankRun) line() string {
	return strings.TrimSpace(strings.Repeat("> ", r.minDepth))
}

// MergeBlankRuns collapses each run of blank and quote-only lines into one
// line. Runs may mix both kinds. The shallowest depth wins, so a blank
// line between nested-quote content and its parent returns to the
// parent's depth. A final pass caps newline runs at two.
func MergeBlankRuns(text string) string {
	lines := strings.Split(text, "\n")
	merged := make([]string, 0, len(lines))

	var run blankRun
	flush := func() {
		if run.active {
			merged = append(merged, run.line())
			run = blankRun{}
		}
	}

	for _, line := range lines {
		kind, depth := classifyLine(line)
		if kind == lineContent {
			flush()
			merged = append(merged, line)
			continue
		}
		run.add(depth)
	}
	flush()

	return compressBlankLines(strings.Join(merged, "\n"))
}
