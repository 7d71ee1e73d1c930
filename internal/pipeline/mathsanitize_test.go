package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestSanitizeMath - Pipe escaping, script bracing, space collapsing
// ---------------------------------------------------------------------------

func TestSanitizeMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pipe becomes vert",
			input: "a|b",
			want:  `a\vert b`,
		},
		{
			name:  "absolute value bars",
			input: "|x|",
			want:  `\vert x\vert `,
		},
		{
			name:  "spaced pipe collapses to single spaces",
			input: "a | b",
			want:  `a \vert b`,
		},
		{
			name:  "subscript digit",
			input: "x_1",
			want:  "x_{1}",
		},
		{
			name:  "superscript letter",
			input: "x^n",
			want:  "x^{n}",
		},
		{
			name:  "only first character is braced",
			input: "x_ab",
			want:  "x_{a}b",
		},
		{
			name:  "subscript command",
			input: `x_\alpha`,
			want:  `x_{\alpha}`,
		},
		{
			name:  "superscript command followed by text",
			input: `e^\pi i`,
			want:  `e^{\pi} i`,
		},
		{
			name:  "subscript and superscript",
			input: "x_1^2",
			want:  "x_{1}^{2}",
		},
		{
			name:  "already braced left alone",
			input: `\sum_{i=1}^{n} x_{i}`,
			want:  `\sum_{i=1}^{n} x_{i}`,
		},
		{
			name:  "mixed braced and bare",
			input: `\sum_{i=1}^n`,
			want:  `\sum_{i=1}^{n}`,
		},
		{
			name:  "marker before space not braced",
			input: "a_ b",
			want:  "a_ b",
		},
		{
			name:  "multiple spaces collapse",
			input: "a  b    c",
			want:  "a b c",
		},
		{
			name:  "newlines kept",
			input: "\nx=1\n",
			want:  "\nx=1\n",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SanitizeMath(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeMath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeMath_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"x_1^2",
		`x_\alpha + y^\beta`,
		"|a|  +  |b|",
		`\frac{a}{b}_n`,
	}

	for _, input := range inputs {
		once := SanitizeMath(input)
		twice := SanitizeMath(once)
		if once != twice {
			t.Errorf("SanitizeMath not stable for %q: %q then %q", input, once, twice)
		}
	}
}
