package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestNormalizeBlocks - Display math delimiters and quote prefixes
// ---------------------------------------------------------------------------

func TestNormalizeBlocks(t *testing.T) {
	t.Parallel()

	n := NewMathNormalizer(DefaultMathStyle())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double dollar block",
			input: "$$\nx=1\n$$\n",
			want:  "\n$$\nx=1\n$$\n\n",
		},
		{
			name:  "bracket block at end of text",
			input: `\[a^2\]`,
			want:  "\n$$a^{2}$$\n",
		},
		{
			name:  "equation star environment",
			input: "\\begin{equation*}\ny_1\n\\end{equation*}\n",
			want:  "\n$$\ny_{1}\n$$\n\n",
		},
		{
			name:  "delimiters pair positionally",
			input: "\\[x$$\n",
			want:  "\n$$x$$\n\n",
		},
		{
			name:  "trailing spaces after closer dropped",
			input: "$$x$$   \nnext",
			want:  "\n$$x$$\n\nnext",
		},
		{
			name:  "blockquote prefix repeated",
			input: "> $$\n> x\n> $$\n",
			want:  ">\n> $$\n> x\n> $$\n>\n",
		},
		{
			name:  "nested blockquote prefix",
			input: "> > \\[a|b\\]\n",
			want:  "> >\n> > $$a\\vert b$$\n> >\n",
		},
		{
			name:  "blank line before block",
			input: "text\n\n$$x$$\n",
			want:  "text\n\n$$x$$\n\n",
		},
		{
			name:  "opener after prose not a block",
			input: "see \\[x\\] here\n",
			want:  "see \\[x\\] here\n",
		},
		{
			name:  "no math",
			input: "plain\ntext\n",
			want:  "plain\ntext\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := n.normalizeBlocks(tt.input)
			if got != tt.want {
				t.Errorf("normalizeBlocks(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBlocks_CustomStyle(t *testing.T) {
	t.Parallel()

	n := NewMathNormalizer(MathStyle{
		InlineWrap: "$",
		BlockBegin: `\[`,
		BlockEnd:   "\\]\n",
	})

	got := n.normalizeBlocks("$$x_1$$\n")
	want := "\n\\[x_{1}\\]\n\n"
	if got != want {
		t.Errorf("normalizeBlocks() = %q, want %q", got, want)
	}
}
