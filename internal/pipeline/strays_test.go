package pipeline

import (
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFindStrayDollars
// ---------------------------------------------------------------------------

func TestFindStrayDollars(t *testing.T) {
	t.Parallel()

	style := DefaultMathStyle()

	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "price in prose",
			input: "costs $5",
			want:  []int{6},
		},
		{
			name:  "unpaired spaced dollars",
			input: "a $ b $ c",
			want:  []int{2, 6},
		},
		{
			name:  "converted math is clean",
			input: "a $$x$$ b\n\n$$\ny\n$$\n",
			want:  nil,
		},
		{
			name:  "escaped dollar",
			input: `costs \$5`,
			want:  nil,
		},
		{
			name:  "inside inline code",
			input: "run `echo $HOME` now",
			want:  nil,
		},
		{
			name:  "inside fenced code",
			input: "```sh\necho $HOME\n```\nafter $",
			want:  []int{27},
		},
		{
			name:  "inside quoted fence",
			input: "> ~~~\n> $x\n> ~~~\n",
			want:  nil,
		},
		{
			name:  "offsets count from text start",
			input: "line\n$",
			want:  []int{5},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FindStrayDollars(tt.input, style)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindStrayDollars(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindStrayDollars_SingleDollarStyle(t *testing.T) {
	t.Parallel()

	style := MathStyle{InlineWrap: "$", BlockBegin: "$$", BlockEnd: "$$\n"}
	if got := FindStrayDollars("a $x$ b", style); got != nil {
		t.Errorf("FindStrayDollars() = %v, want nil", got)
	}
}
