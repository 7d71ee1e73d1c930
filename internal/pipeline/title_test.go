package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestExtractTitle
// ---------------------------------------------------------------------------

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantText  string
		wantFound bool
	}{
		{
			name:      "first line heading",
			input:     "# Hello\n\nBody",
			wantText:  "Hello",
			wantFound: true,
		},
		{
			name:      "heading after prose",
			input:     "intro\n\n# Title  \nmore",
			wantText:  "Title",
			wantFound: true,
		},
		{
			name:      "skips level two",
			input:     "## Sub\n\n# Main\n",
			wantText:  "Main",
			wantFound: true,
		},
		{
			name:      "skips heading in code fence",
			input:     "```\n# not a title\n```\n\n# Yes\n",
			wantText:  "Yes",
			wantFound: true,
		},
		{
			name:      "keeps inline math",
			input:     "# Proof of $x^2$\n",
			wantText:  "Proof of $x^2$",
			wantFound: true,
		},
		{
			name:      "keeps unicode",
			input:     "# 12啊12 12.12\n",
			wantText:  "12啊12 12.12",
			wantFound: true,
		},
		{
			name:      "first of several",
			input:     "# One\n# Two\n",
			wantText:  "One",
			wantFound: true,
		},
		{
			name:      "setext heading ignored",
			input:     "Title\n=====\n",
			wantFound: false,
		},
		{
			name:      "quoted heading ignored",
			input:     "> # Quoted\n",
			wantFound: false,
		},
		{
			name:      "missing space is not a heading",
			input:     "#NoSpace\n",
			wantFound: false,
		},
		{
			name:      "empty input",
			input:     "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, found := ExtractTitle(tt.input)
			if found != tt.wantFound {
				t.Fatalf("ExtractTitle(%q) found = %v, want %v", tt.input, found, tt.wantFound)
			}
			if found && got.Text != tt.wantText {
				t.Errorf("ExtractTitle(%q).Text = %q, want %q", tt.input, got.Text, tt.wantText)
			}
		})
	}
}

func TestExtractTitle_Span(t *testing.T) {
	t.Parallel()

	input := "intro\n\n# Title  \nmore"
	got, found := ExtractTitle(input)
	if !found {
		t.Fatal("ExtractTitle() found = false, want true")
	}
	if got.Start != 7 || got.End != 16 {
		t.Errorf("ExtractTitle() span = [%d, %d), want [7, 16)", got.Start, got.End)
	}
	if line := input[got.Start:got.End]; line != "# Title  " {
		t.Errorf("span covers %q, want %q", line, "# Title  ")
	}
}

// ---------------------------------------------------------------------------
// TestRemoveLine
// ---------------------------------------------------------------------------

func TestRemoveLine(t *testing.T) {
	t.Parallel()

	t.Run("removes heading keeps newline", func(t *testing.T) {
		t.Parallel()

		input := "# Hello\n\nBody"
		title, _ := ExtractTitle(input)
		if got := RemoveLine(input, title); got != "\n\nBody" {
			t.Errorf("RemoveLine() = %q, want %q", got, "\n\nBody")
		}
	})

	t.Run("heading on last line", func(t *testing.T) {
		t.Parallel()

		input := "text\n# End"
		title, _ := ExtractTitle(input)
		if got := RemoveLine(input, title); got != "text\n" {
			t.Errorf("RemoveLine() = %q, want %q", got, "text\n")
		}
	})

	t.Run("out of range span returns input", func(t *testing.T) {
		t.Parallel()

		input := "short"
		if got := RemoveLine(input, Title{Start: 2, End: 99}); got != input {
			t.Errorf("RemoveLine() = %q, want unchanged input", got)
		}
	})
}
