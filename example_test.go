package md2post_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-md2post"
)

// Example demonstrates normalizing LaTeX math with the default style.
func Example() {
	conv := md2post.NewConverter()

	fmt.Println(conv.Convert(`E=mc^2 is $E=mc^2$ famous, and \(a_1 + |b|\) too.`))
	// Output: E=mc^2 is $$E=mc^{2}$$ famous, and $$a_{1} + \vert b\vert $$ too.
}

// ExampleWithStyle demonstrates writing single-dollar inline math.
func ExampleWithStyle() {
	conv := md2post.NewConverter(md2post.WithStyle(md2post.OutputStyle{
		InlineWrap: "$",
		BlockBegin: "$$",
		BlockEnd:   "$$\n",
	}))

	fmt.Println(conv.Convert(`root \(x_n\)`))
	// Output: root $x_{n}$
}

// ExampleGenerateFilename demonstrates post file naming.
func ExampleGenerateFilename() {
	date := time.Date(2012, 3, 12, 12, 22, 12, 0, time.UTC)

	fmt.Println(md2post.GenerateFilename("12啊12 12.12", date))
	// Output: 2012-03-12-12啊12-12.12.md
}

// ExampleProcessor_Process demonstrates converting a note file into a post.
func ExampleProcessor_Process() {
	dir, err := os.MkdirTemp("", "md2post-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	note := filepath.Join(dir, "groups.md")
	if err := os.WriteFile(note, []byte("# Groups\n\nLet $g^2 = e$.\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := md2post.NewProcessor()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := p.Process(context.Background(), note, filepath.Join(dir, "_posts"), md2post.Metadata{
		Tags: []string{"algebra"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(filepath.Ext(path), filepath.Base(filepath.Dir(path)))
	// Output: .md _posts
}
