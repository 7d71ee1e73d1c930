// Package md2post turns author notes into blog-ready posts.
//
// # Quick Start
//
// Normalize LaTeX math in a string:
//
//	conv := md2post.NewConverter()
//	out := conv.Convert(`Let \(x_1\) be a root of $x^2 = 2$.`)
//	// Let $$x_{1}$$ be a root of $$x^{2} = 2$$.
//
// Convert a note file into a post:
//
//	p, err := md2post.NewProcessor()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := p.Process(ctx, "notes/groups.md", "_posts", md2post.Metadata{
//	    Description: "Lecture 3",
//	    Tags:        []string{"algebra"},
//	})
//
// # Math Pipeline
//
// Convert runs three stages, always in this order:
//
//  1. Display math (\[...\], \begin{equation*}...\end{equation*}, $$...$$,
//     $$$...$$$) is rewritten to the block delimiters of the OutputStyle.
//     Blocks inside blockquotes keep their quote prefix.
//  2. Runs of blank and quote-only lines collapse to one line, keeping the
//     shallowest quote depth of the run.
//  3. Inline math (\(...\), $...$) is rewritten to the inline wrapper.
//
// Inside every formula, "|" becomes \vert and bare sub/superscript
// arguments are braced, so Markdown renderers leave the math intact.
// Malformed math is never an error: unmatched delimiters stay as they are.
//
// # File Pipeline
//
// Processor dispatches on the input extension:
//
//   - .md: the first "# Title" line is removed, table-of-contents markers
//     are stripped, math is normalized, and the body is written after a
//     post front matter block. A note's own leading front matter is
//     dropped; its title, description and tags fill the Metadata fields
//     left empty.
//   - .pdf: the file is copied into the assets directory (numeric suffix on
//     name collisions) and a redirect post pointing at the copy is written.
//
// Output files are named YYYY-MM-DD-slug.md from the source modification
// time and the title, and are written atomically. An optional HTML preview
// renders the post with MathJax next to it.
package md2post
