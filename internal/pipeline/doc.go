// Package pipeline implements the note-to-post text transformations.
//
// The math stages rewrite LaTeX math for MathJax-based blogs:
//   - Block math (\[...\], equation*, $$...$$, $$$...$$$) to the configured
//     block delimiters, keeping the blockquote depth of the surrounding text
//   - Blank and quote-only line runs merged to a single line
//   - Inline math (\(...\), $...$) to the configured inline wrapper
//   - Markdown-hostile characters inside formulas escaped or braced
//
// The Markdown stages prepare a note before the math stages run: line
// ending normalization, first-heading extraction via Goldmark, and
// table-of-contents marker removal. An optional HTML preview stage renders
// the finished post with Goldmark and a MathJax page template.
//
// File handling (reading notes, copying PDFs, writing posts) lives in the
// root md2post package. Everything here is a pure string transform except
// the preview renderer, which honors context cancellation.
package pipeline
