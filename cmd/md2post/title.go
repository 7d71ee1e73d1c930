package main

import (
	"fmt"

	md2post "github.com/alnah/go-md2post"
)

// runTitle prints the first "# Title" heading of a Markdown note.
func runTitle(args []string, env *Environment) error {
	positional, err := parseTitleFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: title expects one file, got %d", ErrUsage, len(positional))
	}

	title, err := md2post.ExtractTitleFromFile(positional[0])
	if err != nil {
		return fmt.Errorf("%w%s", err, hintFor(positional[0], err))
	}

	fmt.Fprintln(env.Stdout, title)
	return nil
}
