package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert .md and .pdf notes into blog posts")
	fmt.Fprintln(w, "  title      Print the title heading of a note")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2post help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert notes into posts named YYYY-MM-DD-title.md.")
	fmt.Fprintln(w, "Markdown notes need a \"# Title\" line; their LaTeX math is normalized.")
	fmt.Fprintln(w, "PDF notes are copied to the assets directory behind a redirect post.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Note file or directory of notes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to each note)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front Matter:")
	fmt.Fprintln(w, "      --title <s>           Post title (\"\" = from the note; single file only)")
	fmt.Fprintln(w, "      --desc <s>            Post description")
	fmt.Fprintln(w, "      --tags <a,b>          Comma-separated tags")
	fmt.Fprintln(w, "      --layout <s>          Layout (default: post)")
	fmt.Fprintln(w, "      --categories <s>      Categories (default: Notes)")
	fmt.Fprintln(w, "      --date-format <s>     Date format (default: YYYY-MM-DD HH:mm:ss)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, post")
	fmt.Fprintln(w, "      --no-toc              Do not request a table of contents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Assets:")
	fmt.Fprintln(w, "      --assets-dir <dir>    Assets root (default: ../assets)")
	fmt.Fprintln(w, "      --pdf-dir <dir>       PDF directory under the root (default: pdf/posts)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --html                Write an HTML preview next to each post")
	fmt.Fprintln(w, "      --style <name>        Preview style: default, minimal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2POST_CONFIG, MD2POST_OUTPUT_DIR, MD2POST_ASSETS_DIR, MD2POST_WORKERS")
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2post title <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the first \"# Title\" heading of a Markdown note.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2post version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2post help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
