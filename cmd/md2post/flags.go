package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// metadataFlags holds front matter overrides.
type metadataFlags struct {
	title       string
	description string
	tags        []string
	layout      string
	categories  string
	dateFormat  string
	noTOC       bool
}

// assetFlags holds PDF copy locations.
type assetFlags struct {
	dir    string
	pdfDir string
}

// previewFlags holds HTML preview flags.
type previewFlags struct {
	enabled bool
	style   string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	meta    metadataFlags
	assets  assetFlags
	preview previewFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text, json")
}

// addMetadataFlags adds front matter flags to a FlagSet.
func addMetadataFlags(fs *flag.FlagSet, f *metadataFlags) {
	fs.StringVar(&f.title, "title", "", "post title (\"\" = from the note)")
	fs.StringVar(&f.description, "desc", "", "post description")
	fs.StringSliceVar(&f.tags, "tags", nil, "comma-separated tags")
	fs.StringVar(&f.layout, "layout", "", "front matter layout")
	fs.StringVar(&f.categories, "categories", "", "front matter categories")
	fs.StringVar(&f.dateFormat, "date-format", "", "front matter date format")
	fs.BoolVar(&f.noTOC, "no-toc", false, "do not request a table of contents")
}

// addAssetFlags adds PDF asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.dir, "assets-dir", "", "assets root for copied PDFs")
	fs.StringVar(&f.pdfDir, "pdf-dir", "", "PDF directory under the assets root")
}

// addPreviewFlags adds preview flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.enabled, "html", false, "write an HTML preview next to each post")
	fs.StringVar(&f.style, "style", "", "preview style name")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addMetadataFlags(fs, &f.meta)
	addAssetFlags(fs, &f.assets)
	addPreviewFlags(fs, &f.preview)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTitleFlags parses title command flags and returns positional args.
func parseTitleFlags(args []string, stderr io.Writer) ([]string, error) {
	fs := flag.NewFlagSet("title", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printTitleUsage(stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// parseFlagSet parses args, marking parse failures as usage errors.
// flag.ErrHelp is returned unwrapped.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
