package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/hints"
)

// NoteProcessor converts one note into a post.
type NoteProcessor interface {
	Process(ctx context.Context, inputPath, outputDir string, meta md2post.Metadata) (string, error)
}

// Compile-time interface implementation check.
var _ NoteProcessor = (*md2post.Processor)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes notes concurrently with at most workers
// conversions in flight. Results keep the order of notes.
func convertBatch(ctx context.Context, proc NoteProcessor, notes []string, outputDir string, meta md2post.Metadata, workers int) []ConversionResult {
	if len(notes) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(notes))

	results := make([]ConversionResult, len(notes))
	var wg sync.WaitGroup
	jobs := make(chan int, len(notes))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: notes[idx],
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertNote(ctx, proc, notes[idx], outputDir, meta)
			}
		}()
	}

	for i := range notes {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertNote processes a single note and returns the result.
func convertNote(ctx context.Context, proc NoteProcessor, inputPath, outputDir string, meta md2post.Metadata) ConversionResult {
	start := time.Now()
	outputPath, err := proc.Process(ctx, inputPath, outputDir, meta)
	return ConversionResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Err:        err,
		Duration:   time.Since(start),
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns their summary.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.InputPath, r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// hintFor returns an actionable hint for a failed note, or "".
func hintFor(inputPath string, err error) string {
	switch {
	case errors.Is(err, md2post.ErrEncoding):
		return hints.ForEncoding()
	case errors.Is(err, md2post.ErrInputFormat):
		return hints.ForMissingHeading()
	case errors.Is(err, md2post.ErrUnsupportedType):
		return hints.ForUnsupportedType(inputPath)
	case errors.Is(err, md2post.ErrCopyPDF):
		return hints.ForAssetsDirectory()
	case errors.Is(err, md2post.ErrWritePost) && errors.Is(err, fs.ErrPermission):
		return hints.ForOutputDirectory()
	}
	return ""
}

// batchError reports failed conversions. It unwraps to
// ErrConversionFailed and the first failure, so exit codes follow the
// first failing note.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrConversionFailed, e.first}
}

// summarize returns a batchError when any conversion failed.
func summarize(results []ConversionResult, summary ResultSummary) error {
	if summary.Failed == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err != nil {
			return &batchError{failed: summary.Failed, total: len(results), first: r.Err}
		}
	}
	return nil
}
