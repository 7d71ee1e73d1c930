package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	md2post "github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/hints"
	"github.com/alnah/go-md2post/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoNotes            = errors.New("no .md or .pdf notes found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrTitleWithBatch     = errors.New("--title needs a single input file")
	ErrConversionFailed   = errors.New("conversion failed")
)

// runConvert orchestrates the convert command.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.common, env.Stderr)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positional))
	}
	inputPath := positional[0]

	notes, err := discoverNotes(inputPath, cfg.Output.DefaultDir, cfg.Assets.Dir)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return fmt.Errorf("%w in %s", ErrNoNotes, inputPath)
	}
	if flags.meta.title != "" && len(notes) > 1 {
		return ErrTitleWithBatch
	}

	proc, err := newProcessor(cfg, logger)
	if err != nil {
		return err
	}

	n := md2post.ResolveWorkers(workers)
	logger.Debug("starting conversion",
		"notes", len(notes),
		"workers", n,
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	meta := buildMetadata(flags, cfg)
	results := convertBatch(ctx, proc, notes, cfg.Output.DefaultDir, meta, n)

	return summarize(results, printResults(results, flags.common.quiet, flags.common.verbose, env))
}

// newLogger builds the CLI logger. --quiet keeps errors only, --verbose
// adds debug output.
func newLogger(f commonFlags, w io.Writer) (*slog.Logger, error) {
	format, err := logging.ParseFormat(f.logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	level := logging.LevelInfo
	switch {
	case f.quiet:
		level = logging.LevelError
	case f.verbose:
		level = logging.LevelDebug
	}
	return logging.New(w, level, format), nil
}

// loadConfig loads the config named by the flag, else by MD2POST_CONFIG,
// else returns the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err == nil {
		return cfg, nil
	}

	hint := ""
	if errors.Is(err, config.ErrConfigNotFound) {
		var searched []string
		if !strings.ContainsAny(name, `/\`) {
			searched = config.CandidatePaths(name)
		}
		hint = hints.ForConfigNotFound(searched)
	}
	return nil, fmt.Errorf("loading config: %w%s", err, hint)
}

// mergeFlags merges CLI flags into config. Set flags override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}

	// Assets
	if flags.assets.dir != "" {
		cfg.Assets.Dir = flags.assets.dir
	}
	if flags.assets.pdfDir != "" {
		cfg.Assets.PDFDir = flags.assets.pdfDir
	}

	// Front matter
	if flags.meta.description != "" {
		cfg.Post.Description = flags.meta.description
	}
	if len(flags.meta.tags) > 0 {
		cfg.Post.Tags = flags.meta.tags
	}
	if flags.meta.layout != "" {
		cfg.Post.Layout = flags.meta.layout
	}
	if flags.meta.categories != "" {
		cfg.Post.Categories = flags.meta.categories
	}
	if flags.meta.dateFormat != "" {
		cfg.Post.DateFormat = flags.meta.dateFormat
	}
	if flags.meta.noTOC {
		disabled := false
		cfg.Post.TOC = &disabled
	}

	// Preview
	if flags.preview.enabled {
		cfg.Preview.Enabled = true
	}
	if flags.preview.style != "" {
		cfg.Preview.Style = flags.preview.style
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2post.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2post.MaxWorkers)
	}
	return nil
}

// newProcessor builds the shared note processor from cfg.
func newProcessor(cfg *config.Config, logger *slog.Logger) (*md2post.Processor, error) {
	style := md2post.OutputStyle{
		InlineWrap: cfg.Math.InlineWrap,
		BlockBegin: cfg.Math.BlockBegin,
		BlockEnd:   cfg.Math.BlockEnd,
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}

	proc, err := md2post.NewProcessor(
		md2post.WithConverter(md2post.NewConverter(md2post.WithStyle(style))),
		md2post.WithAssetsDir(cfg.Assets.Dir, cfg.Assets.PDFDir),
		md2post.WithDateFormat(cfg.Post.DateFormat),
		md2post.WithTOC(cfg.Post.TOCEnabled()),
		md2post.WithPreview(cfg.Preview.Enabled, cfg.Preview.Style),
		md2post.WithPreviewAssets(cfg.Preview.AssetPath),
		md2post.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(availableStyles(cfg.Preview.AssetPath)))
		}
		return nil, err
	}
	return proc, nil
}

// availableStyles lists the preview styles loadable with assetPath.
func availableStyles(assetPath string) []string {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return assets.NewEmbeddedLoader().StyleNames()
	}
	return resolver.StyleNames()
}

// buildMetadata collects the per-post metadata shared by every note.
func buildMetadata(flags *convertFlags, cfg *config.Config) md2post.Metadata {
	return md2post.Metadata{
		Title:       flags.meta.title,
		Description: cfg.Post.Description,
		Tags:        cfg.Post.Tags,
		Layout:      cfg.Post.Layout,
		Categories:  cfg.Post.Categories,
	}
}
