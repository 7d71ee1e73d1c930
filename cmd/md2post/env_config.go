package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-md2post/internal/config"
)

// envPrefix marks environment variables read by md2post.
const envPrefix = "MD2POST_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // MD2POST_CONFIG: config file name or path
	OutputDir  string // MD2POST_OUTPUT_DIR: default output directory
	AssetsDir  string // MD2POST_ASSETS_DIR: assets root for copied PDFs
	Workers    int    // MD2POST_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2POST_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2POST_CONFIG":     true,
	"MD2POST_OUTPUT_DIR": true,
	"MD2POST_ASSETS_DIR": true,
	"MD2POST_WORKERS":    true,
}

// loadEnvConfig reads the recognized MD2POST_* variables through getenv.
// A non-numeric or non-positive MD2POST_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2POST_CONFIG"),
		OutputDir:  getenv("MD2POST_OUTPUT_DIR"),
		AssetsDir:  getenv("MD2POST_ASSETS_DIR"),
	}

	if workers := getenv("MD2POST_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MD2POST_*
// variable in environ, catching typos like MD2POST_OUTPUTDIR.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment
// variables. Flags are merged afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetsDir != "" {
		cfg.Assets.Dir = env.AssetsDir
	}
}
