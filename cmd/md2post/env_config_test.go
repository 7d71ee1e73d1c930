package main

// Notes:
// - loadEnvConfig and warnUnknownEnvVars read through injected functions,
//   so these tests run in parallel without t.Setenv().

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/logging"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MD2POST_CONFIG":     "blog",
		"MD2POST_OUTPUT_DIR": "_posts",
		"MD2POST_ASSETS_DIR": "/srv/assets",
		"MD2POST_WORKERS":    "4",
	}
	cfg := loadEnvConfig(func(k string) string { return vars[k] })

	if cfg.ConfigPath != "blog" {
		t.Errorf("ConfigPath = %q, want blog", cfg.ConfigPath)
	}
	if cfg.OutputDir != "_posts" {
		t.Errorf("OutputDir = %q, want _posts", cfg.OutputDir)
	}
	if cfg.AssetsDir != "/srv/assets" {
		t.Errorf("AssetsDir = %q, want /srv/assets", cfg.AssetsDir)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"abc", "-2", "0", ""} {
		cfg := loadEnvConfig(func(k string) string {
			if k == "MD2POST_WORKERS" {
				return value
			}
			return ""
		})
		if cfg.Workers != 0 {
			t.Errorf("MD2POST_WORKERS=%q: Workers = %d, want 0", value, cfg.Workers)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelWarn, logging.FormatText)

	warnUnknownEnvVars(logger, []string{
		"MD2POST_CONFIG=blog",
		"MD2POST_OUTPUTDIR=_posts",
		"HOME=/home/me",
	})

	out := buf.String()
	if !strings.Contains(out, "MD2POST_OUTPUTDIR") {
		t.Errorf("expected warning for MD2POST_OUTPUTDIR, got %q", out)
	}
	if strings.Contains(out, "MD2POST_CONFIG") || strings.Contains(out, "HOME") {
		t.Errorf("known or foreign variables should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env overrides config file values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-file"
		applyEnvConfig(&envConfig{OutputDir: "from-env", AssetsDir: "assets-env"}, cfg)

		if cfg.Output.DefaultDir != "from-env" {
			t.Errorf("Output.DefaultDir = %q, want from-env", cfg.Output.DefaultDir)
		}
		if cfg.Assets.Dir != "assets-env" {
			t.Errorf("Assets.Dir = %q, want assets-env", cfg.Assets.Dir)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-file"
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.DefaultDir != "from-file" {
			t.Errorf("Output.DefaultDir = %q, want from-file", cfg.Output.DefaultDir)
		}
		if cfg.Assets.Dir != config.DefaultAssetsDir {
			t.Errorf("Assets.Dir = %q, want %q", cfg.Assets.Dir, config.DefaultAssetsDir)
		}
	})
}
