// Package config loads the md2post YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2post/internal/dateutil"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // Directories
	MaxDelimiterLength   = 32   // "$$", "\\[", "\\begin{equation*}"
	MaxLayoutLength      = 50   // "post", "note"
	MaxCategoriesLength  = 200  // "Notes Math"
	MaxTagLength         = 50   // one tag
	MaxTags              = 50   // tag count
	MaxDescriptionLength = 500  // Free-form text
	MaxStyleLength       = 64   // Asset name
)

// Defaults written into generated posts.
const (
	DefaultLayout     = "post"
	DefaultCategories = "Notes"
	DefaultAssetsDir  = "../assets"
	DefaultPDFDir     = "pdf/posts"
)

// Config holds all configuration for post generation.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Assets  AssetsConfig  `yaml:"assets"`
	Math    MathConfig    `yaml:"math"`
	Post    PostConfig    `yaml:"post"`
	Preview PreviewConfig `yaml:"preview"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = same as source
}

// AssetsConfig defines where PDF notes are copied.
type AssetsConfig struct {
	Dir    string `yaml:"dir"`    // Assets root, relative to the working directory when not absolute
	PDFDir string `yaml:"pdfDir"` // PDF subdirectory under Dir
}

// MathConfig defines the delimiters written for normalized math.
type MathConfig struct {
	InlineWrap string `yaml:"inlineWrap"`
	BlockBegin string `yaml:"blockBegin"`
	BlockEnd   string `yaml:"blockEnd"`
}

// PostConfig defines front matter defaults.
type PostConfig struct {
	Layout      string   `yaml:"layout"`
	Categories  string   `yaml:"categories"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	DateFormat  string   `yaml:"dateFormat"` // dateutil tokens or preset
	TOC         *bool    `yaml:"toc"`        // toc.beginning in front matter (nil = true)
}

// TOCEnabled reports whether posts request a table of contents.
func (p PostConfig) TOCEnabled() bool {
	return p.TOC == nil || *p.TOC
}

// PreviewConfig defines the optional HTML preview.
type PreviewConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Style     string `yaml:"style"`     // Style name in internal/assets/styles/
	AssetPath string `yaml:"assetPath"` // Custom styles/templates directory (empty = embedded)
}

// Validate checks field lengths, required delimiters, and the date format.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.dir", c.Assets.Dir, MaxPathLength},
		{"assets.pdfDir", c.Assets.PDFDir, MaxPathLength},
		{"math.inlineWrap", c.Math.InlineWrap, MaxDelimiterLength},
		{"math.blockBegin", c.Math.BlockBegin, MaxDelimiterLength},
		{"math.blockEnd", c.Math.BlockEnd, MaxDelimiterLength},
		{"post.layout", c.Post.Layout, MaxLayoutLength},
		{"post.categories", c.Post.Categories, MaxCategoriesLength},
		{"post.description", c.Post.Description, MaxDescriptionLength},
		{"post.dateFormat", c.Post.DateFormat, dateutil.MaxDateFormatLength},
		{"preview.style", c.Preview.Style, MaxStyleLength},
		{"preview.assetPath", c.Preview.AssetPath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(c.Post.Tags) > MaxTags {
		return fmt.Errorf("%w: post.tags (%d tags, max %d)", ErrFieldTooLong, len(c.Post.Tags), MaxTags)
	}
	for i, tag := range c.Post.Tags {
		if err := validateFieldLength(fmt.Sprintf("post.tags[%d]", i), tag, MaxTagLength); err != nil {
			return err
		}
	}

	if c.Math.BlockBegin == "" {
		return fmt.Errorf("%w: math.blockBegin", ErrFieldRequired)
	}
	if c.Math.BlockEnd == "" {
		return fmt.Errorf("%w: math.blockEnd", ErrFieldRequired)
	}

	if _, err := dateutil.Compile(c.Post.DateFormat); err != nil {
		return fmt.Errorf("post.dateFormat: %w", err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{DefaultDir: ""},
		Assets: AssetsConfig{Dir: DefaultAssetsDir, PDFDir: DefaultPDFDir},
		Math: MathConfig{
			InlineWrap: "$$",
			BlockBegin: "$$",
			BlockEnd:   "$$\n",
		},
		Post: PostConfig{
			Layout:     DefaultLayout,
			Categories: DefaultCategories,
			Tags:       []string{},
			DateFormat: dateutil.DefaultDateFormat,
		},
		Preview: PreviewConfig{Enabled: false, Style: "default"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file take their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills empty fields from DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	setDefault(&c.Assets.Dir, d.Assets.Dir)
	setDefault(&c.Assets.PDFDir, d.Assets.PDFDir)
	setDefault(&c.Math.InlineWrap, d.Math.InlineWrap)
	setDefault(&c.Math.BlockBegin, d.Math.BlockBegin)
	setDefault(&c.Math.BlockEnd, d.Math.BlockEnd)
	setDefault(&c.Post.Layout, d.Post.Layout)
	setDefault(&c.Post.Categories, d.Post.Categories)
	setDefault(&c.Post.DateFormat, d.Post.DateFormat)
	setDefault(&c.Preview.Style, d.Preview.Style)
	if c.Post.Tags == nil {
		c.Post.Tags = []string{}
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// CandidatePaths returns the files searched for a config name, in order:
// name.yaml and name.yml in the current directory, then in the user config
// directory under go-md2post/.
func CandidatePaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2post", name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among CandidatePaths.
func resolveConfigPath(name string) (string, error) {
	paths := CandidatePaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
