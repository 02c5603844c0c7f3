// Package config loads and validates the YAML configuration of the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-md2html"

// Field length limits.
const (
	MaxClassLength = 200  // space-separated class list
	MaxTitleLength = 100  // TOC title
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxNameLength  = 64   // style names
)

// Accepted enumeration values.
const (
	TableHeadersAnyRight = "any-right"
	TableHeadersHeadRow  = "head-row"

	NestingStepwise  = "stepwise"
	NestingCollapsed = "collapsed"
)

// Config holds the settings of a conversion run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	HTML     HTMLConfig     `yaml:"html"`
	TOC      TOCConfig      `yaml:"toc"`
	Headings HeadingsConfig `yaml:"headings"`
	CSS      CSSConfig      `yaml:"css"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir   string `yaml:"defaultDir"`   // empty = next to the source
	Standalone   bool   `yaml:"standalone"`   // wrap in a full HTML document
	RewriteLinks bool   `yaml:"rewriteLinks"` // turn .md links into .html links
}

// HTMLConfig defines rendering options.
type HTMLConfig struct {
	HeadingClass     string `yaml:"headingClass"`
	ParagraphClass   string `yaml:"paragraphClass"`
	EscapeAttributes bool   `yaml:"escapeAttributes"`
	TableHeaders     string `yaml:"tableHeaders"` // "any-right" (default) or "head-row"
	LineBreaks       bool   `yaml:"lineBreaks"`
	Highlight        string `yaml:"highlight"` // chroma style, empty = off
	Sanitize         bool   `yaml:"sanitize"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  *bool  `yaml:"enabled"`  // nil = enabled
	Title    string `yaml:"title"`    // empty = "Table of Contents"
	Nesting  string `yaml:"nesting"`  // "stepwise" (default) or "collapsed"
	MinDepth int    `yaml:"minDepth"` // 0 = 1
	MaxDepth int    `yaml:"maxDepth"` // 0 = 6
}

// IsEnabled reports whether the table of contents is written.
func (t TOCConfig) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

// HeadingsConfig defines heading options.
type HeadingsConfig struct {
	AutoID bool `yaml:"autoID"` // generate ids for headings without {#id}
}

// CSSConfig defines the stylesheet of standalone documents.
type CSSConfig struct {
	Style string `yaml:"style"` // style name or path to a .css file
}

// AssetsConfig defines where custom styles live.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks lengths, enumerations and depth ranges.
// LoadConfig calls it; callers building a Config by hand should too.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"html.headingClass", c.HTML.HeadingClass, MaxClassLength},
		{"html.paragraphClass", c.HTML.ParagraphClass, MaxClassLength},
		{"html.highlight", c.HTML.Highlight, MaxNameLength},
		{"toc.title", c.TOC.Title, MaxTitleLength},
		{"css.style", c.CSS.Style, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if err := validateEnum("html.tableHeaders", c.HTML.TableHeaders, TableHeadersAnyRight, TableHeadersHeadRow); err != nil {
		return err
	}
	if err := validateEnum("toc.nesting", c.TOC.Nesting, NestingStepwise, NestingCollapsed); err != nil {
		return err
	}

	for _, d := range []struct {
		field string
		value int
	}{{"toc.minDepth", c.TOC.MinDepth}, {"toc.maxDepth", c.TOC.MaxDepth}} {
		if d.value < 0 || d.value > 6 {
			return fmt.Errorf("%w: %s must be between 1 and 6, got %d", ErrInvalidValue, d.field, d.value)
		}
	}
	if c.TOC.MinDepth != 0 && c.TOC.MaxDepth != 0 && c.TOC.MinDepth > c.TOC.MaxDepth {
		return fmt.Errorf("%w: toc.minDepth (%d) exceeds toc.maxDepth (%d)", ErrInvalidValue, c.TOC.MinDepth, c.TOC.MaxDepth)
	}

	return nil
}

// validateFieldLength checks that value fits in maxLength bytes.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, " or "))
}

// LoadConfig loads a config file by path or by name. Names are searched in
// the current directory then in the user config directory, trying .yaml and
// .yml. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in order: ./name.yaml,
// ./name.yml, then the same names under {UserConfigDir}/go-md2html/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, AppDirName))
	}

	paths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
