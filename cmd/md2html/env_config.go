package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file name or path
	Style      string // MD2HTML_STYLE: stylesheet for standalone output
	OutputDir  string // MD2HTML_OUTPUT_DIR: default output directory
	Highlight  string // MD2HTML_HIGHLIGHT: chroma style
	Workers    int    // MD2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":     true,
	"MD2HTML_STYLE":      true,
	"MD2HTML_OUTPUT_DIR": true,
	"MD2HTML_HIGHLIGHT":  true,
	"MD2HTML_WORKERS":    true,
}

// loadEnvConfig reads the MD2HTML_* variables. Invalid worker counts are
// ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		Style:      getenv("MD2HTML_STYLE"),
		OutputDir:  getenv("MD2HTML_OUTPUT_DIR"),
		Highlight:  getenv("MD2HTML_HIGHLIGHT"),
	}
	if workers := getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables,
// such as MD2HTML_OUTPUTDIR for MD2HTML_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, "MD2HTML_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values the config file left empty.
// CLI flags are merged afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Highlight != "" && cfg.HTML.Highlight == "" {
		cfg.HTML.Highlight = env.Highlight
	}
}
