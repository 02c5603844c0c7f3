// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config and a user config location taken from
// the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), ".config/go-md2html") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputExists suggests how to replace an existing output file.
func ForOutputExists() string {
	return format("use --force to overwrite existing files")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available style names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForHighlightStyle points to the chroma style gallery.
func ForHighlightStyle() string {
	return format("see https://xyproto.github.io/splash/docs/ for style names")
}

// ForStdoutBatch explains the --stdout restriction.
func ForStdoutBatch() string {
	return format("--stdout converts a single file; use --output for directories")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// filepathSlash normalises Windows separators for substring checks.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
