package main

// Notes:
// - exitCodeFor: we test sentinel errors from the CLI, the library, config and
//   assets, plus wrapped and batch errors to verify the errors.Is() chain.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"style read", assets.ErrStyleRead, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/option errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"stdout batch", ErrStdoutBatch, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"toc depth", md2html.ErrInvalidTOCDepth, ExitUsage},
		{"cell role", md2html.ErrInvalidCellRole, ExitUsage},
		{"nesting", md2html.ErrInvalidNesting, ExitUsage},
		{"highlight style", md2html.ErrUnknownHighlightStyle, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"path traversal", assets.ErrPathTraversal, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// General errors (exit 1)
		{"render failed", md2html.ErrRenderFailed, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"output exists", ErrOutputExists, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},

		// Batch errors take the class of their file errors
		{"batch of read errors", &batchError{failed: 1, errs: []error{ErrReadMarkdown}}, ExitIO},
		{"batch of render errors", &batchError{failed: 1, errs: []error{md2html.ErrRenderFailed}}, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions")
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, custom codes must be below 126", ExitIO)
	}
}
