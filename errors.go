package md2html

import "errors"

// Sentinel errors for library operations.
var (
	// ErrRenderFailed indicates the event source or the renderer panicked.
	ErrRenderFailed = errors.New("rendering failed")

	// Option validation errors, returned by New.
	ErrInvalidTOCDepth       = errors.New("invalid TOC depth")
	ErrInvalidCellRole       = errors.New("invalid table cell role")
	ErrInvalidNesting        = errors.New("invalid TOC nesting")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)
