package assets

import "errors"

var (
	// ErrStyleNotFound is returned for a style name no loader knows.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidStyleName is returned for names that are not plain
	// identifiers, see ValidateStyleName.
	ErrInvalidStyleName = errors.New("invalid style name")

	// ErrInvalidBasePath is returned when assets.basePath is missing or is
	// not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrStyleRead     = errors.New("failed to read stylesheet")
	ErrPathTraversal = errors.New("stylesheet path escapes base path")
)
