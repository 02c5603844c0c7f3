package assets

// DefaultStyleName is the built-in stylesheet used when none is configured.
const DefaultStyleName = "default"

// StyleLoader loads a stylesheet by name, without the .css extension.
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidStyleName for names that are not plain identifiers.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
