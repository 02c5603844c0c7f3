package assets

import "errors"

// AssetResolver looks up styles in a custom directory first and falls back
// to the embedded ones.
type AssetResolver struct {
	custom   StyleLoader // nil without a custom directory
	embedded StyleLoader
}

// Compile-time interface check.
var _ StyleLoader = (*AssetResolver)(nil)

// NewAssetResolver creates a resolver. An empty customBasePath uses embedded
// styles only; a set but invalid path is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadStyle loads name from the custom directory, or from the embedded
// styles when the custom directory does not have it.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}
