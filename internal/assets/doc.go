// Package assets provides the stylesheets used by standalone HTML output.
//
// # Loaders
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled in with go:embed (default, minimal)
//	    ├── FilesystemLoader  - styles read from {basePath}/styles/{name}.css
//	    └── AssetResolver     - custom directory first, embedded as fallback
//
// The resolver falls back only when the custom directory lacks the style;
// validation and I/O errors are returned as they are.
//
// # Security
//
// Style names are validated so they cannot leave the styles directory.
// FilesystemLoader resolves symlinks and checks paths stay under basePath.
package assets
