// Package pipeline holds the stages around the renderer.
//
// Before rendering:
//   - Markdown preprocessing (line normalisation, ==highlight== markers)
//   - Markdown to event stream via goldmark (GoldmarkSource)
//   - Link and image destinations rebased or renamed (LinkRewriter)
//
// After rendering:
//   - Highlight markers to <mark> tags
//   - Optional sanitisation with bluemonday
//   - Standalone HTML5 document shell with inline CSS
//
// The HTML itself is produced by the render and toc packages; this package
// never writes element markup of its own beyond the document shell.
package pipeline
