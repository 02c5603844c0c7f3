// Package md2html converts Markdown documents to HTML fragments with a
// generated table of contents.
//
// # Quick Start
//
// Create a converter once and reuse it:
//
//	conv, err := md2html.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello {#hello}\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//
// The result holds the table of contents (result.TOC), the document body
// (result.Body), both joined (result.HTML) and the headings found while
// rendering (result.Headings).
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Parsing into an event stream via Goldmark (tables, strikethrough)
//  3. Rendering events to HTML, recording headings on the way
//  4. Link rebasing, table of contents generation and optional sanitizing
//
// The parser can be swapped with WithSource; any event.Source works.
// RenderEvents and BuildTOC expose stages 3 and 4 for callers that drive
// the stream themselves.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2html.New(
//	    md2html.WithCellRole(md2html.CellRoleHeadRow),
//	    md2html.WithTOCNesting(md2html.TOCNestingCollapsed),
//	    md2html.WithTOCDepth(2, 3),
//	    md2html.WithHighlighting("monokai"),
//	)
//
// The defaults keep the historical output: every cell of a table with a
// right-aligned column is a header cell, attribute values are written
// verbatim, and line breaks are dropped. The options above opt into the
// corrected behaviors.
//
// # Concurrency
//
// A Converter holds configuration only. It is safe for concurrent use and
// every Convert call renders with its own state.
//
// # Error Handling
//
// Invalid options are reported by New as ErrInvalidCellRole,
// ErrInvalidNesting, ErrInvalidTOCDepth or ErrUnknownHighlightStyle.
// Convert fails only on context cancellation, on malformed HTML during link
// rebasing, or with ErrRenderFailed when a custom source panics:
//
//	if errors.Is(err, md2html.ErrRenderFailed) {
//	    // the event source misbehaved
//	}
package md2html
