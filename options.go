package md2html

import (
	"time"

	"github.com/alnah/go-md2html/event"
)

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds the options collected by New.
type converterConfig struct {
	timeout        time.Duration
	cellRole       CellRole
	nesting        TOCNesting
	tocTitle       string
	tocMin, tocMax int
	escapeAttrs    bool
	lineBreaks     bool
	autoIDs        bool
	highlightStyle string
	highlight      bool
	sanitize       bool
	markdownLinks  bool
	source         event.Source
}

// WithCellRole selects the header cell policy of tables.
// Default: CellRoleAnyRightAligned.
func WithCellRole(role CellRole) Option {
	return func(c *converterConfig) { c.cellRole = role }
}

// WithTOCNesting selects the nesting strategy of the table of contents.
// Default: TOCNestingStepwise.
func WithTOCNesting(n TOCNesting) Option {
	return func(c *converterConfig) { c.nesting = n }
}

// WithTOCTitle sets the heading of the table of contents.
// Default: "Table of Contents".
func WithTOCTitle(title string) Option {
	return func(c *converterConfig) { c.tocTitle = title }
}

// WithTOCDepth keeps only headings from minLevel to maxLevel in the table
// of contents. Both must be in 1-6 with minLevel <= maxLevel.
func WithTOCDepth(minLevel, maxLevel int) Option {
	return func(c *converterConfig) {
		c.tocMin, c.tocMax = minLevel, maxLevel
	}
}

// WithAttributeEscaping escapes URLs, classes, languages, alt text and
// anchor ids written into attributes. Default: written verbatim.
func WithAttributeEscaping(enabled bool) Option {
	return func(c *converterConfig) { c.escapeAttrs = enabled }
}

// WithLineBreaks renders soft breaks as newlines and hard breaks as <br>.
// Default: both are dropped.
func WithLineBreaks(enabled bool) Option {
	return func(c *converterConfig) { c.lineBreaks = enabled }
}

// WithAutoHeadingID generates ids for headings without an explicit {#id}.
func WithAutoHeadingID(enabled bool) Option {
	return func(c *converterConfig) { c.autoIDs = enabled }
}

// WithHighlighting highlights fenced code with the named chroma style.
// An empty style selects the default one.
func WithHighlighting(style string) Option {
	return func(c *converterConfig) {
		c.highlight = true
		c.highlightStyle = style
	}
}

// WithSanitize passes the output through an HTML sanitizer.
func WithSanitize(enabled bool) Option {
	return func(c *converterConfig) { c.sanitize = enabled }
}

// WithMarkdownLinks rewrites relative links to .md files into .html links.
func WithMarkdownLinks(enabled bool) Option {
	return func(c *converterConfig) { c.markdownLinks = enabled }
}

// WithSource replaces the markdown parser with another event source.
func WithSource(src event.Source) Option {
	return func(c *converterConfig) {
		if src != nil {
			c.source = src
		}
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2html: WithTimeout duration must be positive")
	}
	return func(c *converterConfig) { c.timeout = d }
}
