// Package toc builds the table of contents navigation from rendered headings.
package toc

import (
	"html"
	"strings"

	"github.com/alnah/go-md2html/internal/render"
)

// DefaultTitle is the heading written above the list.
const DefaultTitle = "Table of Contents"

// Nesting selects how level jumps between consecutive headings are nested.
type Nesting int

const (
	// Stepwise opens one list per level step: a jump from level 1 to 4 opens
	// three nested lists even though levels 2 and 3 have no entries.
	Stepwise Nesting = iota
	// Collapsed opens a single list per jump, whatever its size.
	Collapsed
)

// String returns the configuration name of the strategy.
func (n Nesting) String() string {
	if n == Collapsed {
		return "collapsed"
	}
	return "stepwise"
}

// Option configures Build.
type Option func(*builder)

// WithTitle sets the navigation heading. An empty title keeps the default.
func WithTitle(title string) Option {
	return func(b *builder) {
		if title != "" {
			b.title = title
		}
	}
}

// WithDepth restricts entries to headings between min and max inclusive.
// Values outside 1-6 are clamped.
func WithDepth(minLevel, maxLevel int) Option {
	return func(b *builder) {
		b.minDepth = clamp(minLevel)
		b.maxDepth = clamp(maxLevel)
	}
}

// WithNesting sets the nesting strategy.
func WithNesting(n Nesting) Option {
	return func(b *builder) { b.nesting = n }
}

// WithAttributeEscaping escapes anchor ids inside href attributes.
func WithAttributeEscaping(enabled bool) Option {
	return func(b *builder) { b.escapeAttrs = enabled }
}

type builder struct {
	title       string
	minDepth    int
	maxDepth    int
	nesting     Nesting
	escapeAttrs bool
	buf         strings.Builder
}

// Build renders headings as nested lists wrapped in a nav element.
// The outer list is always written, so zero headings yield an empty list.
func Build(headings []render.HeadingRecord, opts ...Option) string {
	b := &builder{
		title:    DefaultTitle,
		minDepth: render.MinHeadingLevel,
		maxDepth: render.MaxHeadingLevel,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.buf.WriteString("<nav>\n<h2>")
	b.buf.WriteString(html.EscapeString(b.title))
	b.buf.WriteString("</h2>\n<ul>\n")

	if b.nesting == Collapsed {
		b.collapsed(headings)
	} else {
		b.stepwise(headings)
	}

	b.buf.WriteString("</ul>\n</nav>\n")
	return b.buf.String()
}

// stepwise moves one level at a time towards each heading's level.
func (b *builder) stepwise(headings []render.HeadingRecord) {
	current := render.MinHeadingLevel
	for _, h := range headings {
		if !b.included(h) {
			continue
		}
		level := clamp(h.Level)
		for level > current {
			b.buf.WriteString("<ul>\n")
			current++
		}
		for level < current {
			b.buf.WriteString("</ul>\n")
			current--
		}
		b.entry(h)
	}
	for current > render.MinHeadingLevel {
		b.buf.WriteString("</ul>\n")
		current--
	}
}

// collapsed keeps a stack of the levels that own an open list.
// The bottom entry is the outer list, owned by level 1.
func (b *builder) collapsed(headings []render.HeadingRecord) {
	open := []int{render.MinHeadingLevel}
	for _, h := range headings {
		if !b.included(h) {
			continue
		}
		level := clamp(h.Level)
		for len(open) > 1 && open[len(open)-1] > level {
			b.buf.WriteString("</ul>\n")
			open = open[:len(open)-1]
		}
		if level > open[len(open)-1] {
			b.buf.WriteString("<ul>\n")
			open = append(open, level)
		}
		b.entry(h)
	}
	for len(open) > 1 {
		b.buf.WriteString("</ul>\n")
		open = open[:len(open)-1]
	}
}

// entry writes a single list item.
func (b *builder) entry(h render.HeadingRecord) {
	id := h.ID
	if b.escapeAttrs {
		id = html.EscapeString(id)
	}
	b.buf.WriteString(`<li><a href="#`)
	b.buf.WriteString(id)
	b.buf.WriteString(`">`)
	b.buf.WriteString(html.EscapeString(h.Text))
	b.buf.WriteString("</a></li>\n")
}

// included reports whether h falls inside the depth range.
func (b *builder) included(h render.HeadingRecord) bool {
	level := clamp(h.Level)
	return level >= b.minDepth && level <= b.maxDepth
}

// clamp forces a level into the 1-6 range.
func clamp(level int) int {
	if level < render.MinHeadingLevel {
		return render.MinHeadingLevel
	}
	if level > render.MaxHeadingLevel {
		return render.MaxHeadingLevel
	}
	return level
}
