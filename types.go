package md2html

import (
	"github.com/alnah/go-md2html/internal/render"
)

// Heading levels.
const (
	MinHeadingLevel = render.MinHeadingLevel
	MaxHeadingLevel = render.MaxHeadingLevel
)

// CellRole selects which table cells are written as header cells.
type CellRole string

const (
	// CellRoleAnyRightAligned makes every cell of a table a header cell when
	// any of its columns is right-aligned, and none otherwise.
	CellRoleAnyRightAligned CellRole = "any-right"
	// CellRoleHeadRow makes the cells of the head row header cells.
	CellRoleHeadRow CellRole = "head-row"
)

// TOCNesting selects how the table of contents nests level jumps.
type TOCNesting string

const (
	// TOCNestingStepwise opens one list per level between two headings.
	TOCNestingStepwise TOCNesting = "stepwise"
	// TOCNestingCollapsed opens a single list per jump.
	TOCNestingCollapsed TOCNesting = "collapsed"
)

// Input is a single document to convert.
type Input struct {
	Markdown       string
	HeadingClass   string // class attribute on h1-h6, empty for none
	ParagraphClass string // class attribute on p, empty for none
	NoTOC          bool   // skip the table of contents

	// SourceDir and OutputDir rebase relative links and images when the
	// HTML is written to another directory than the markdown. Both must be
	// set for rebasing to happen.
	SourceDir string
	OutputDir string
}

// Heading is a heading found in the document.
// Text is the plain text content, unescaped.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Result holds the output of a conversion.
type Result struct {
	HTML     string // TOC followed by Body
	TOC      string // empty when Input.NoTOC is set
	Body     string
	Headings []Heading
}

// Title returns the text of the first level-1 heading, or of the first
// heading when there is no level-1 heading, or "" without headings.
func (r *Result) Title() string {
	for _, h := range r.Headings {
		if h.Level == MinHeadingLevel {
			return h.Text
		}
	}
	if len(r.Headings) > 0 {
		return r.Headings[0].Text
	}
	return ""
}
