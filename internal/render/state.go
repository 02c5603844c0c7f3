package render

import (
	"strings"

	"github.com/alnah/go-md2html/event"
)

// listKind is the element a List start opened.
type listKind int

const (
	listUnordered listKind = iota
	listOrdered
)

// closeTag returns the closing tag for the list.
func (k listKind) closeTag() string {
	if k == listOrdered {
		return "</ol>\n"
	}
	return "</ul>\n"
}

// tableState tracks the table currently being rendered.
type tableState struct {
	alignments []event.Alignment
	inHead     bool
	column     int
}

// state is the mutable nesting state of a single render pass.
type state struct {
	out       strings.Builder
	lists     []listKind
	table     *tableState
	inHeading bool
	headings  []HeadingRecord

	// Role chosen for the open cell, mirrored by its end tag.
	cellHeader bool

	// Code block capture, active only with a highlighter.
	capturing bool
	codeLang  string
	code      strings.Builder
}

// pushList records a newly opened list.
func (s *state) pushList(k listKind) {
	s.lists = append(s.lists, k)
}

// popList removes the innermost list. ok is false when no list is open.
func (s *state) popList() (k listKind, ok bool) {
	if len(s.lists) == 0 {
		return 0, false
	}
	k = s.lists[len(s.lists)-1]
	s.lists = s.lists[:len(s.lists)-1]
	return k, true
}

// currentHeading returns the heading being rendered, or nil.
func (s *state) currentHeading() *HeadingRecord {
	if !s.inHeading || len(s.headings) == 0 {
		return nil
	}
	return &s.headings[len(s.headings)-1]
}

// cellContext describes the cell about to be opened.
func (s *state) cellContext() CellContext {
	if s.table == nil {
		return CellContext{}
	}
	return CellContext{
		Alignments: s.table.alignments,
		InTable:    true,
		InHead:     s.table.inHead,
		Column:     s.table.column,
	}
}
