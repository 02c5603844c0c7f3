package md2html

import (
	"fmt"
	"iter"

	"github.com/alnah/go-md2html/event"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/internal/toc"
)

// Assemble joins a table of contents and a body the way Convert does.
func Assemble(tocHTML, body string) string {
	return tocHTML + body
}

// RenderEvents renders an event stream with the default policies and
// returns the body together with the headings it found. It is the building
// block for callers bringing their own parser.
func RenderEvents(events iter.Seq[event.Event], headingClass, paragraphClass string) (string, []Heading) {
	res := render.New(
		render.WithHeadingClass(headingClass),
		render.WithParagraphClass(paragraphClass),
	).Render(events)
	return res.HTML, toHeadings(res.Headings)
}

// BuildTOC renders headings as a table of contents with the default title,
// depth and nesting.
func BuildTOC(headings []Heading) string {
	records := make([]render.HeadingRecord, len(headings))
	for i, h := range headings {
		records[i] = render.HeadingRecord(h)
	}
	return toc.Build(records)
}

// Standalone wraps a fragment in a complete HTML document. An empty title
// becomes "Document"; css is embedded in a style element when not empty.
func Standalone(fragment, title, css string) string {
	return pipeline.WrapDocument(fragment, title, css)
}

// cellRolePolicy maps a CellRole to its render policy.
func cellRolePolicy(role CellRole) (render.CellRolePolicy, error) {
	switch role {
	case CellRoleAnyRightAligned:
		return render.AnyRightAligned, nil
	case CellRoleHeadRow:
		return render.HeadRowOnly, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidCellRole, role)
}

// tocNesting maps a TOCNesting to its builder strategy.
func tocNesting(n TOCNesting) (toc.Nesting, error) {
	switch n {
	case TOCNestingStepwise:
		return toc.Stepwise, nil
	case TOCNestingCollapsed:
		return toc.Collapsed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNesting, n)
}

func validateTOCDepth(minLevel, maxLevel int) error {
	if minLevel < MinHeadingLevel || maxLevel > MaxHeadingLevel {
		return fmt.Errorf("%w: levels must be between %d and %d, got %d-%d",
			ErrInvalidTOCDepth, MinHeadingLevel, MaxHeadingLevel, minLevel, maxLevel)
	}
	if minLevel > maxLevel {
		return fmt.Errorf("%w: min level %d exceeds max level %d", ErrInvalidTOCDepth, minLevel, maxLevel)
	}
	return nil
}

// toHeadings converts render records, removing highlight markers from text.
func toHeadings(records []render.HeadingRecord) []Heading {
	out := make([]Heading, len(records))
	for i, r := range records {
		out[i] = Heading{Level: r.Level, ID: r.ID, Text: pipeline.StripMarkPlaceholders(r.Text)}
	}
	return out
}
