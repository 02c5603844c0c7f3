package render

import (
	"html"
	"slices"

	"github.com/alnah/go-md2html/event"
)

// CellContext describes the position of a table cell when its role is decided.
type CellContext struct {
	Alignments []event.Alignment // column alignments of the enclosing table
	InTable    bool              // false for a cell outside any table
	InHead     bool              // the cell sits inside the table head
	Column     int               // zero-based column index within its row
}

// CellRolePolicy reports whether a cell renders as a header cell (th).
type CellRolePolicy func(c CellContext) bool

// AnyRightAligned makes every cell of a table a header cell as soon as one of
// its columns is right-aligned. It applies to head and body rows alike.
func AnyRightAligned(c CellContext) bool {
	return c.InTable && slices.Contains(c.Alignments, event.AlignRight)
}

// HeadRowOnly makes cells of the table head header cells and every other cell
// a data cell.
func HeadRowOnly(c CellContext) bool {
	return c.InTable && c.InHead
}

// CodeHighlighter turns the source of a code block into HTML markup placed
// between <pre><code ...> and </code></pre>. It returns false when it cannot
// handle the input, in which case the renderer writes escaped text.
type CodeHighlighter interface {
	Highlight(language, code string) (string, bool)
}

// EscapeText escapes <, >, &, ' and " for HTML body and attribute contexts.
func EscapeText(s string) string {
	return html.EscapeString(s)
}
