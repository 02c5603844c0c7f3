// Package render turns a document event stream into an HTML fragment and
// records every heading it encounters for table of contents generation.
//
// Rendering is a single forward pass with no lookahead. The renderer is total:
// unbalanced or out-of-order streams degrade to no-ops, never to errors.
package render

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/alnah/go-md2html/event"
)

// Heading levels accepted by the renderer. Levels outside are clamped.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// HeadingRecord is a heading captured while rendering.
// Text holds the raw, unescaped text content.
type HeadingRecord struct {
	Level int
	ID    string
	Text  string
}

// Result is the output of a render pass.
type Result struct {
	HTML     string
	Headings []HeadingRecord
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeadingClass sets the class attribute written on every heading.
func WithHeadingClass(class string) Option {
	return func(r *Renderer) { r.headingClass = class }
}

// WithParagraphClass sets the class attribute written on every paragraph.
func WithParagraphClass(class string) Option {
	return func(r *Renderer) { r.paragraphClass = class }
}

// WithCellRole sets the policy deciding between th and td.
// A nil policy keeps the current one.
func WithCellRole(p CellRolePolicy) Option {
	return func(r *Renderer) {
		if p != nil {
			r.cellRole = p
		}
	}
}

// WithAttributeEscaping escapes class names, URLs, languages and alt text
// before writing them into attributes.
func WithAttributeEscaping(enabled bool) Option {
	return func(r *Renderer) { r.escapeAttrs = enabled }
}

// WithLineBreaks renders soft breaks as a newline and hard breaks as <br>.
func WithLineBreaks(enabled bool) Option {
	return func(r *Renderer) { r.lineBreaks = enabled }
}

// WithCodeHighlighter routes code block content through h.
func WithCodeHighlighter(h CodeHighlighter) Option {
	return func(r *Renderer) { r.highlighter = h }
}

// Renderer converts event streams to HTML. It holds configuration only and is
// safe for concurrent use; every Render call owns its state.
type Renderer struct {
	headingClass   string
	paragraphClass string
	cellRole       CellRolePolicy
	escapeAttrs    bool
	lineBreaks     bool
	highlighter    CodeHighlighter
}

// New creates a Renderer. Without options it reproduces the legacy output:
// verbatim attributes, table-wide header cells, dropped line breaks.
func New(opts ...Option) *Renderer {
	r := &Renderer{cellRole: AnyRightAligned}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render consumes events once, in order, and returns the HTML body together
// with the headings in document order.
func (r *Renderer) Render(events iter.Seq[event.Event]) Result {
	st := &state{}
	if events != nil {
		for ev := range events {
			r.handle(st, ev)
		}
	}
	return Result{HTML: st.out.String(), Headings: st.headings}
}

// handle dispatches a single event.
func (r *Renderer) handle(st *state, ev event.Event) {
	switch ev.Kind {
	case event.KindStart:
		r.start(st, ev.Tag)
	case event.KindEnd:
		r.end(st, ev.Tag)
	case event.KindText:
		r.text(st, ev.Text)
	case event.KindCode:
		st.out.WriteString("<code>")
		st.out.WriteString(EscapeText(ev.Text))
		st.out.WriteString("</code>")
	case event.KindRule:
		st.out.WriteString("<hr>\n")
	case event.KindSoftBreak:
		if !r.lineBreaks {
			return
		}
		st.out.WriteString("\n")
		if h := st.currentHeading(); h != nil {
			h.Text += " "
		}
	case event.KindHardBreak:
		if r.lineBreaks {
			st.out.WriteString("<br>\n")
		}
	}
}

// start handles Start events.
func (r *Renderer) start(st *state, tag event.Tag) {
	out := &st.out
	switch tag.Kind {
	case event.TagHeading:
		level := clampLevel(tag.Level)
		out.WriteString("<h" + strconv.Itoa(level))
		r.writeClass(st, r.headingClass)
		out.WriteString(">")
		st.headings = append(st.headings, HeadingRecord{Level: level, ID: tag.ID})
		st.inHeading = true
	case event.TagParagraph:
		out.WriteString("<p")
		r.writeClass(st, r.paragraphClass)
		out.WriteString(">")
	case event.TagStrong:
		out.WriteString("<strong>")
	case event.TagEmphasis:
		out.WriteString("<em>")
	case event.TagLink:
		fmt.Fprintf(out, `<a href="%s">`, r.attr(tag.URL))
	case event.TagImage:
		alt := r.attr(tag.Alt)
		fmt.Fprintf(out, `<img src="%s" alt="%s"`, r.attr(tag.URL), alt)
		if tag.Alt != "" {
			fmt.Fprintf(out, ` title="%s"`, alt)
		}
		out.WriteString(">\n")
	case event.TagList:
		if tag.Ordered {
			fmt.Fprintf(out, "<ol start=\"%d\">\n", tag.Start)
			st.pushList(listOrdered)
			return
		}
		out.WriteString("<ul>\n")
		st.pushList(listUnordered)
	case event.TagListItem:
		out.WriteString("<li>")
	case event.TagCodeBlock:
		fmt.Fprintf(out, `<pre><code class="language-%s">`, r.attr(tag.Language))
		if r.highlighter != nil {
			st.capturing = true
			st.codeLang = tag.Language
			st.code.Reset()
		}
	case event.TagBlockQuote:
		out.WriteString("<blockquote>\n")
	case event.TagTable:
		out.WriteString("<table>\n")
		st.table = &tableState{alignments: tag.Alignments}
	case event.TagTableHead:
		out.WriteString("<thead>\n<tr>")
		if st.table != nil {
			st.table.inHead = true
			st.table.column = 0
		}
	case event.TagTableRow:
		out.WriteString("<tr>")
		if st.table != nil {
			st.table.column = 0
		}
	case event.TagTableCell:
		st.cellHeader = r.cellRole(st.cellContext())
		if st.cellHeader {
			out.WriteString("<th>")
		} else {
			out.WriteString("<td>")
		}
		if st.table != nil {
			st.table.column++
		}
	case event.TagStrikethrough:
		out.WriteString("<s>")
	}
}

// end handles End events.
func (r *Renderer) end(st *state, tag event.Tag) {
	out := &st.out
	switch tag.Kind {
	case event.TagHeading:
		level := tag.Level
		if level < MinHeadingLevel || level > MaxHeadingLevel {
			level = MinHeadingLevel
			if len(st.headings) > 0 {
				level = st.headings[len(st.headings)-1].Level
			}
		}
		out.WriteString("</h" + strconv.Itoa(level) + ">\n")
		st.inHeading = false
	case event.TagParagraph:
		out.WriteString("</p>\n")
	case event.TagStrong:
		out.WriteString("</strong>")
	case event.TagEmphasis:
		out.WriteString("</em>")
	case event.TagLink:
		out.WriteString("</a>")
	case event.TagList:
		if k, ok := st.popList(); ok {
			out.WriteString(k.closeTag())
		}
	case event.TagListItem:
		out.WriteString("</li>\n")
	case event.TagCodeBlock:
		if st.capturing {
			r.flushCode(st)
		}
		out.WriteString("</code></pre>\n")
	case event.TagBlockQuote:
		out.WriteString("</blockquote>\n")
	case event.TagTable:
		out.WriteString("</table>\n")
		st.table = nil
	case event.TagTableHead:
		out.WriteString("</tr></thead>\n")
		if st.table != nil {
			st.table.inHead = false
		}
	case event.TagTableRow:
		out.WriteString("</tr>\n")
	case event.TagTableCell:
		if st.cellHeader {
			out.WriteString("</th>")
		} else {
			out.WriteString("</td>")
		}
	case event.TagStrikethrough:
		out.WriteString("</s>")
	}
}

// text writes escaped text and feeds the open heading with the raw text.
func (r *Renderer) text(st *state, s string) {
	if st.capturing {
		st.code.WriteString(s)
		return
	}
	st.out.WriteString(EscapeText(s))
	if h := st.currentHeading(); h != nil {
		h.Text += s
	}
}

// flushCode writes the captured code block through the highlighter.
func (r *Renderer) flushCode(st *state) {
	code := st.code.String()
	st.capturing = false
	st.code.Reset()
	if markup, ok := r.highlighter.Highlight(st.codeLang, code); ok {
		st.out.WriteString(markup)
		return
	}
	st.out.WriteString(EscapeText(code))
}

// writeClass writes a class attribute when class is set.
func (r *Renderer) writeClass(st *state, class string) {
	if class == "" {
		return
	}
	fmt.Fprintf(&st.out, ` class="%s"`, r.attr(class))
}

// attr prepares a value for an attribute position.
func (r *Renderer) attr(s string) string {
	if r.escapeAttrs {
		return EscapeText(s)
	}
	return s
}

// clampLevel forces a heading level into the 1-6 range.
func clampLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}
