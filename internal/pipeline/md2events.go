package pipeline

import (
	"bytes"
	"iter"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2html/event"
)

// SourceOption configures a GoldmarkSource.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	autoIDs bool
}

// WithAutoIDs generates an id for headings that do not declare one.
func WithAutoIDs(enabled bool) SourceOption {
	return func(c *sourceConfig) { c.autoIDs = enabled }
}

// GoldmarkSource parses markdown with goldmark (pure Go) and exposes the AST
// as an event stream.
type GoldmarkSource struct {
	md goldmark.Markdown
}

// Compile-time interface check.
var _ event.Source = (*GoldmarkSource)(nil)

// NewGoldmarkSource creates a GoldmarkSource with table and strikethrough
// support. Headings accept explicit ids with the {#id} attribute syntax.
func NewGoldmarkSource(opts ...SourceOption) *GoldmarkSource {
	var cfg sourceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	parserOpts := []parser.Option{
		parser.WithHeadingAttribute(), // # Title {#anchor}
	}
	if cfg.autoIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(parserOpts...),
	)
	return &GoldmarkSource{md: md}
}

// Events parses src and walks the resulting tree lazily. Parsing happens when
// iteration starts; walking stops as soon as the consumer stops.
func (s *GoldmarkSource) Events(src []byte) iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		doc := s.md.Parser().Parse(text.NewReader(src))
		w := &astWalker{src: src, yield: yield}
		_ = ast.Walk(doc, w.visit)
	}
}

// astWalker translates goldmark nodes into events.
type astWalker struct {
	src     []byte
	yield   func(event.Event) bool
	stopped bool
}

// emit forwards events to the consumer and reports whether to continue.
func (w *astWalker) emit(evs ...event.Event) bool {
	for _, ev := range evs {
		if w.stopped || !w.yield(ev) {
			w.stopped = true
			return false
		}
	}
	return true
}

// visit is the ast.Walker callback.
func (w *astWalker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	status := ast.WalkContinue
	if entering {
		status = w.enter(n)
	} else {
		w.leave(n)
	}
	if w.stopped {
		return ast.WalkStop, nil
	}
	return status, nil
}

// enter emits the events of a node being entered.
func (w *astWalker) enter(n ast.Node) ast.WalkStatus {
	switch n := n.(type) {
	case *ast.Text:
		w.emit(event.Text(string(w.inlineText(n))))
		if n.HardLineBreak() {
			w.emit(event.HardBreak())
		} else if n.SoftLineBreak() {
			w.emit(event.SoftBreak())
		}
		return ast.WalkContinue
	case *ast.String:
		w.emit(event.Text(string(n.Value)))
		return ast.WalkContinue
	case *ast.CodeSpan:
		code := bytes.ReplaceAll(w.plainText(n), []byte("\n"), []byte(" "))
		w.emit(event.Code(string(code)))
		return ast.WalkSkipChildren
	case *ast.ThematicBreak:
		w.emit(event.Rule())
		return ast.WalkSkipChildren
	case *ast.Image:
		w.emit(event.Start(event.Image(string(n.Destination), string(w.plainText(n)))))
		return ast.WalkSkipChildren
	case *ast.AutoLink:
		w.emit(event.Start(event.Link(string(n.URL(w.src)))), event.Text(string(n.Label(w.src))))
		return ast.WalkSkipChildren
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		tag, _ := w.tagFor(n)
		w.emit(event.Start(tag))
		if code := w.lines(n); len(code) > 0 {
			w.emit(event.Text(string(code)))
		}
		return ast.WalkSkipChildren
	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(w.src))
		}
		w.emit(event.HTML(buf.String()))
		return ast.WalkSkipChildren
	case *ast.HTMLBlock:
		raw := w.lines(n)
		if n.HasClosure() {
			raw = append(raw, n.ClosureLine.Value(w.src)...)
		}
		w.emit(event.HTML(string(raw)))
		return ast.WalkSkipChildren
	}

	if tag, ok := w.tagFor(n); ok {
		w.emit(event.Start(tag))
	}
	return ast.WalkContinue
}

// leave emits the End event of a container node.
func (w *astWalker) leave(n ast.Node) {
	if al, ok := n.(*ast.AutoLink); ok {
		w.emit(event.End(event.Link(string(al.URL(w.src)))))
		return
	}
	if tag, ok := w.tagFor(n); ok {
		w.emit(event.End(tag))
	}
}

// tagFor maps container nodes to tags. ok is false for nodes without a tag,
// such as the document or the text block of a tight list item.
func (w *astWalker) tagFor(n ast.Node) (event.Tag, bool) {
	switch n := n.(type) {
	case *ast.Heading:
		return event.Heading(n.Level, headingID(n)), true
	case *ast.Paragraph:
		return event.Simple(event.TagParagraph), true
	case *ast.Emphasis:
		if n.Level >= 2 {
			return event.Simple(event.TagStrong), true
		}
		return event.Simple(event.TagEmphasis), true
	case *ast.Link:
		return event.Link(string(n.Destination)), true
	case *ast.Image:
		return event.Image(string(n.Destination), ""), true
	case *ast.List:
		if n.IsOrdered() {
			return event.OrderedList(n.Start), true
		}
		return event.UnorderedList(), true
	case *ast.ListItem:
		return event.Simple(event.TagListItem), true
	case *ast.FencedCodeBlock:
		var info string
		if n.Info != nil {
			info = string(n.Info.Segment.Value(w.src))
		}
		return event.CodeBlock(info), true
	case *ast.CodeBlock:
		return event.CodeBlock(""), true
	case *ast.Blockquote:
		return event.Simple(event.TagBlockQuote), true
	case *east.Table:
		return event.Table(convertAlignments(n.Alignments)...), true
	case *east.TableHeader:
		return event.Simple(event.TagTableHead), true
	case *east.TableRow:
		return event.Simple(event.TagTableRow), true
	case *east.TableCell:
		return event.Simple(event.TagTableCell), true
	case *east.Strikethrough:
		return event.Simple(event.TagStrikethrough), true
	}
	return event.Tag{}, false
}

// inlineText returns the text of a Text node with backslash escapes and
// character references resolved.
func (w *astWalker) inlineText(n *ast.Text) []byte {
	v := n.Segment.Value(w.src)
	if n.IsRaw() {
		return v
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

// plainText concatenates the text of all descendants of n.
func (w *astWalker) plainText(n ast.Node) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c == n {
			return ast.WalkContinue, nil
		}
		switch c := c.(type) {
		case *ast.Text:
			if _, inCode := n.(*ast.CodeSpan); inCode {
				buf.Write(c.Segment.Value(w.src))
			} else {
				buf.Write(w.inlineText(c))
			}
		case *ast.String:
			buf.Write(c.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}

// lines joins the raw lines of a block node.
func (w *astWalker) lines(n ast.Node) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.src))
	}
	return buf.Bytes()
}

// headingID returns the id attribute of a heading, if any.
func headingID(n *ast.Heading) string {
	v, ok := n.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// convertAlignments maps goldmark column alignments to event alignments.
func convertAlignments(in []east.Alignment) []event.Alignment {
	out := make([]event.Alignment, len(in))
	for i, a := range in {
		switch a {
		case east.AlignLeft:
			out[i] = event.AlignLeft
		case east.AlignCenter:
			out[i] = event.AlignCenter
		case east.AlignRight:
			out[i] = event.AlignRight
		default:
			out[i] = event.AlignNone
		}
	}
	return out
}
