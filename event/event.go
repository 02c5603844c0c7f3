// Package event defines the structural document events consumed by the renderer.
//
// An event stream is a flat, ordered encoding of a document tree: every
// container node produces a Start event when entered and an End event when
// left, with leaf content (Text, Code, Rule, ...) in between.
package event

import "iter"

// Kind identifies the variant of an Event.
type Kind int

// Event kinds.
const (
	KindStart Kind = iota
	KindEnd
	KindText
	KindCode
	KindRule
	KindSoftBreak
	KindHardBreak
	KindHTML
	KindFootnoteReference
	KindTaskListMarker
)

// TagKind identifies the container a Start or End event refers to.
type TagKind int

// Tag kinds.
const (
	TagUnknown TagKind = iota
	TagHeading
	TagParagraph
	TagStrong
	TagEmphasis
	TagLink
	TagImage
	TagList
	TagListItem
	TagCodeBlock
	TagBlockQuote
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
	TagStrikethrough
	TagFootnoteDefinition
	TagHTMLBlock
)

var tagNames = [...]string{
	TagUnknown:            "unknown",
	TagHeading:            "heading",
	TagParagraph:          "paragraph",
	TagStrong:             "strong",
	TagEmphasis:           "emphasis",
	TagLink:               "link",
	TagImage:              "image",
	TagList:               "list",
	TagListItem:           "item",
	TagCodeBlock:          "codeblock",
	TagBlockQuote:         "blockquote",
	TagTable:              "table",
	TagTableHead:          "thead",
	TagTableRow:           "row",
	TagTableCell:          "cell",
	TagStrikethrough:      "strikethrough",
	TagFootnoteDefinition: "footnote",
	TagHTMLBlock:          "htmlblock",
}

// String returns a short lowercase name for the tag kind.
func (k TagKind) String() string {
	if k < 0 || int(k) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[k]
}

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Tag carries the attributes of a container. Only the fields relevant to
// Kind are meaningful.
type Tag struct {
	Kind TagKind

	Level int    // Heading: 1-6
	ID    string // Heading: anchor id, empty when absent

	URL string // Link, Image
	Alt string // Image: plain-text alternative

	Ordered bool // List
	Start   int  // List: first number of an ordered list

	Language string // CodeBlock: info string, empty when absent

	Alignments []Alignment // Table: one per column
}

// Event is a single item of a document event stream.
type Event struct {
	Kind Kind
	Tag  Tag    // Start, End
	Text string // Text, Code, HTML, FootnoteReference
	// Checked reports the state of a task list marker.
	Checked bool
}

// Source produces the event stream for a markdown document.
// The returned sequence is lazy and may be consumed at most once.
type Source interface {
	Events(src []byte) iter.Seq[Event]
}

// Start returns a Start event for tag.
func Start(tag Tag) Event { return Event{Kind: KindStart, Tag: tag} }

// End returns an End event for tag.
func End(tag Tag) Event { return Event{Kind: KindEnd, Tag: tag} }

// Text returns a Text event.
func Text(s string) Event { return Event{Kind: KindText, Text: s} }

// Code returns an inline Code event.
func Code(s string) Event { return Event{Kind: KindCode, Text: s} }

// Rule returns a thematic break event.
func Rule() Event { return Event{Kind: KindRule} }

// SoftBreak returns a soft line break event.
func SoftBreak() Event { return Event{Kind: KindSoftBreak} }

// HardBreak returns a hard line break event.
func HardBreak() Event { return Event{Kind: KindHardBreak} }

// HTML returns a raw HTML event.
func HTML(s string) Event { return Event{Kind: KindHTML, Text: s} }

// Heading returns a heading tag.
func Heading(level int, id string) Tag { return Tag{Kind: TagHeading, Level: level, ID: id} }

// Link returns a link tag.
func Link(url string) Tag { return Tag{Kind: TagLink, URL: url} }

// Image returns an image tag.
func Image(url, alt string) Tag { return Tag{Kind: TagImage, URL: url, Alt: alt} }

// OrderedList returns an ordered list tag starting at start.
func OrderedList(start int) Tag { return Tag{Kind: TagList, Ordered: true, Start: start} }

// UnorderedList returns an unordered list tag.
func UnorderedList() Tag { return Tag{Kind: TagList} }

// CodeBlock returns a code block tag.
func CodeBlock(language string) Tag { return Tag{Kind: TagCodeBlock, Language: language} }

// Table returns a table tag with the given column alignments.
func Table(alignments ...Alignment) Tag { return Tag{Kind: TagTable, Alignments: alignments} }

// Simple returns a tag that carries no attributes.
func Simple(kind TagKind) Tag { return Tag{Kind: kind} }

// Wrap returns the Start and End events of tag around inner.
func Wrap(tag Tag, inner ...Event) []Event {
	out := make([]Event, 0, len(inner)+2)
	out = append(out, Start(tag))
	out = append(out, inner...)
	return append(out, End(tag))
}
