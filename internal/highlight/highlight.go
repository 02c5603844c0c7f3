// Package highlight renders code block content as syntax-highlighted HTML
// using chroma. Output uses CSS classes, so pages need the stylesheet from
// WriteCSS.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is used when no style name is given.
const DefaultStyle = "github"

// ErrUnknownStyle indicates the requested chroma style does not exist.
var ErrUnknownStyle = errors.New("unknown highlight style")

// Highlighter highlights code blocks by language name.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter for the named chroma style.
// An empty name selects DefaultStyle.
func New(styleName string) (*Highlighter, error) {
	if styleName == "" {
		styleName = DefaultStyle
	}
	// styles.Get falls back silently; an unknown name must be reported.
	style := styles.Get(styleName)
	if style == nil || !strings.EqualFold(style.Name, styleName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}

	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),          // CSS classes keep markup small
			chromahtml.PreventSurroundingPre(true), // the renderer owns <pre><code>
		),
	}, nil
}

// Highlight returns highlighted markup for code. It reports false when the
// language is empty or unknown, or when tokenising fails.
func (h *Highlighter) Highlight(language, code string) (string, bool) {
	if h == nil || language == "" {
		return "", false
	}

	// Info strings may carry attributes after the language: "go {linenos=true}".
	name := strings.Fields(language)[0]
	lexer := lexers.Get(name)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteCSS writes the stylesheet matching the highlighter's classes.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// StyleNames lists the available chroma styles.
func StyleNames() []string {
	return styles.Names()
}
