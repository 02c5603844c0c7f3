package pipeline

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizePolicy is built once; a bluemonday policy is safe for concurrent
// use after construction.
var sanitizePolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Classes set through heading/paragraph options and code languages.
	for _, h := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		p.AllowAttrs("class").OnElements(h)
	}
	p.AllowAttrs("class").OnElements("p", "code", "span", "pre")
	p.AllowAttrs("start").Matching(bluemonday.Integer).OnElements("ol")
	p.AllowAttrs("title").OnElements("img")
	p.AllowElements("nav", "mark", "s")
	return p
})

// Sanitize removes markup that is unsafe to embed in a page, such as
// scripts, event handlers and javascript: URLs. Markup produced by the
// renderer, the table of contents and the highlighter is preserved.
func Sanitize(fragment string) string {
	return sanitizePolicy().Sanitize(fragment)
}
