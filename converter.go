package md2html

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2html/event"
	"github.com/alnah/go-md2html/internal/highlight"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/render"
	"github.com/alnah/go-md2html/internal/toc"
)

// Converter turns markdown documents into HTML fragments with a table of
// contents. It holds configuration only and is safe for concurrent use.
type Converter struct {
	timeout      time.Duration
	preprocessor pipeline.MarkdownPreprocessor
	source       event.Source
	renderOpts   []render.Option
	tocOpts      []toc.Option
	sanitize     bool
	mdLinks      bool
	highlighter  *highlight.Highlighter
}

// New creates a Converter. It returns an error when an option value is
// invalid, such as an unknown highlight style or a bad TOC depth range.
func New(opts ...Option) (*Converter, error) {
	cfg := converterConfig{
		timeout:  defaultTimeout,
		cellRole: CellRoleAnyRightAligned,
		nesting:  TOCNestingStepwise,
		tocMin:   MinHeadingLevel,
		tocMax:   MaxHeadingLevel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Converter{
		timeout:      cfg.timeout,
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		source:       cfg.source,
		sanitize:     cfg.sanitize,
		mdLinks:      cfg.markdownLinks,
	}
	if c.source == nil {
		c.source = pipeline.NewGoldmarkSource(pipeline.WithAutoIDs(cfg.autoIDs))
	}

	policy, err := cellRolePolicy(cfg.cellRole)
	if err != nil {
		return nil, err
	}
	c.renderOpts = []render.Option{
		render.WithCellRole(policy),
		render.WithAttributeEscaping(cfg.escapeAttrs),
		render.WithLineBreaks(cfg.lineBreaks),
	}

	if cfg.highlight {
		h, err := highlight.New(cfg.highlightStyle)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, cfg.highlightStyle)
		}
		c.highlighter = h
		c.renderOpts = append(c.renderOpts, render.WithCodeHighlighter(h))
	}

	nesting, err := tocNesting(cfg.nesting)
	if err != nil {
		return nil, err
	}
	if err := validateTOCDepth(cfg.tocMin, cfg.tocMax); err != nil {
		return nil, err
	}
	c.tocOpts = []toc.Option{
		toc.WithTitle(cfg.tocTitle),
		toc.WithDepth(cfg.tocMin, cfg.tocMax),
		toc.WithNesting(nesting),
		toc.WithAttributeEscaping(cfg.escapeAttrs),
	}

	return c, nil
}

// Convert renders one document. The context bounds the whole conversion
// together with the converter timeout.
func (c *Converter) Convert(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	md := c.preprocessor.PreprocessMarkdown(ctx, in.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	links, err := pipeline.NewLinkRewriter(pipeline.LinkOptions{
		SourceDir:      in.SourceDir,
		OutputDir:      in.OutputDir,
		MarkdownToHTML: c.mdLinks,
	})
	if err != nil {
		return nil, fmt.Errorf("rewriting links: %w", err)
	}

	rendered, err := c.render(ctx, md, in, links)
	if err != nil {
		return nil, err
	}

	var nav string
	if !in.NoTOC {
		nav = pipeline.ConvertMarkPlaceholders(toc.Build(rendered.Headings, c.tocOpts...))
	}
	body := pipeline.ConvertMarkPlaceholders(rendered.HTML)

	if c.sanitize {
		nav = pipeline.Sanitize(nav)
		body = pipeline.Sanitize(body)
	}

	return &Result{
		HTML:     Assemble(nav, body),
		TOC:      nav,
		Body:     body,
		Headings: toHeadings(rendered.Headings),
	}, nil
}

// HighlightCSS returns the stylesheet for highlighted code, or "" when
// highlighting is off.
func (c *Converter) HighlightCSS() (string, error) {
	if c.highlighter == nil {
		return "", nil
	}
	var buf strings.Builder
	if err := c.highlighter.WriteCSS(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// render runs the event source and the renderer in a goroutine so that a
// done context returns immediately. Neither supports cancellation itself.
func (c *Converter) render(ctx context.Context, md string, in Input, links *pipeline.LinkRewriter) (render.Result, error) {
	type result struct {
		res render.Result
		err error
	}
	done := make(chan result, 1)

	r := render.New(append([]render.Option{
		render.WithHeadingClass(in.HeadingClass),
		render.WithParagraphClass(in.ParagraphClass),
	}, c.renderOpts...)...)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrRenderFailed, p)}
			}
		}()
		done <- result{res: r.Render(links.Events(c.source.Events([]byte(md))))}
	}()

	select {
	case <-ctx.Done():
		return render.Result{}, ctx.Err()
	case out := <-done:
		return out.res, out.err
	}
}
