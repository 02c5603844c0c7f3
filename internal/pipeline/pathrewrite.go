package pipeline

import (
	"iter"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/event"
)

// LinkOptions controls link rewriting.
type LinkOptions struct {
	// SourceDir is the directory of the markdown file.
	SourceDir string
	// OutputDir is the directory the HTML file is written to. Relative paths
	// are rebased from SourceDir to OutputDir when both are set and differ.
	OutputDir string
	// MarkdownToHTML turns links to .md and .markdown files into .html links.
	MarkdownToHTML bool
}

// LinkRewriter adjusts relative link and image destinations so they keep
// working from the output location. URLs, anchors and absolute paths are
// left as they are. Paths escaping the source directory are not rebased,
// though .md links among them are still renamed.
type LinkRewriter struct {
	mdToHTML  bool
	sourceDir string // absolute, empty when no rebasing
	outputDir string
}

// NewLinkRewriter resolves the directories of opts. It returns nil when no
// rewriting applies, including when both directories are the same.
func NewLinkRewriter(opts LinkOptions) (*LinkRewriter, error) {
	rw := &LinkRewriter{mdToHTML: opts.MarkdownToHTML}
	if opts.SourceDir != "" && opts.OutputDir != "" {
		src, err := filepath.Abs(opts.SourceDir)
		if err != nil {
			return nil, err
		}
		out, err := filepath.Abs(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if src != out {
			rw.sourceDir, rw.outputDir = src, out
		}
	}
	if !rw.mdToHTML && rw.sourceDir == "" {
		return nil, nil
	}
	return rw, nil
}

// Events returns events with the URL of every Link and Image tag rewritten.
// A nil rewriter returns events unchanged.
func (rw *LinkRewriter) Events(events iter.Seq[event.Event]) iter.Seq[event.Event] {
	if rw == nil || events == nil {
		return events
	}
	return func(yield func(event.Event) bool) {
		for ev := range events {
			if ev.Kind == event.KindStart || ev.Kind == event.KindEnd {
				switch ev.Tag.Kind {
				case event.TagLink:
					ev.Tag.URL = rw.Link(ev.Tag.URL)
				case event.TagImage:
					ev.Tag.URL = rw.Image(ev.Tag.URL)
				}
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Link rewrites a link destination.
func (rw *LinkRewriter) Link(dest string) string {
	return rw.rewrite(dest, rw.mdToHTML)
}

// Image rewrites an image source. Image paths are never renamed.
func (rw *LinkRewriter) Image(src string) string {
	return rw.rewrite(src, false)
}

func (rw *LinkRewriter) rewrite(v string, mdToHTML bool) string {
	if !isRelativePath(v) {
		return v
	}

	path, suffix := splitSuffix(v)
	if mdToHTML {
		path = markdownToHTMLPath(path)
	}
	if rw.sourceDir != "" && path != "" {
		if rebased, ok := rw.rebase(path); ok {
			path = rebased
		}
	}
	return path + suffix
}

// rebase expresses a path relative to the source directory as a path
// relative to the output directory.
func (rw *LinkRewriter) rebase(path string) (string, bool) {
	abs := filepath.Join(rw.sourceDir, filepath.FromSlash(path))
	if !isPathUnderDir(abs, rw.sourceDir) {
		return "", false
	}
	rel, err := filepath.Rel(rw.outputDir, abs)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// isRelativePath reports whether a link value is a relative file path.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	for _, scheme := range []string{"http:", "https:", "file:", "data:", "mailto:", "javascript:"} {
		if len(path) >= len(scheme) && strings.EqualFold(path[:len(scheme)], scheme) {
			return false
		}
	}
	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

// splitSuffix separates a trailing query or fragment from a path.
func splitSuffix(v string) (path, suffix string) {
	if i := strings.IndexAny(v, "?#"); i != -1 {
		return v[:i], v[i:]
	}
	return v, ""
}

// markdownToHTMLPath swaps a markdown extension for .html.
func markdownToHTMLPath(path string) string {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		return strings.TrimSuffix(path, ext) + ".html"
	}
	return path
}

// isPathUnderDir checks that absPath does not escape dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}
