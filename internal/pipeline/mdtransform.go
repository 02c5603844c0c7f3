package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight markers live in the Unicode Private Use Area so they survive the
// parser and the escaper untouched. They become <mark> tags after rendering.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==([^=\n]+?)==`)
	fencePattern       = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	indentedCodeLine   = regexp.MustCompile(`^( {4}|\t)`)
	listItemLine       = regexp.MustCompile(`^ {0,3}([-*+]|\d{1,9}[.)])( |\t|$)`)

	markReplacer = strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	)
	markStripper = strings.NewReplacer(
		MarkStartPlaceholder, "",
		MarkEndPlaceholder, "",
	)
)

// MarkdownPreprocessor rewrites markdown before it reaches the event source.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalises line endings, compresses blank lines and
// turns ==text== into highlight markers outside fenced code.
type CommonMarkPreprocessor struct{}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)

// PreprocessMarkdown returns content unchanged when ctx is already done.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = convertHighlights(content)
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertHighlights replaces ==text== line by line, leaving fenced and
// indented code blocks alone.
func convertHighlights(content string) string {
	if !strings.Contains(content, "==") {
		return content
	}

	lines := strings.Split(content, "\n")
	// listOpen is set while the last paragraph-level line belongs to a list:
	// indented lines after a blank then continue the item instead of
	// opening a code block.
	var (
		fence     string
		indented  bool
		prevBlank = true
		listOpen  bool
	)
	for i, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if m := fencePattern.FindStringSubmatch(line); m != nil {
			indented = false
			switch {
			case fence == "":
				fence = m[1]
			case strings.HasPrefix(m[1], fence[:1]) && len(m[1]) >= len(fence):
				fence = ""
			}
			prevBlank = false
			continue
		}
		if fence != "" {
			continue
		}

		switch {
		case blank:
		case indentedCodeLine.MatchString(line) && (indented || (prevBlank && !listOpen)):
			indented = true
		default:
			indented = false
			listOpen = listItemLine.MatchString(line) ||
				(listOpen && (!prevBlank || indentedCodeLine.MatchString(line)))
			lines[i] = highlightLine(line)
		}
		prevBlank = blank
	}
	return strings.Join(lines, "\n")
}

// highlightLine converts the markers of one line. Markers inside code
// spans are ignored; a span may sit between two markers.
func highlightLine(line string) string {
	spans := codeSpans(line)
	if len(spans) == 0 {
		return highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	}

	masked := []byte(line)
	for _, sp := range spans {
		for j := sp[0]; j < sp[1]; j++ {
			masked[j] = 'x'
		}
	}

	var b strings.Builder
	last := 0
	for _, m := range highlightPattern.FindAllSubmatchIndex(masked, -1) {
		b.WriteString(line[last:m[0]])
		b.WriteString(MarkStartPlaceholder)
		b.WriteString(line[m[2]:m[3]])
		b.WriteString(MarkEndPlaceholder)
		last = m[1]
	}
	b.WriteString(line[last:])
	return b.String()
}

// codeSpans returns the byte ranges of the inline code spans of a line. A
// run of backticks opens a span closed by the next run of the same length;
// a run without a match is literal.
func codeSpans(line string) [][2]int {
	if !strings.Contains(line, "`") {
		return nil
	}

	var spans [][2]int
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		n := backtickRun(line, i)
		end := -1
		for j := i + n; j < len(line); {
			if line[j] != '`' {
				j++
				continue
			}
			m := backtickRun(line, j)
			if m == n {
				end = j + m
				break
			}
			j += m
		}
		if end == -1 {
			i += n
			continue
		}
		spans = append(spans, [2]int{i, end})
		i = end
	}
	return spans
}

// backtickRun counts the backticks starting at i.
func backtickRun(line string, i int) int {
	n := 0
	for i+n < len(line) && line[i+n] == '`' {
		n++
	}
	return n
}

// ConvertMarkPlaceholders turns highlight markers into <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return markReplacer.Replace(content)
}

// StripMarkPlaceholders removes highlight markers, for plain text such as
// heading records.
func StripMarkPlaceholders(content string) string {
	return markStripper.Replace(content)
}
