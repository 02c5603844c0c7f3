package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// DefaultDocumentTitle is used when a standalone document has no title.
const DefaultDocumentTitle = "Document"

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
// Arguments: title, head extras, body.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
%s</head>
<body>
%s</body>
</html>
`

// WrapDocument embeds fragment in a standalone HTML5 page. The title is
// escaped; css, when set, is written into a <style> block in the head.
func WrapDocument(fragment, title, css string) string {
	if title == "" {
		title = DefaultDocumentTitle
	}
	var head string
	if css != "" {
		head = "<style>\n" + sanitizeCSS(css) + "\n</style>\n"
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), head, fragment)
}

// sanitizeCSS escapes sequences that would close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
