package chat

import (
	"fmt"
	"html"
	"io"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/smallnest/geoagents/history"
)

const exportHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>geoagents transcript</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
.role { font-weight: bold; margin-top: 1rem; }
.user .role { color: #2457a8; }
.assistant .role { color: #1d7a33; }
</style>
</head>
<body>
`

// ExportHTML renders a transcript as a standalone HTML page. Assistant
// messages are treated as markdown; everything is sanitized, since the
// content comes from a model and from third-party APIs.
func ExportHTML(msgs []history.Message, w io.Writer) error {
	policy := bluemonday.UGCPolicy()

	if _, err := io.WriteString(w, exportHeader); err != nil {
		return err
	}

	for _, m := range msgs {
		var body string
		if m.Role == "assistant" {
			p := parser.NewWithExtensions(parser.CommonExtensions)
			renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
			rendered := markdown.ToHTML([]byte(m.Content), p, renderer)
			body = string(policy.SanitizeBytes(rendered))
		} else {
			body = "<p>" + html.EscapeString(m.Content) + "</p>"
		}

		if _, err := fmt.Fprintf(w, "<div class=%q>\n<div class=\"role\">%s</div>\n%s</div>\n",
			m.Role, html.EscapeString(m.Role), body); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
