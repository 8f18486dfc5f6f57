package chat

import (
	"html"
	"strings"
)

// HTML renders a message as an inline HTML fragment. All message text is
// escaped; the only elements produced are strong, code, pre and br.
func HTML(text string) string {
	return SegmentsHTML(Parse(text))
}

// SegmentsHTML renders already parsed segments.
func SegmentsHTML(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Kind {
		case Text:
			b.WriteString(html.EscapeString(s.Text))
		case Bold:
			b.WriteString("<strong>" + html.EscapeString(s.Text) + "</strong>")
		case Code:
			b.WriteString("<code>" + html.EscapeString(s.Text) + "</code>")
		case CodeBlock:
			b.WriteString("<pre><code>" + html.EscapeString(s.Text) + "</code></pre>")
		case LineBreak:
			b.WriteString("<br>")
		}
	}
	return b.String()
}
