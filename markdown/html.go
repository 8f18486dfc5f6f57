package markdown

import (
	"strconv"
	"strings"
)

// block is one block-level token produced by the scanner.
type block interface {
	html(in inliner) string
}

type codeBlock struct {
	lang string
	code string
}

func (b codeBlock) html(inliner) string {
	return `<pre><code class="language-` + b.lang + `">` + escapeText(b.code) + `</code></pre>`
}

type table struct {
	header []string
	rows   [][]string
}

func (t table) html(in inliner) string {
	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	for _, cell := range t.header {
		sb.WriteString("<th>" + in.render(cell) + "</th>")
	}
	sb.WriteString("</tr></thead><tbody>")
	for _, row := range t.rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>" + in.render(cell) + "</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")
	return sb.String()
}

type blockquote struct {
	text string
}

func (b blockquote) html(in inliner) string {
	return "<blockquote>" + in.render(b.text) + "</blockquote>"
}

type heading struct {
	level int
	text  string
}

func (h heading) html(in inliner) string {
	tag := "h" + strconv.Itoa(h.level)
	return "<" + tag + ">" + in.render(h.text) + "</" + tag + ">"
}

type list struct {
	ordered bool
	items   []string
}

func (l list) html(in inliner) string {
	tag := "ul"
	if l.ordered {
		tag = "ol"
	}
	items := make([]string, len(l.items))
	for i, item := range l.items {
		items[i] = "<li>" + in.render(item) + "</li>"
	}
	return "<" + tag + ">" + strings.Join(items, "\n") + "</" + tag + ">"
}

// paragraph is a single line of prose. A line that already starts with an
// HTML tag is emitted without a <p> wrapper unless prose is being escaped.
type paragraph struct {
	text string
}

func (p paragraph) html(in inliner) string {
	body := in.render(p.text)
	if !in.escape && rawHTMLStartRe.MatchString(p.text) {
		return body
	}
	if isBlank(body) {
		return ""
	}
	return "<p>" + body + "</p>"
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText escapes &, < and > only. Quotes are left alone because the
// result is only ever placed in element content.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
