// Package goldmark renders lesson markdown to ANSI-styled terminal output
// using goldmark for parsing, lipgloss for styling and chroma for code.
package goldmark

import "github.com/fwojciec/lessonmark"

// Render parses lesson source and returns ANSI-styled terminal output.
// Paragraphs, quotes and list items are word-wrapped to width. Code blocks
// are highlighted and rendered without reflow; tables are laid out in
// aligned columns.
func Render(source string, width int, theme lessonmark.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
