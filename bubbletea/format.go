package bubbletea

import (
	"strings"

	"github.com/fwojciec/lessonmark/chat"
)

// renderSegments styles formatted chat segments for the terminal. Code
// blocks always start and end on their own lines.
func renderSegments(segs []chat.Segment, styles Styles) string {
	var b strings.Builder
	afterBlock := false
	for _, s := range segs {
		if afterBlock && s.Kind != chat.LineBreak {
			b.WriteString("\n")
		}
		afterBlock = false
		switch s.Kind {
		case chat.Text:
			b.WriteString(s.Text)
		case chat.Bold:
			b.WriteString(styles.Bold.Render(s.Text))
		case chat.Code:
			b.WriteString(styles.Code.Render(s.Text))
		case chat.CodeBlock:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
			gutter := styles.Muted.Render("│") + " "
			lines := strings.Split(strings.TrimRight(s.Text, "\n"), "\n")
			for i, line := range lines {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString(gutter + line)
			}
			afterBlock = true
		case chat.LineBreak:
			b.WriteString("\n")
		}
	}
	return b.String()
}
