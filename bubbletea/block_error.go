package bubbletea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock marks a message that could not be sent. The unsent text is
// quoted under the error so the user can tell which message failed.
type ErrorBlock struct {
	text   string
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock for text that failed with err.
func NewErrorBlock(text string, err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{text: text, err: err, styles: styles}
}

func (b *ErrorBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *ErrorBlock) View(width int) string {
	content := b.styles.Error.Render(fmt.Sprintf("Not sent: %v", b.err))
	if b.text != "" {
		content += "\n" + b.styles.Muted.Render("> "+firstLine(terminalSafe(b.text)))
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// firstLine shortens multi-line messages to their first line.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}
