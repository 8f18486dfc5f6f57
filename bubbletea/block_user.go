package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lessonmark/chat"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders the user's own message with a "> " prefix on
// the user background. Pending messages have not been acknowledged yet.
type UserMessageBlock struct {
	text    string
	pending bool
	styles  Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(text string, pending bool, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, pending: pending, styles: styles}
}

func (b *UserMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *UserMessageBlock) View(width int) string {
	content := b.styles.UserMsg.Render("> ") + renderSegments(chat.Parse(terminalSafe(b.text)), b.styles)
	if b.pending {
		content += " " + b.styles.Muted.Render("(sending)")
	}
	return b.styles.UserBg.Width(width).Render(content)
}
