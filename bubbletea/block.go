package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lessonmark"
)

// MessageBlock is a renderable element in the conversation.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type MessageBlock interface {
	Update(tea.Msg) (MessageBlock, tea.Cmd)
	View(width int) string
}

// blockSeparator returns the gap between two adjacent blocks. Consecutive
// messages from the same sender are grouped with a single line break.
func blockSeparator(prev, curr MessageBlock) string {
	if p, ok := prev.(*ChatMessageBlock); ok {
		if c, ok := curr.(*ChatMessageBlock); ok && sameSender(p.msg, c.msg) {
			return "\n"
		}
	}
	if _, ok := prev.(*UserMessageBlock); ok {
		if _, ok := curr.(*UserMessageBlock); ok {
			return "\n"
		}
	}
	return "\n\n"
}

func sameSender(a, b lessonmark.ChatMessage) bool {
	return a.Role == b.Role && a.Author == b.Author
}
