package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/chat"
)

var _ MessageBlock = (*ChatMessageBlock)(nil)

// ChatMessageBlock renders an assistant reply or a group chat post under a
// sender label.
type ChatMessageBlock struct {
	msg       lessonmark.ChatMessage
	showLabel bool
	styles    Styles
}

// NewChatMessageBlock creates a ChatMessageBlock. The label is omitted
// when showLabel is false, which groups runs of posts by one sender.
func NewChatMessageBlock(msg lessonmark.ChatMessage, showLabel bool, styles Styles) *ChatMessageBlock {
	return &ChatMessageBlock{msg: msg, showLabel: showLabel, styles: styles}
}

func (b *ChatMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *ChatMessageBlock) View(width int) string {
	body := lipgloss.NewStyle().Width(width).Render(renderSegments(chat.Parse(terminalSafe(b.msg.Content)), b.styles))
	if !b.showLabel {
		return body
	}
	return b.label() + "\n" + body
}

func (b *ChatMessageBlock) label() string {
	if b.msg.Role == lessonmark.RoleAssistant {
		return b.styles.Accent.Render("assistant")
	}
	name := terminalSafe(b.msg.Author)
	if name == "" {
		name = "classmate"
	}
	return b.styles.PeerMsg.Render(name)
}
