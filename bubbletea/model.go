package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lessonmark"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the chat window.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	conv         lessonmark.Conversation
	pollInterval time.Duration
	styles       Styles

	messages []lessonmark.ChatMessage
	notices  []notice
	blocks   []MessageBlock

	running bool
	cancel  context.CancelFunc
	err     error
	ready   bool
}

// notice is a failed send shown after the first `after` messages.
type notice struct {
	after int
	text  string
	err   error
}

// New creates a chat Model for conv. A positive pollInterval refreshes the
// history periodically, which is how group chat picks up new posts.
func New(conv lessonmark.Conversation, theme lessonmark.Theme, pollInterval time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = lessonmark.MaxChatLength

	return Model{
		Input:        ti,
		conv:         conv,
		pollInterval: pollInterval,
		styles:       NewStyles(theme),
	}
}

// Running returns whether a send is in flight.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Messages returns the conversation as currently displayed, including
// messages the backend has not acknowledged yet.
func (m Model) Messages() []lessonmark.ChatMessage {
	out := make([]lessonmark.ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadHistory(m.conv), m.schedulePoll())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case HistoryMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.messages = reconcile(m.messages, msg.Messages)
		return m.refresh(), nil

	case SendDoneMsg:
		m.running = false
		m.cancel = nil
		cmds = append(cmds, m.Input.Focus())
		if msg.Err != nil {
			m.messages = removeEcho(m.messages, msg.Text)
			if m.Input.Value() == "" {
				m.Input.SetValue(msg.Text)
			}
			if !errors.Is(msg.Err, context.Canceled) {
				m.err = msg.Err
				m.notices = append(m.notices, notice{after: len(m.messages), text: msg.Text, err: msg.Err})
			}
			return m.refresh(), tea.Batch(cmds...)
		}
		m.messages = appendNew(m.messages, msg.Replies)
		cmds = append(cmds, loadHistory(m.conv))
		return m.refresh(), tea.Batch(cmds...)

	case PollMsg:
		return m, tea.Batch(loadHistory(m.conv), m.schedulePoll())
	}

	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := max(msg.Height-inputH-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Input.Width = msg.Width
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		if err := lessonmark.ValidateChatInput(text); err != nil {
			m.err = err
			return m, nil
		}
		return m.submitInput(text)
	}

	// Only forward non-character keys to the viewport so typing 'j' or 'k'
	// does not scroll.
	if !m.running {
		var cmd tea.Cmd
		var cmds []tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err = nil

	m.messages = append(m.messages, lessonmark.ChatMessage{
		Role:      lessonmark.RoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.Input.Blur()

	return m.refresh(), sendMessage(ctx, m.conv, text)
}

// refresh rebuilds the blocks and scrolls to the newest message.
func (m Model) refresh() Model {
	m.blocks = m.buildBlocks()
	if m.ready {
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
	}
	return m
}

func (m Model) buildBlocks() []MessageBlock {
	blocks := make([]MessageBlock, 0, len(m.messages)+len(m.notices))
	ni := 0
	addNotices := func(upTo int) {
		for ni < len(m.notices) && m.notices[ni].after <= upTo {
			blocks = append(blocks, NewErrorBlock(m.notices[ni].text, m.notices[ni].err, m.styles))
			ni++
		}
	}
	for i, msg := range m.messages {
		addNotices(i)
		if msg.Role == lessonmark.RoleUser {
			pending := msg.ID == 0 && m.running
			blocks = append(blocks, NewUserMessageBlock(msg.Content, pending, m.styles))
			continue
		}
		showLabel := true
		if len(blocks) > 0 {
			if prev, ok := blocks[len(blocks)-1].(*ChatMessageBlock); ok && sameSender(prev.msg, msg) {
				showLabel = false
			}
		}
		blocks = append(blocks, NewChatMessageBlock(msg, showLabel, m.styles))
	}
	addNotices(len(m.messages))
	for ; ni < len(m.notices); ni++ {
		blocks = append(blocks, NewErrorBlock(m.notices[ni].text, m.notices[ni].err, m.styles))
	}
	return blocks
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString(blockSeparator(m.blocks[i-1], block))
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Sending...")
	}
	return m.styles.Muted.Render("Enter to send, Ctrl+C to quit")
}

func (m Model) schedulePoll() tea.Cmd {
	if m.pollInterval <= 0 {
		return nil
	}
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return PollMsg{}
	})
}

// reconcile merges a fresh history into the displayed messages. Local
// echoes of the user's posts are dropped once the backend returns a user
// message with the same content.
func reconcile(existing, incoming []lessonmark.ChatMessage) []lessonmark.ChatMessage {
	acked := make(map[string]int)
	for _, m := range incoming {
		if m.Role == lessonmark.RoleUser && m.ID != 0 {
			acked[m.Content]++
		}
	}
	kept := make([]lessonmark.ChatMessage, 0, len(existing))
	for _, m := range existing {
		if m.ID == 0 && m.Role == lessonmark.RoleUser && acked[m.Content] > 0 {
			acked[m.Content]--
			continue
		}
		kept = append(kept, m)
	}
	return lessonmark.MergeMessages(kept, incoming)
}

// appendNew appends the replies whose IDs are not displayed yet. A history
// refresh can race the send and deliver the reply first.
func appendNew(msgs, replies []lessonmark.ChatMessage) []lessonmark.ChatMessage {
	for _, r := range replies {
		if r.ID != 0 && slices.ContainsFunc(msgs, func(m lessonmark.ChatMessage) bool { return m.ID == r.ID }) {
			continue
		}
		msgs = append(msgs, r)
	}
	return msgs
}

// removeEcho drops the most recent unacknowledged user message with text.
func removeEcho(msgs []lessonmark.ChatMessage, text string) []lessonmark.ChatMessage {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].ID == 0 && msgs[i].Role == lessonmark.RoleUser && msgs[i].Content == text {
			return append(msgs[:i:i], msgs[i+1:]...)
		}
	}
	return msgs
}

func loadHistory(conv lessonmark.Conversation) tea.Cmd {
	return func() tea.Msg {
		msgs, err := conv.History(context.Background())
		return HistoryMsg{Messages: msgs, Err: err}
	}
}

func sendMessage(ctx context.Context, conv lessonmark.Conversation, text string) tea.Cmd {
	return func() tea.Msg {
		replies, err := conv.Send(ctx, text)
		return SendDoneMsg{Text: text, Replies: replies, Err: err}
	}
}
