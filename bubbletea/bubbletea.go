// Package bubbletea provides a Bubble Tea chat window for the assistant and
// group conversations.
package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lessonmark"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits and returns the final model so the caller can save the
// conversation. Cancelling ctx quits the program.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	final, err := p.Run()
	if err != nil {
		return m, err
	}
	fm, ok := final.(Model)
	if !ok {
		return m, fmt.Errorf("unexpected final model %T", final)
	}
	return fm, nil
}

// HistoryMsg carries the result of loading the conversation history.
type HistoryMsg struct {
	Messages []lessonmark.ChatMessage
	Err      error
}

// SendDoneMsg signals that a send has completed. Replies holds the
// messages the conversation returned for Text.
type SendDoneMsg struct {
	Text    string
	Replies []lessonmark.ChatMessage
	Err     error
}

// PollMsg triggers a history refresh.
type PollMsg struct{}
