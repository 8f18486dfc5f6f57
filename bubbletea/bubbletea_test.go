package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/lessonmark"
	bt "github.com/fwojciec/lessonmark/bubbletea"
	"github.com/fwojciec/lessonmark/mock"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, conv lessonmark.Conversation) bt.Model {
	t.Helper()
	m := bt.New(conv, lessonmark.DefaultTheme(), 0)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// emptyConversation has no history and echoes nothing back.
func emptyConversation() *mock.Conversation {
	return &mock.Conversation{
		HistoryFn: func(context.Context) ([]lessonmark.ChatMessage, error) {
			return nil, nil
		},
		SendFn: func(context.Context, string) ([]lessonmark.ChatMessage, error) {
			return nil, nil
		},
	}
}
