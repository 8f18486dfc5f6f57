package http

import (
	"context"

	"github.com/fwojciec/lessonmark"
)

var (
	_ lessonmark.Conversation = (*AssistantChat)(nil)
	_ lessonmark.Conversation = (*GroupChat)(nil)
)

// AssistantChat is the one-to-one conversation with the tutoring
// assistant.
type AssistantChat struct {
	Backend lessonmark.Backend
}

// History returns the stored assistant conversation.
func (a *AssistantChat) History(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	return a.Backend.ChatHistory(ctx)
}

// Send posts text and returns the assistant's reply.
func (a *AssistantChat) Send(ctx context.Context, text string) ([]lessonmark.ChatMessage, error) {
	if err := lessonmark.ValidateChatInput(text); err != nil {
		return nil, err
	}
	reply, err := a.Backend.SendChat(ctx, text)
	if err != nil {
		return nil, err
	}
	return []lessonmark.ChatMessage{reply}, nil
}

// GroupChat is the grade-wide group conversation. Posting only
// acknowledges the message; new messages arrive through History.
type GroupChat struct {
	Backend lessonmark.Backend
}

// History returns the group conversation.
func (g *GroupChat) History(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	return g.Backend.GroupMessages(ctx)
}

// Send posts text to the group.
func (g *GroupChat) Send(ctx context.Context, text string) ([]lessonmark.ChatMessage, error) {
	if err := lessonmark.ValidateChatInput(text); err != nil {
		return nil, err
	}
	return nil, g.Backend.SendGroupMessage(ctx, text)
}
