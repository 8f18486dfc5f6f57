package lessonmark

import (
	"context"
	"time"
)

// Backend is the platform's REST API as seen by a student client.
type Backend interface {
	Modules(ctx context.Context) ([]Module, error)
	Lesson(ctx context.Context, id int) (Lesson, error)
	Tasks(ctx context.Context) ([]CodeTask, error)
	Task(ctx context.Context, id int) (CodeTask, error)
	ChatHistory(ctx context.Context) ([]ChatMessage, error)
	SendChat(ctx context.Context, text string) (ChatMessage, error)
	GroupMessages(ctx context.Context) ([]ChatMessage, error)
	SendGroupMessage(ctx context.Context, text string) error
}

// Conversation is a chat the user can read and post to.
//
// Send returns the messages produced by posting text, excluding the user's
// own message: the assistant reply for assistant chat, or nothing when the
// transport only acknowledges the post and new messages arrive by polling.
type Conversation interface {
	History(ctx context.Context) ([]ChatMessage, error)
	Send(ctx context.Context, text string) ([]ChatMessage, error)
}

// RenderCache stores rendered HTML fragments by key.
// Get reports ok=false with a nil error on a miss.
type RenderCache interface {
	Get(ctx context.Context, key string) (html string, ok bool, err error)
	Set(ctx context.Context, key, html string, ttl time.Duration) error
}
