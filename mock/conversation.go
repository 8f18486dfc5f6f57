package mock

import (
	"context"
	"time"

	"github.com/fwojciec/lessonmark"
)

// Interface compliance checks.
var (
	_ lessonmark.Conversation = (*Conversation)(nil)
	_ lessonmark.RenderCache  = (*RenderCache)(nil)
)

// Conversation is a test double for lessonmark.Conversation.
type Conversation struct {
	HistoryFn func(ctx context.Context) ([]lessonmark.ChatMessage, error)
	SendFn    func(ctx context.Context, text string) ([]lessonmark.ChatMessage, error)
}

// History delegates to HistoryFn.
func (c *Conversation) History(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	return c.HistoryFn(ctx)
}

// Send delegates to SendFn.
func (c *Conversation) Send(ctx context.Context, text string) ([]lessonmark.ChatMessage, error) {
	return c.SendFn(ctx, text)
}

// RenderCache is a test double for lessonmark.RenderCache.
type RenderCache struct {
	GetFn func(ctx context.Context, key string) (string, bool, error)
	SetFn func(ctx context.Context, key, html string, ttl time.Duration) error
}

// Get delegates to GetFn.
func (c *RenderCache) Get(ctx context.Context, key string) (string, bool, error) {
	return c.GetFn(ctx, key)
}

// Set delegates to SetFn.
func (c *RenderCache) Set(ctx context.Context, key, html string, ttl time.Duration) error {
	return c.SetFn(ctx, key, html, ttl)
}
