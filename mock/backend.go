// Package mock provides test doubles for lessonmark interfaces using
// function fields.
package mock

import (
	"context"

	"github.com/fwojciec/lessonmark"
)

// Interface compliance check.
var _ lessonmark.Backend = (*Backend)(nil)

// Backend is a test double for lessonmark.Backend.
// Set the function fields for the methods you need.
type Backend struct {
	ModulesFn          func(ctx context.Context) ([]lessonmark.Module, error)
	LessonFn           func(ctx context.Context, id int) (lessonmark.Lesson, error)
	TasksFn            func(ctx context.Context) ([]lessonmark.CodeTask, error)
	TaskFn             func(ctx context.Context, id int) (lessonmark.CodeTask, error)
	ChatHistoryFn      func(ctx context.Context) ([]lessonmark.ChatMessage, error)
	SendChatFn         func(ctx context.Context, text string) (lessonmark.ChatMessage, error)
	GroupMessagesFn    func(ctx context.Context) ([]lessonmark.ChatMessage, error)
	SendGroupMessageFn func(ctx context.Context, text string) error
}

// Modules delegates to ModulesFn.
func (b *Backend) Modules(ctx context.Context) ([]lessonmark.Module, error) {
	return b.ModulesFn(ctx)
}

// Lesson delegates to LessonFn.
func (b *Backend) Lesson(ctx context.Context, id int) (lessonmark.Lesson, error) {
	return b.LessonFn(ctx, id)
}

// Tasks delegates to TasksFn.
func (b *Backend) Tasks(ctx context.Context) ([]lessonmark.CodeTask, error) {
	return b.TasksFn(ctx)
}

// Task delegates to TaskFn.
func (b *Backend) Task(ctx context.Context, id int) (lessonmark.CodeTask, error) {
	return b.TaskFn(ctx, id)
}

// ChatHistory delegates to ChatHistoryFn.
func (b *Backend) ChatHistory(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	return b.ChatHistoryFn(ctx)
}

// SendChat delegates to SendChatFn.
func (b *Backend) SendChat(ctx context.Context, text string) (lessonmark.ChatMessage, error) {
	return b.SendChatFn(ctx, text)
}

// GroupMessages delegates to GroupMessagesFn.
func (b *Backend) GroupMessages(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	return b.GroupMessagesFn(ctx)
}

// SendGroupMessage delegates to SendGroupMessageFn.
func (b *Backend) SendGroupMessage(ctx context.Context, text string) error {
	return b.SendGroupMessageFn(ctx, text)
}
