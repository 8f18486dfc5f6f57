package mock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend(t *testing.T) {
	t.Parallel()

	t.Run("delegates to LessonFn", func(t *testing.T) {
		t.Parallel()
		want := lessonmark.Lesson{ID: 7, Title: "Loops"}
		b := mock.Backend{
			LessonFn: func(_ context.Context, id int) (lessonmark.Lesson, error) {
				assert.Equal(t, 7, id)
				return want, nil
			},
		}
		got, err := b.Lesson(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("delegates to SendChatFn", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{
			SendChatFn: func(_ context.Context, text string) (lessonmark.ChatMessage, error) {
				return lessonmark.ChatMessage{ID: 1, Role: lessonmark.RoleAssistant, Content: "re: " + text}, nil
			},
		}
		got, err := b.SendChat(context.Background(), "hi")
		require.NoError(t, err)
		assert.Equal(t, "re: hi", got.Content)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("backend error")
		b := mock.Backend{
			SendGroupMessageFn: func(context.Context, string) error { return wantErr },
		}
		assert.ErrorIs(t, b.SendGroupMessage(context.Background(), "x"), wantErr)
	})

	t.Run("panics when ModulesFn not set", func(t *testing.T) {
		t.Parallel()
		var b mock.Backend
		assert.Panics(t, func() { _, _ = b.Modules(context.Background()) })
	})
}

func TestConversation(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SendFn", func(t *testing.T) {
		t.Parallel()
		c := mock.Conversation{
			SendFn: func(_ context.Context, text string) ([]lessonmark.ChatMessage, error) {
				return []lessonmark.ChatMessage{{Content: text}}, nil
			},
		}
		got, err := c.Send(context.Background(), "hello")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "hello", got[0].Content)
	})

	t.Run("panics when HistoryFn not set", func(t *testing.T) {
		t.Parallel()
		var c mock.Conversation
		assert.Panics(t, func() { _, _ = c.History(context.Background()) })
	})
}

func TestRenderCache(t *testing.T) {
	t.Parallel()

	t.Run("delegates to GetFn and SetFn", func(t *testing.T) {
		t.Parallel()
		var stored string
		c := mock.RenderCache{
			GetFn: func(_ context.Context, key string) (string, bool, error) {
				return stored, stored != "", nil
			},
			SetFn: func(_ context.Context, key, html string, ttl time.Duration) error {
				assert.Equal(t, time.Minute, ttl)
				stored = html
				return nil
			},
		}
		_, ok, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(context.Background(), "k", "<p>x</p>", time.Minute))

		got, ok, err := c.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "<p>x</p>", got)
	})
}
