package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/lessonmark"
	lmhttp "github.com/fwojciec/lessonmark/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...lmhttp.Option) *lmhttp.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return lmhttp.NewClient(append([]lmhttp.Option{lmhttp.WithBaseURL(srv.URL)}, opts...)...)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"username": "ana", "password": "secret"}, body)
			_, _ = io.WriteString(w, `{"access_token":"tok-1","role":"student","user_id":3,"full_name":"Ana"}`)
		case "/api/student/modules":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `[]`)
		}
	})

	token, err := client.Login(context.Background(), "ana", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "tok-1", client.Token())

	_, err = client.Modules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/auth/login", "/api/student/modules"}, paths)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid credentials"}`)
	})

	_, err := client.Login(context.Background(), "ana", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, lessonmark.ErrUnauthorized)
	assert.True(t, lmhttp.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, client.Token())
}

func TestClient_Modules(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/student/modules", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"id": 1, "title": "Basics", "order": 1, "description": "Start here",
			 "lessons": [{"id": 10, "title": "Variables", "order": 1, "completed": true}]}
		]`)
	}, lmhttp.WithToken("tok"))

	got, err := client.Modules(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Basics", got[0].Title)
	assert.Equal(t, "Start here", got[0].Description)
	require.Len(t, got[0].Lessons, 1)
	assert.Equal(t, lessonmark.Lesson{ID: 10, ModuleID: 1, Title: "Variables", Order: 1, Completed: true}, got[0].Lessons[0])
}

func TestClient_Lesson(t *testing.T) {
	t.Parallel()

	t.Run("decodes lesson", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/student/lessons/42", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"id":42,"module_id":2,"title":"Loops","content":"# Loops","image_url":null,"video_url":"https://v","order":3,"grade":7,"topic_id":null}`)
		}, lmhttp.WithToken("tok"))

		got, err := client.Lesson(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, lessonmark.Lesson{
			ID: 42, ModuleID: 2, Title: "Loops", Content: "# Loops",
			VideoURL: "https://v", Order: 3, Grade: 7,
		}, got)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail":"Lesson not found"}`)
		})

		_, err := client.Lesson(context.Background(), 1)
		assert.ErrorIs(t, err, lessonmark.ErrNotFound)
		var apiErr *lmhttp.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Lesson not found", apiErr.Detail)
	})
}

func TestClient_Tasks(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/student/tasks":
			_, _ = io.WriteString(w, `[{"id":1,"title":"Sum","difficulty":"easy","description":"Add **two** numbers","starter_code":"def f():","best_score":null,"max_score":3}]`)
		case "/api/student/tasks/1":
			_, _ = io.WriteString(w, `{"id":1,"title":"Sum","description":"d","difficulty":"easy","starter_code":"","deadline":"2026-03-01T09:30:00"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	tasks, err := client.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Add **two** numbers", tasks[0].Description)
	assert.Equal(t, "def f():", tasks[0].StarterCode)
	assert.Nil(t, tasks[0].Deadline)

	task, err := client.Task(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, task.Deadline)
	assert.True(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC).Equal(*task.Deadline))
}

func TestClient_Chat(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/student/chat/history":
			_, _ = io.WriteString(w, `[
				{"id":1,"role":"user","content":"hi","created_at":"2026-02-18T12:00:00.123456"},
				{"id":2,"role":"assistant","content":"hello","created_at":null}
			]`)
		case r.URL.Path == "/api/student/chat" && r.Method == http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "what is `x`?", body["message"])
			_, _ = io.WriteString(w, `{"response":"a **variable**","id":4}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	history, err := client.ChatHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, lessonmark.RoleUser, history[0].Role)
	assert.True(t, time.Date(2026, 2, 18, 12, 0, 0, 123456000, time.UTC).Equal(history[0].CreatedAt))
	assert.True(t, history[1].CreatedAt.IsZero())

	reply, err := client.SendChat(context.Background(), "what is `x`?")
	require.NoError(t, err)
	assert.Equal(t, lessonmark.ChatMessage{ID: 4, Role: lessonmark.RoleAssistant, Content: "a **variable**"}, reply)
}

func TestClient_GroupMessages(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/student/messages/group", r.URL.Path)
		if r.Method == http.MethodPost {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"content": "hey all", "message_type": "text"}, body)
			_, _ = io.WriteString(w, `{"id":9,"ok":true}`)
			return
		}
		_, _ = io.WriteString(w, `[
			{"id":5,"sender_id":2,"sender_name":"Bo","sender_role":"student","content":"yo","is_mine":false,"message_type":"text","file_url":null,"created_at":"2026-02-18T12:00:00"},
			{"id":6,"sender_id":3,"sender_name":"Ana","sender_role":"student","content":"hi","is_mine":true,"message_type":"text","file_url":null,"created_at":"2026-02-18T12:01:00"}
		]`)
	})

	msgs, err := client.GroupMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, lessonmark.RolePeer, msgs[0].Role)
	assert.Equal(t, "Bo", msgs[0].Author)
	assert.Equal(t, lessonmark.RoleUser, msgs[1].Role)

	require.NoError(t, client.SendGroupMessage(context.Background(), "hey all"))
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantIs     error
	}{
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"msg":"field required"},{"msg":"too long"}]}`, "field required; too long", lessonmark.ErrValidation},
		{"bad request", http.StatusBadRequest, `{"detail":"No grade assigned"}`, "No grade assigned", lessonmark.ErrValidation},
		{"plain text body", http.StatusBadGateway, "upstream down\n", "upstream down", nil},
		{"empty body", http.StatusInternalServerError, "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Tasks(context.Background())
			var apiErr *lmhttp.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			} else {
				assert.NotErrorIs(t, err, lessonmark.ErrNotFound)
				assert.NotErrorIs(t, err, lessonmark.ErrUnauthorized)
			}
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	})

	_, err := client.Lesson(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Modules(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, &lmhttp.Error{StatusCode: 502}, "http: status 502")
	assert.EqualError(t, &lmhttp.Error{StatusCode: 404, Detail: "Lesson not found"}, "http: status 404: Lesson not found")
}

func TestClient_ErrorsArePrefixed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.Modules(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "http: decode GET /student/modules"), err.Error())
}
