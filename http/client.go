package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/lessonmark"
)

// Interface compliance check.
var _ lessonmark.Backend = (*Client)(nil)

const (
	defaultBaseURL = "http://localhost:8000"
	apiPrefix      = "/api"
)

// Client implements [lessonmark.Backend] against the platform REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the server URL the /api paths are resolved against.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient creates a [Client] with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Token returns the bearer token the client currently sends.
func (c *Client) Token() string {
	return c.token
}

// Login exchanges credentials for an access token. On success the client
// uses the new token for subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("http: login response has no access token")
	}
	c.token = resp.AccessToken
	return resp.AccessToken, nil
}

// Modules lists modules with their lesson summaries in teaching order.
func (c *Client) Modules(ctx context.Context) ([]lessonmark.Module, error) {
	var dtos []moduleDTO
	if err := c.do(ctx, http.MethodGet, "/student/modules", nil, &dtos); err != nil {
		return nil, err
	}
	modules := make([]lessonmark.Module, len(dtos))
	for i, d := range dtos {
		modules[i] = d.toDomain()
	}
	return modules, nil
}

// Lesson fetches a single lesson with its Markdown content.
func (c *Client) Lesson(ctx context.Context, id int) (lessonmark.Lesson, error) {
	var dto lessonDTO
	if err := c.do(ctx, http.MethodGet, "/student/lessons/"+strconv.Itoa(id), nil, &dto); err != nil {
		return lessonmark.Lesson{}, err
	}
	return dto.toDomain(), nil
}

// Tasks lists the code tasks.
func (c *Client) Tasks(ctx context.Context) ([]lessonmark.CodeTask, error) {
	var dtos []taskDTO
	if err := c.do(ctx, http.MethodGet, "/student/tasks", nil, &dtos); err != nil {
		return nil, err
	}
	tasks := make([]lessonmark.CodeTask, len(dtos))
	for i, d := range dtos {
		tasks[i] = d.toDomain()
	}
	return tasks, nil
}

// Task fetches a single code task.
func (c *Client) Task(ctx context.Context, id int) (lessonmark.CodeTask, error) {
	var dto taskDTO
	if err := c.do(ctx, http.MethodGet, "/student/tasks/"+strconv.Itoa(id), nil, &dto); err != nil {
		return lessonmark.CodeTask{}, err
	}
	return dto.toDomain(), nil
}

// ChatHistory returns the assistant conversation, oldest first.
func (c *Client) ChatHistory(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	var dtos []chatMessageDTO
	if err := c.do(ctx, http.MethodGet, "/student/chat/history", nil, &dtos); err != nil {
		return nil, err
	}
	msgs := make([]lessonmark.ChatMessage, len(dtos))
	for i, d := range dtos {
		msgs[i] = d.toDomain()
	}
	return msgs, nil
}

// SendChat posts a message to the assistant and returns its reply.
func (c *Client) SendChat(ctx context.Context, text string) (lessonmark.ChatMessage, error) {
	var resp chatSendResponse
	if err := c.do(ctx, http.MethodPost, "/student/chat", chatSendRequest{Message: text}, &resp); err != nil {
		return lessonmark.ChatMessage{}, err
	}
	return lessonmark.ChatMessage{
		ID:      resp.ID,
		Role:    lessonmark.RoleAssistant,
		Content: resp.Response,
	}, nil
}

// GroupMessages returns the grade group chat, oldest first. Messages sent
// by the current user carry RoleUser; everyone else is RolePeer.
func (c *Client) GroupMessages(ctx context.Context) ([]lessonmark.ChatMessage, error) {
	var dtos []groupMessageDTO
	if err := c.do(ctx, http.MethodGet, "/student/messages/group", nil, &dtos); err != nil {
		return nil, err
	}
	msgs := make([]lessonmark.ChatMessage, len(dtos))
	for i, d := range dtos {
		msgs[i] = d.toDomain()
	}
	return msgs, nil
}

// SendGroupMessage posts a text message to the grade group chat.
func (c *Client) SendGroupMessage(ctx context.Context, text string) error {
	return c.do(ctx, http.MethodPost, "/student/messages/group", groupSendRequest{Content: text, MessageType: "text"}, nil)
}

// do sends a JSON request and decodes a JSON response into out when out is
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("http: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseHTTPError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("http: decode %s %s: %w", method, path, err)
	}
	return nil
}
