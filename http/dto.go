package http

import (
	"github.com/fwojciec/lessonmark"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	UserID      int    `json:"user_id"`
	FullName    string `json:"full_name"`
}

type moduleDTO struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Order       int         `json:"order"`
	Description string      `json:"description"`
	Lessons     []lessonDTO `json:"lessons"`
}

type lessonDTO struct {
	ID        int    `json:"id"`
	ModuleID  int    `json:"module_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url"`
	VideoURL  string `json:"video_url"`
	Order     int    `json:"order"`
	Grade     int    `json:"grade"`
	TopicID   int    `json:"topic_id"`
	Completed bool   `json:"completed"`
}

type taskDTO struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ModuleID    int      `json:"module_id"`
	Difficulty  string   `json:"difficulty"`
	Grade       int      `json:"grade"`
	StarterCode string   `json:"starter_code"`
	Deadline    *apiTime `json:"deadline"`
}

type chatMessageDTO struct {
	ID        int     `json:"id"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	CreatedAt apiTime `json:"created_at"`
}

type chatSendRequest struct {
	Message string `json:"message"`
}

type chatSendResponse struct {
	ID       int    `json:"id"`
	Response string `json:"response"`
}

type groupMessageDTO struct {
	ID         int     `json:"id"`
	SenderName string  `json:"sender_name"`
	Content    string  `json:"content"`
	IsMine     bool    `json:"is_mine"`
	CreatedAt  apiTime `json:"created_at"`
}

type groupSendRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

func (d lessonDTO) toDomain() lessonmark.Lesson {
	return lessonmark.Lesson{
		ID:        d.ID,
		ModuleID:  d.ModuleID,
		Title:     d.Title,
		Content:   d.Content,
		ImageURL:  d.ImageURL,
		VideoURL:  d.VideoURL,
		Order:     d.Order,
		Grade:     d.Grade,
		TopicID:   d.TopicID,
		Completed: d.Completed,
	}
}

func (d moduleDTO) toDomain() lessonmark.Module {
	m := lessonmark.Module{
		ID:          d.ID,
		Title:       d.Title,
		Order:       d.Order,
		Description: d.Description,
		Lessons:     make([]lessonmark.Lesson, len(d.Lessons)),
	}
	for i, l := range d.Lessons {
		m.Lessons[i] = l.toDomain()
		m.Lessons[i].ModuleID = d.ID
	}
	return m
}

func (d taskDTO) toDomain() lessonmark.CodeTask {
	t := lessonmark.CodeTask{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		ModuleID:    d.ModuleID,
		Difficulty:  d.Difficulty,
		Grade:       d.Grade,
		StarterCode: d.StarterCode,
	}
	if d.Deadline != nil && !d.Deadline.IsZero() {
		deadline := d.Deadline.Time
		t.Deadline = &deadline
	}
	return t
}

func (d chatMessageDTO) toDomain() lessonmark.ChatMessage {
	return lessonmark.ChatMessage{
		ID:        d.ID,
		Role:      lessonmark.Role(d.Role),
		Content:   d.Content,
		CreatedAt: d.CreatedAt.Time,
	}
}

func (d groupMessageDTO) toDomain() lessonmark.ChatMessage {
	role := lessonmark.RolePeer
	if d.IsMine {
		role = lessonmark.RoleUser
	}
	return lessonmark.ChatMessage{
		ID:        d.ID,
		Role:      role,
		Author:    d.SenderName,
		Content:   d.Content,
		CreatedAt: d.CreatedAt.Time,
	}
}
