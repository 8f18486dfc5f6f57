package json

import (
	"fmt"
	"time"

	"github.com/fwojciec/lessonmark"
)

type messageDTO struct {
	ID        int       `json:"id,omitempty"`
	Role      string    `json:"role"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func marshalMessage(m lessonmark.ChatMessage) (messageDTO, error) {
	if !m.Role.Valid() {
		return messageDTO{}, fmt.Errorf("unknown role %q: %w", m.Role, lessonmark.ErrValidation)
	}
	return messageDTO{
		ID:        m.ID,
		Role:      string(m.Role),
		Author:    m.Author,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}, nil
}

func unmarshalMessage(dto messageDTO) (lessonmark.ChatMessage, error) {
	role := lessonmark.Role(dto.Role)
	if !role.Valid() {
		return lessonmark.ChatMessage{}, fmt.Errorf("unknown role %q: %w", dto.Role, lessonmark.ErrValidation)
	}
	return lessonmark.ChatMessage{
		ID:        dto.ID,
		Role:      role,
		Author:    dto.Author,
		Content:   dto.Content,
		CreatedAt: dto.CreatedAt,
	}, nil
}
