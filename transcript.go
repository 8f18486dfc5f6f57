package lessonmark

import "time"

// Transcript is a saved chat conversation.
type Transcript struct {
	ID        string
	Title     string
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}
