package lessonmark

import (
	"fmt"
	"strings"
)

// MaxChatLength is the longest chat message the client will send.
const MaxChatLength = 4000

// ValidateMessage checks that a chat message has a known role and content.
func ValidateMessage(m ChatMessage) error {
	if !m.Role.Valid() {
		return fmt.Errorf("unknown role %q: %w", m.Role, ErrValidation)
	}
	if strings.TrimSpace(m.Content) == "" {
		return fmt.Errorf("%s message has no content: %w", m.Role, ErrValidation)
	}
	return nil
}

// ValidateChatInput checks text typed by the user before it is sent.
func ValidateChatInput(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("message is empty: %w", ErrValidation)
	}
	if n := len([]rune(text)); n > MaxChatLength {
		return fmt.Errorf("message is %d characters, limit is %d: %w", n, MaxChatLength, ErrValidation)
	}
	return nil
}
