package lessonmark

import (
	"sort"
	"time"
)

// ChatMessage is a single chat bubble: an assistant exchange or a group
// chat post. IDs are assigned by the backend; locally echoed messages that
// the backend has not acknowledged yet carry a zero ID.
type ChatMessage struct {
	ID        int
	Role      Role
	Author    string // display name; empty for assistant chat
	Content   string
	CreatedAt time.Time
}

// MergeMessages appends the messages from incoming that are not already
// present in existing, matched by ID. Messages with a zero ID are never
// considered duplicates. The result is ordered by ID with unacknowledged
// messages kept at the end in their original order.
func MergeMessages(existing, incoming []ChatMessage) []ChatMessage {
	seen := make(map[int]bool, len(existing))
	var acked, pending []ChatMessage
	for _, m := range existing {
		if m.ID == 0 {
			pending = append(pending, m)
			continue
		}
		seen[m.ID] = true
		acked = append(acked, m)
	}
	for _, m := range incoming {
		if m.ID == 0 {
			pending = append(pending, m)
			continue
		}
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		acked = append(acked, m)
	}
	sort.SliceStable(acked, func(i, j int) bool { return acked[i].ID < acked[j].ID })
	return append(acked, pending...)
}
