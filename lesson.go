package lessonmark

import "time"

// Module groups lessons in teaching order.
type Module struct {
	ID          int
	Title       string
	Order       int
	Description string
	Lessons     []Lesson
}

// Lesson is a lesson written by course staff. Content is Markdown; ImageURL and
// VideoURL are rendered separately from it.
type Lesson struct {
	ID       int
	ModuleID int
	Title    string
	Content  string
	ImageURL string
	VideoURL string
	Order    int
	Grade    int
	TopicID  int // 0 when the lesson has no topic

	// Completed is only known in module listings.
	Completed bool
}

// CodeTask is a programming exercise. Description is Markdown.
type CodeTask struct {
	ID          int
	Title       string
	Description string
	ModuleID    int
	Difficulty  string
	Grade       int
	StarterCode string
	Deadline    *time.Time
}
