// Package fs locates and reads lesson files on disk.
package fs

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/lessonmark"
)

// MaxLessonSize is the largest lesson file ReadLesson accepts.
const MaxLessonSize = 1 << 20

// ReadLesson returns the contents of a lesson file. Directories, files over
// MaxLessonSize and files that are not valid UTF-8 are rejected with
// ErrValidation.
func ReadLesson(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat lesson: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", path, lessonmark.ErrValidation)
	}
	if info.Size() > MaxLessonSize {
		return "", fmt.Errorf("%s exceeds %d bytes: %w", path, MaxLessonSize, lessonmark.ErrValidation)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read lesson: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not UTF-8 text: %w", path, lessonmark.ErrValidation)
	}
	return string(data), nil
}
