package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/lessonmark"
)

// DefaultLessonPattern matches every markdown file below the root.
const DefaultLessonPattern = "**/*.md"

// FindLessons returns the files under root matching pattern as sorted,
// slash-separated paths relative to root. An empty pattern means
// DefaultLessonPattern.
func FindLessons(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultLessonPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s: %w", pattern, lessonmark.ErrValidation)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", root, lessonmark.ErrValidation)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
