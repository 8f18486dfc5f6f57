package main

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/goldmark"
	"github.com/spf13/cobra"
)

func newLessonCmd(a *app) *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "lesson ID",
		Short: "Fetch a lesson and preview or render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			lesson, err := client.Lesson(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asHTML {
				return writeFragment(cmd.OutOrStdout(), lessonHTML(lesson, a.renderFunc(false)))
			}
			return writeLessonPreview(cmd.OutOrStdout(), lesson, a.cfg.PreviewWidth)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "write an HTML fragment instead of a preview")
	cmd.Flags().Bool("escape-prose", false, "escape HTML in prose text")
	cmd.Flags().Bool("sanitize", false, "filter the output through a UGC allow-list")
	cmd.Flags().Int("width", 0, "wrap width (default from preview.width)")
	return cmd
}

// lessonHTML renders the title, the content fragment and the media URLs
// as sibling elements. Media never passes through the Markdown renderer.
func lessonHTML(l lessonmark.Lesson, render func(string) string) string {
	parts := []string{"<h1>" + html.EscapeString(l.Title) + "</h1>"}
	if content := render(l.Content); content != "" {
		parts = append(parts, content)
	}
	if l.VideoURL != "" {
		parts = append(parts, `<video src="`+html.EscapeString(l.VideoURL)+`" controls></video>`)
	}
	if l.ImageURL != "" {
		parts = append(parts, `<img src="`+html.EscapeString(l.ImageURL)+`" alt="`+html.EscapeString(l.Title)+`">`)
	}
	return strings.Join(parts, "\n")
}

func writeLessonPreview(w io.Writer, l lessonmark.Lesson, width int) error {
	var b strings.Builder
	b.WriteString(goldmark.Render("# "+l.Title+"\n\n"+l.Content, width, lessonmark.DefaultTheme()))
	if l.VideoURL != "" {
		b.WriteString("Video: " + l.VideoURL + "\n")
	}
	if l.ImageURL != "" {
		b.WriteString("Image: " + l.ImageURL + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", s, lessonmark.ErrValidation)
	}
	return id, nil
}
