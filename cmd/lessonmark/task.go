package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/goldmark"
	"github.com/spf13/cobra"
)

func newTaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task [ID]",
		Short: "List code tasks or preview one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				tasks, err := client.Tasks(cmd.Context())
				if err != nil {
					return err
				}
				return writeTaskList(cmd.OutOrStdout(), tasks)
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, err := client.Task(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), goldmark.Render(taskMarkdown(task), a.cfg.PreviewWidth, lessonmark.DefaultTheme()))
			return err
		},
	}
	cmd.Flags().Int("width", 0, "wrap width (default from preview.width)")
	return cmd
}

func writeTaskList(w io.Writer, tasks []lessonmark.CodeTask) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tDEADLINE")
	for _, t := range tasks {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Local().Format(time.DateTime)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Title, t.Difficulty, deadline)
	}
	return tw.Flush()
}

// taskMarkdown lays out a task as one Markdown document with the starter
// code as a fenced block.
func taskMarkdown(t lessonmark.CodeTask) string {
	var b strings.Builder
	b.WriteString("# " + t.Title + "\n\n")
	if t.Difficulty != "" {
		b.WriteString("*" + t.Difficulty + "*\n\n")
	}
	b.WriteString(t.Description + "\n")
	if t.StarterCode != "" {
		b.WriteString("\n```\n" + strings.TrimRight(t.StarterCode, "\n") + "\n```\n")
	}
	return b.String()
}
