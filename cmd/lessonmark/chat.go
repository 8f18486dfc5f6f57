package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fwojciec/lessonmark"
	bt "github.com/fwojciec/lessonmark/bubbletea"
	lmhttp "github.com/fwojciec/lessonmark/http"
	lmjson "github.com/fwojciec/lessonmark/json"
	"github.com/spf13/cobra"
)

func newChatCmd(a *app) *cobra.Command {
	var (
		group          bool
		transcriptPath string
	)
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the assistant or group chat window",
		Long: `Chat opens the tutoring assistant conversation, or with --group the
grade-wide group chat, which is refreshed every chat.poll_interval. The
conversation is saved as a transcript on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			var conv lessonmark.Conversation = &lmhttp.AssistantChat{Backend: client}
			var poll time.Duration
			title := "Assistant chat"
			if group {
				conv = &lmhttp.GroupChat{Backend: client}
				poll = a.cfg.PollInterval
				title = "Group chat"
			}

			started := time.Now()
			final, err := bt.Run(cmd.Context(), bt.New(conv, lessonmark.DefaultTheme(), poll))
			if err != nil {
				return fmt.Errorf("chat window: %w", err)
			}

			messages := final.Messages()
			if len(messages) == 0 {
				return nil
			}
			t := newTranscript(title, messages, started, time.Now())
			path := transcriptPath
			if path == "" {
				path = filepath.Join(a.cfg.TranscriptDir, t.ID+".json")
			}
			if err := lmjson.Save(path, t); err != nil {
				return fmt.Errorf("save transcript: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Transcript saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "open the group chat")
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "where to save the transcript (default transcript_dir/<id>.json)")
	return cmd
}

// newTranscript keeps only the messages that have content.
func newTranscript(title string, messages []lessonmark.ChatMessage, started, ended time.Time) lessonmark.Transcript {
	kept := make([]lessonmark.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if lessonmark.ValidateMessage(m) == nil {
			kept = append(kept, m)
		}
	}
	return lessonmark.Transcript{
		ID:        strconv.FormatInt(started.UnixNano(), 10),
		Title:     title,
		Messages:  kept,
		CreatedAt: started,
		UpdatedAt: ended,
	}
}
