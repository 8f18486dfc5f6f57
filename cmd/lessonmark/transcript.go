package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/chat"
	lmjson "github.com/fwojciec/lessonmark/json"
	"github.com/spf13/cobra"
)

func newTranscriptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Work with saved chat transcripts",
	}
	cmd.AddCommand(newTranscriptExportCmd(a))
	return cmd
}

func newTranscriptExportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Render a saved transcript as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lmjson.Load(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				return writeTranscriptHTML(cmd.OutOrStdout(), t)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := writeTranscriptHTML(f, t); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.logger.Info("exported transcript", "id", t.ID, "out", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

var transcriptTmpl = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
.message { margin: 1rem 0; padding: .5rem 1rem; border-radius: .5rem; }
.user { background: #e8f0fe; }
.assistant, .peer { background: #f1f3f4; }
.author { font-weight: bold; font-size: .85rem; }
time { color: #777; font-size: .75rem; }
pre { background: #272822; color: #f8f8f2; padding: .5rem; overflow-x: auto; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Messages}}<div class="message {{.Role}}">
<div class="author">{{.Author}}</div>
<div class="content">{{.HTML}}</div>
{{if .Time}}<time>{{.Time}}</time>{{end}}
</div>
{{end}}</body>
</html>
`))

type transcriptPage struct {
	Title    string
	Messages []transcriptMessage
}

type transcriptMessage struct {
	Role   string
	Author string
	HTML   template.HTML
	Time   string
}

// writeTranscriptHTML renders t as a page. Message bodies go through the
// chat formatter, which escapes everything it does not produce itself.
func writeTranscriptHTML(w io.Writer, t lessonmark.Transcript) error {
	page := transcriptPage{Title: t.Title}
	if page.Title == "" {
		page.Title = "Chat transcript"
	}
	for _, m := range t.Messages {
		tm := transcriptMessage{
			Role:   string(m.Role),
			Author: authorName(m),
			HTML:   template.HTML(chat.HTML(m.Content)),
		}
		if !m.CreatedAt.IsZero() {
			tm.Time = m.CreatedAt.Format(time.DateTime)
		}
		page.Messages = append(page.Messages, tm)
	}
	if err := transcriptTmpl.Execute(w, page); err != nil {
		return fmt.Errorf("render transcript: %w", err)
	}
	return nil
}

func authorName(m lessonmark.ChatMessage) string {
	switch {
	case m.Author != "":
		return m.Author
	case m.Role == lessonmark.RoleUser:
		return "You"
	case m.Role == lessonmark.RoleAssistant:
		return "Assistant"
	}
	return "Classmate"
}
