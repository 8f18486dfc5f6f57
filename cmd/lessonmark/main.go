// Command lessonmark renders lesson Markdown and talks to the learning
// platform from the terminal.
//
// Usage:
//
//	lessonmark render lesson.md           Markdown to HTML on stdout
//	lessonmark render --glob '**/*.md' --out site lessons/
//	lessonmark preview lesson.md          styled terminal preview
//	lessonmark login --username ana       print a bearer token
//	lessonmark modules                    list modules and lessons
//	lessonmark lesson 12                  fetch and preview a lesson
//	lessonmark task [ID]                  list tasks or preview one
//	lessonmark chat [--group]             open the chat window
//	lessonmark transcript export FILE     saved chat to standalone HTML
//	lessonmark serve                      run the render service
//	lessonmark config                     show resolved settings
//
// Settings come from config.toml ($XDG_CONFIG_HOME/lessonmark,
// ~/.config/lessonmark or the working directory) and LESSONMARK_*
// environment variables; flags override both.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lessonmark: %v\n", err)
		os.Exit(1)
	}
}
