package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/lessonmark/chat"
	"github.com/fwojciec/lessonmark/fs"
	"github.com/fwojciec/lessonmark/markdown"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		chatMode bool
		pattern  string
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render lesson Markdown to an HTML fragment",
		Long: `Render reads Markdown from a file or stdin and writes an HTML fragment to
stdout. With --out it renders every lesson under the given directory that
matches --glob and writes one .html file per lesson.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			render := a.renderFunc(chatMode)
			if outDir != "" || pattern != "" {
				if outDir == "" {
					return fmt.Errorf("--glob needs --out")
				}
				root := "."
				if len(args) == 1 {
					root = args[0]
				}
				return a.renderTree(root, pattern, outDir, render)
			}
			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return writeFragment(cmd.OutOrStdout(), render(source))
		},
	}
	cmd.Flags().Bool("escape-prose", false, "escape HTML in prose text")
	cmd.Flags().Bool("sanitize", false, "filter the output through a UGC allow-list")
	cmd.Flags().BoolVar(&chatMode, "chat", false, "use the chat message formatter")
	cmd.Flags().StringVar(&pattern, "glob", "", "lesson file pattern for batch mode (default "+fs.DefaultLessonPattern+")")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory for batch mode")
	return cmd
}

func (a *app) renderFunc(chatMode bool) func(string) string {
	if chatMode {
		return chat.HTML
	}
	r := markdown.New(markdown.Options{
		EscapeProseText: a.cfg.EscapeProseText,
		Sanitize:        a.cfg.Sanitize,
	})
	return r.Render
}

// renderTree renders each matching lesson under root into outDir, keeping
// the relative layout and replacing the extension with .html.
func (a *app) renderTree(root, pattern, outDir string, render func(string) string) error {
	paths, err := fs.FindLessons(root, pattern)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.logger.Warn("no lessons matched", "root", root, "pattern", pattern)
		return nil
	}
	for _, p := range paths {
		source, err := fs.ReadLesson(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return err
		}
		dest := filepath.Join(outDir, filepath.FromSlash(strings.TrimSuffix(p, filepath.Ext(p))+".html"))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(dest, []byte(render(source)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		a.logger.Info("rendered", "lesson", p, "out", dest)
	}
	return nil
}

// readSource reads the single file argument, or stdin when there is none
// or it is "-".
func readSource(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, fs.MaxLessonSize+1))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if len(data) > fs.MaxLessonSize {
			return "", fmt.Errorf("stdin is larger than %d bytes", fs.MaxLessonSize)
		}
		return string(data), nil
	}
	return fs.ReadLesson(args[0])
}

// writeFragment prints html followed by a newline. An empty fragment
// prints nothing.
func writeFragment(w io.Writer, html string) error {
	if html == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, html)
	return err
}
