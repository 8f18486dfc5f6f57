package main

import (
	"fmt"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/goldmark"
	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Show lesson Markdown styled for the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := goldmark.Render(source, a.cfg.PreviewWidth, lessonmark.DefaultTheme())
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Int("width", 0, "wrap width (default from preview.width)")
	return cmd
}
