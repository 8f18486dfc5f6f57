package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newModulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List modules and their lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			modules, err := client.Modules(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range modules {
				fmt.Fprintf(w, "%d. %s\n", m.Order, m.Title)
				for _, l := range m.Lessons {
					mark := " "
					if l.Completed {
						mark = "✓"
					}
					fmt.Fprintf(w, "  %s\t%d\t%s\n", mark, l.ID, l.Title)
				}
			}
			return w.Flush()
		},
	}
}
