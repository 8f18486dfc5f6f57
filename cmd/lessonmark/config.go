package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/lessonmark/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(w, "# file: %s\n", used)
			} else {
				fmt.Fprintf(w, "# file: none (default location %s)\n", config.DefaultConfigPath())
			}
			for _, o := range config.GetConfigOptions() {
				value := a.v.Get(o.Key)
				if o.Key == "token" && a.cfg.Token != "" {
					value = "(set)"
				}
				fmt.Fprintf(w, "%s\t%v\t# %s\n", o.Key, value, o.Comment)
			}
			return w.Flush()
		},
	}
}
