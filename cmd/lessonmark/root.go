package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/lessonmark"
	lmhttp "github.com/fwojciec/lessonmark/http"
	"github.com/fwojciec/lessonmark/internal/config"
	"github.com/fwojciec/lessonmark/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags to the configuration keys they
// override. Flags are bound only on the commands that define them.
var flagKeys = map[string]string{
	"api-url":      "api_url",
	"log-level":    "log.level",
	"escape-prose": "render.escape_prose_text",
	"sanitize":     "render.sanitize",
	"width":        "preview.width",
	"addr":         "serve.addr",
	"redis-addr":   "redis.addr",
}

// app carries the resolved configuration to subcommands.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *slog.Logger
}

// client returns a REST client for the configured platform. Commands that
// read student data require a token.
func (a *app) client() (*lmhttp.Client, error) {
	if a.cfg.Token == "" {
		return nil, fmt.Errorf("no token configured, run `lessonmark login` and set LESSONMARK_TOKEN: %w", lessonmark.ErrUnauthorized)
	}
	return a.anonymousClient(), nil
}

func (a *app) anonymousClient() *lmhttp.Client {
	return lmhttp.NewClient(
		lmhttp.WithBaseURL(a.cfg.APIURL),
		lmhttp.WithToken(a.cfg.Token),
		lmhttp.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	a := &app{}

	cmd := &cobra.Command{
		Use:           "lessonmark",
		Short:         "Render lesson Markdown and chat with the learning platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(v); err != nil {
				return err
			}
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return fmt.Errorf("bind --%s: %w", name, err)
					}
				}
			}
			cfg, err := config.Resolve(v)
			if err != nil {
				return err
			}
			a.v = v
			a.cfg = cfg
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.toml")
	cmd.PersistentFlags().String("api-url", "", "platform server URL")
	cmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newPreviewCmd(a))
	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newModulesCmd(a))
	cmd.AddCommand(newLessonCmd(a))
	cmd.AddCommand(newTaskCmd(a))
	cmd.AddCommand(newChatCmd(a))
	cmd.AddCommand(newTranscriptCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}
