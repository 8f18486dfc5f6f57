package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	lmhttp "github.com/fwojciec/lessonmark/http"
	"github.com/fwojciec/lessonmark/redis"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTML render service",
		Long: `Serve exposes POST /render/lesson and POST /render/chat, plus /healthz and
/metrics. With --redis-addr rendered fragments are cached in Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := []lmhttp.ServerOption{lmhttp.WithLogger(a.logger)}

			if a.cfg.RedisAddr != "" {
				cache := redis.New(a.cfg.RedisAddr, "", 0, redis.WithTTL(a.cfg.RedisTTL))
				defer cache.Close()
				if err := cache.Ping(ctx); err != nil {
					return err
				}
				opts = append(opts, lmhttp.WithCache(cache, a.cfg.RedisTTL))
				a.logger.Info("render cache enabled", "redis", a.cfg.RedisAddr, "ttl", a.cfg.RedisTTL)
			}

			srv := &http.Server{
				Addr:              a.cfg.ServeAddr,
				Handler:           lmhttp.NewServer(opts...),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErrors := make(chan error, 1)
			go func() {
				a.logger.Info("listening", "addr", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				return fmt.Errorf("serve: %w", err)
			case <-ctx.Done():
			}

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				return srv.Close()
			}
			if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from serve.addr)")
	cmd.Flags().String("redis-addr", "", "redis address for the render cache")
	return cmd
}
