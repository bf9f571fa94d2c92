package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/config"
	apphttp "github.com/gabrielcoffee/mba-fullstack-frontend/internal/http"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web frontend",
		Long: `Starts the storefront web frontend. Settings come from the environment
(and .env when present); --addr overrides APP_ADDR.`,
		Example: `  storefront serve
  storefront serve --addr 127.0.0.1:3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			l := NewServerLogger(cfg.LogLevel)
			if cfg.UsesDefaultSecret() {
				l.Warn("SESSION_SECRET not set; using the development secret")
			}

			router, err := apphttp.NewApp(l, cfg)
			if err != nil {
				return err
			}
			return Serve(cmd.Context(), l, cfg.Addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default APP_ADDR or :8080)")

	return cmd
}

// NewServerLogger is the JSON logger used by the web frontend.
func NewServerLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// Serve runs h on addr until ctx is canceled, then shuts down gracefully.
func Serve(ctx context.Context, l *slog.Logger, addr string, h http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		l.Info("storefront frontend listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		l.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			l.Error("shutdown failed", "err", err)
			return err
		}
		l.Info("server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
