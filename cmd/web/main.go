package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/cli"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/config"
	apphttp "github.com/gabrielcoffee/mba-fullstack-frontend/internal/http"
)

func main() {
	// .env is optional; deployments set real env vars
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := cli.NewServerLogger(cfg.LogLevel)
	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET not set; using the development secret")
	}

	r, err := apphttp.NewApp(logger, cfg)
	if err != nil {
		log.Fatalf("app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Serve(ctx, logger, cfg.Addr, r); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
