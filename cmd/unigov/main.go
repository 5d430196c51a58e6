package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/noah-isme/unigov-client/internal/cli"
	"github.com/noah-isme/unigov-client/pkg/config"
	"github.com/noah-isme/unigov-client/pkg/logger"
	"github.com/noah-isme/unigov-client/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := session.Open(ctx, cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open session storage", "driver", cfg.Session.Driver, "error", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer closer.Close() //nolint:errcheck
	}

	app := cli.New(cfg, store, logr, os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		code := 1
		if errors.Is(err, cli.ErrUsage) {
			code = 2
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		logr.Sync() //nolint:errcheck
		stop()
		os.Exit(code)
	}
}
