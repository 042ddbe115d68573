package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdash/internal/client/app"
	"github.com/dmitrijs2005/userdash/internal/client/config"
	"github.com/dmitrijs2005/userdash/internal/client/web"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewText(os.Stderr, cfg.LogLevel)
	core, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = core.Close() }()

	return web.NewServer(core, logger).ListenAndServe(ctx, cfg.WebAddr, cfg.ShutdownTimeout)
}
