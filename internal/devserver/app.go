// Package devserver runs a development stand-in for the userdash backend:
// registration, login and the profile endpoints over HTTP+JSON, with users
// kept in memory.
package devserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userdash/internal/devserver/config"
	"github.com/dmitrijs2005/userdash/internal/devserver/httpapi"
	"github.com/dmitrijs2005/userdash/internal/devserver/users"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(c *config.Config) *App {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)
	us := users.NewService(users.NewMemoryRepository(), c)
	return &App{config: c, logger: logger, userService: us}
}

// initSignalHandler cancels on the first termination signal. The returned
// func stops listening.
func (app *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// serve runs the HTTP server on l until ctx is cancelled.
func (app *App) serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           httpapi.NewHandler(app.userService, app.logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "dev server listening", "addr", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting dev server...")
	stopSignals := app.initSignalHandler(cancelFunc)
	defer stopSignals()

	l, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		app.logger.Error(ctx, "listen failed", "addr", app.config.Addr, "error", err)
		return err
	}

	var (
		wg     sync.WaitGroup
		runErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.serve(ctx, l); err != nil {
			app.logger.Error(ctx, err.Error())
			runErr = err
			cancelFunc()
		}
	}()
	wg.Wait()

	app.logger.Info(ctx, "dev server stopped")
	return runErr
}
