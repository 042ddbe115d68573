// Package web serves the client views to a local browser. Handlers drive
// the same Navigator and controllers as the REPL, one request at a time.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/userdash/internal/client/app"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

const (
	headerContentType   = "Content-Type"
	contentTypeHTMLUTF8 = "text/html; charset=utf-8"

	readHeaderTimeout = 5 * time.Second
)

type Server struct {
	core   *app.App
	logger logging.Logger

	// mu makes the controllers see one request at a time.
	mu sync.Mutex
}

func NewServer(core *app.App, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Server{core: core, logger: logger}
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.serialize)

	r.Get(router.RootPath, s.handlePage)
	r.Get(router.HomePath, s.handlePage)
	r.Get(router.LoginPath, s.handlePage)
	r.Get(router.RegisterPath, s.handlePage)
	r.Post(router.LoginPath, s.handleLogin)
	r.Post(router.RegisterPath, s.handleRegister)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get(router.ProfilePath, s.handlePage)
		r.Post(router.ProfilePath+"/edit", s.handleProfileEdit)
		r.Post(router.ProfilePath+"/save", s.handleProfileSave)
		r.Post(router.ProfilePath+"/cancel", s.handleProfileCancel)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "page not found", http.StatusNotFound)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down,
// giving in-flight requests up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "browser shell listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down browser shell")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
