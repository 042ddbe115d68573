// Package app wires the client object graph shared by the REPL and the
// browser shell: local database, session store, backend client, services,
// router and view controllers.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/api"
	"github.com/dmitrijs2005/userdash/internal/client/config"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/services"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/client/storage"
	"github.com/dmitrijs2005/userdash/internal/client/views"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

type App struct {
	Session  *session.Store
	Guard    *router.Guard
	Nav      *router.Navigator
	Auth     services.AuthService
	Home     *views.Home
	Profile  *views.Profile
	Login    *views.Login
	Register *views.Register
	Logger   logging.Logger

	db     *sql.DB
	unbind func()
}

// New opens the local database named in cfg and builds the App around an
// HTTP client for cfg.BackendURL.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	client, err := api.NewHTTPClient(cfg.BackendURL, api.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a, err := Build(ctx, session.NewSQLitePersister(db), client, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

// Build assembles the App from an explicit persister and backend client.
func Build(ctx context.Context, p session.Persister, client api.Client, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	store, err := session.Open(ctx, p, session.WithLogger(logger.With("component", "session")))
	if err != nil {
		return nil, err
	}

	guard := router.NewGuard(router.DefaultRoutes())
	nav := router.NewNavigator(guard, store, logger.With("component", "router"))

	authSvc := services.NewAuthService(client, store)
	profiles := services.NewProfileService(client, store)
	viewLog := logger.With("component", "views")

	a := &App{
		Session:  store,
		Guard:    guard,
		Nav:      nav,
		Auth:     authSvc,
		Home:     views.NewHome(profiles, store, nav, viewLog),
		Profile:  views.NewProfile(profiles, store, nav, viewLog),
		Login:    views.NewLogin(authSvc, nav, viewLog),
		Register: views.NewRegister(authSvc, nav, viewLog),
		Logger:   logger,
	}

	for path, v := range map[string]router.View{
		router.HomePath:     a.Home,
		router.ProfilePath:  a.Profile,
		router.LoginPath:    a.Login,
		router.RegisterPath: a.Register,
	} {
		if err := nav.Handle(path, v); err != nil {
			return nil, err
		}
	}
	a.unbind = nav.Bind()
	return a, nil
}

// Close detaches the navigator from the session and closes the database.
func (a *App) Close() error {
	if a.unbind != nil {
		a.unbind()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
