// Package views holds the view controllers of the client application. A
// controller owns the state of one screen, talks to the services, and
// exposes a plain model that the REPL and the browser shell render.
//
// Controllers are not safe for concurrent use. Both surfaces drive them
// from a single goroutine at a time.
package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

var (
	ErrNotEditing    = errors.New("profile is not in edit mode")
	ErrReadOnlyField = errors.New("field is read-only")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotLoaded     = errors.New("profile is not loaded")
	ErrIncomplete    = errors.New("email and password are required")
)

const LoginPrompt = "Please login to access more features."

// Navigator is the part of router.Navigator the controllers use.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
	Current() string
}

// signOut drops the session and moves to the login view. It is used both
// for the explicit logout action and for a rejected profile fetch.
func signOut(ctx context.Context, auth session.Auth, nav Navigator, logger logging.Logger) error {
	var errs []error
	if err := auth.Clear(ctx); err != nil {
		logger.Error(ctx, "clear session", "error", err)
		errs = append(errs, fmt.Errorf("clear session: %w", err))
	}
	if err := nav.Navigate(ctx, router.LoginPath); err != nil {
		errs = append(errs, fmt.Errorf("navigate to login: %w", err))
	}
	return errors.Join(errs...)
}

func orDiscard(l logging.Logger) logging.Logger {
	if l == nil {
		return logging.Discard()
	}
	return l
}
