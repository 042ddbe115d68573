package views

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/services"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

// Login is the sign-in form.
type Login struct {
	auth   services.AuthService
	nav    Navigator
	logger logging.Logger

	lastErr error
}

func NewLogin(auth services.AuthService, nav Navigator, logger logging.Logger) *Login {
	return &Login{auth: auth, nav: nav, logger: orDiscard(logger)}
}

func (l *Login) Mount(context.Context) { l.lastErr = nil }

// Submit signs in and moves to the home view.
func (l *Login) Submit(ctx context.Context, email string, password []byte) error {
	l.lastErr = nil
	if strings.TrimSpace(email) == "" || len(password) == 0 {
		l.lastErr = ErrIncomplete
		return l.lastErr
	}

	if err := l.auth.Login(ctx, email, password); err != nil {
		l.logger.Warn(ctx, "login failed", "error", err)
		l.lastErr = err
		return err
	}
	return toHome(ctx, l.nav)
}

// Err is the error of the last Submit, if any.
func (l *Login) Err() error { return l.lastErr }

// Register is the sign-up form.
type Register struct {
	auth   services.AuthService
	nav    Navigator
	logger logging.Logger

	lastErr error
}

func NewRegister(auth services.AuthService, nav Navigator, logger logging.Logger) *Register {
	return &Register{auth: auth, nav: nav, logger: orDiscard(logger)}
}

func (r *Register) Mount(context.Context) { r.lastErr = nil }

// Submit creates the account, signs in and moves to the home view.
func (r *Register) Submit(ctx context.Context, reg models.Registration, password []byte) error {
	r.lastErr = nil
	if strings.TrimSpace(reg.Email) == "" || len(password) == 0 {
		r.lastErr = ErrIncomplete
		return r.lastErr
	}

	if err := r.auth.Register(ctx, reg, password); err != nil {
		r.logger.Warn(ctx, "registration failed", "error", err)
		r.lastErr = err
		return err
	}
	return toHome(ctx, r.nav)
}

func (r *Register) Err() error { return r.lastErr }

// toHome navigates home unless a session listener already did.
func toHome(ctx context.Context, nav Navigator) error {
	if nav.Current() == router.HomePath {
		return nil
	}
	return nav.Navigate(ctx, router.HomePath)
}
