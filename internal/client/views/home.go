package views

import (
	"context"

	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/services"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

// HomeModel is what the home screen shows.
type HomeModel struct {
	Authorized bool
	Email      string
	Lines      []string
}

// Home is the dashboard. It is reachable without a session and then only
// asks the user to log in.
type Home struct {
	profiles services.ProfileService
	auth     session.Auth
	nav      Navigator
	logger   logging.Logger

	email string
}

func NewHome(profiles services.ProfileService, auth session.Auth, nav Navigator, logger logging.Logger) *Home {
	return &Home{profiles: profiles, auth: auth, nav: nav, logger: orDiscard(logger)}
}

// Mount loads the signed-in user's email. Any fetch failure signs the user
// out and moves to the login view.
func (h *Home) Mount(ctx context.Context) {
	h.email = ""
	if !h.auth.State().Authorized() {
		return
	}

	p, err := h.profiles.Fetch(ctx)
	if err != nil {
		h.logger.Warn(ctx, "profile fetch failed, signing out", "route", router.HomePath, "error", err)
		_ = signOut(ctx, h.auth, h.nav, h.logger)
		return
	}
	h.email = p.Email
}

func (h *Home) Model() HomeModel {
	m := HomeModel{Authorized: h.auth.State().Authorized()}
	if !m.Authorized {
		m.Lines = []string{LoginPrompt}
		return m
	}
	m.Email = h.email
	if h.email != "" {
		m.Lines = append(m.Lines, "Welcome, "+h.email+".")
	}
	m.Lines = append(m.Lines, "This is your dashboard after logging in successfully.")
	return m
}

func (h *Home) Logout(ctx context.Context) error {
	return signOut(ctx, h.auth, h.nav, h.logger)
}
