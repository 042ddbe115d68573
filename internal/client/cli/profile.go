package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdash/internal/client/router"
)

var errNotOnProfile = errors.New("open the profile first (go /profile)")

func (a *App) onProfile() error {
	if a.core.Nav.Current() != router.ProfilePath {
		return a.fail("not available here", errNotOnProfile)
	}
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	if err := a.onProfile(); err != nil {
		return err
	}
	if err := a.core.Profile.BeginEdit(); err != nil {
		return a.fail("cannot edit", err)
	}
	return a.Show(ctx)
}

// Set changes one draft field. An empty value clears the field.
func (a *App) Set(ctx context.Context, field, value string) error {
	if err := a.onProfile(); err != nil {
		return err
	}
	if err := a.core.Profile.SetField(field, value); err != nil {
		return a.fail("cannot set "+field, err)
	}
	return a.Show(ctx)
}

// Save sends the draft. On failure the view has already logged the error
// and dropped the draft; the user only sees that nothing was saved.
func (a *App) Save(ctx context.Context) error {
	if err := a.onProfile(); err != nil {
		return err
	}
	if err := a.core.Profile.Save(ctx); err != nil {
		_ = a.fail("Profile was not saved", err)
		_ = a.Show(ctx)
		return err
	}
	return a.Show(ctx)
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.onProfile(); err != nil {
		return err
	}
	a.core.Profile.Cancel()
	return a.Show(ctx)
}
