package views

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/services"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

// FieldModel is one row of the profile form.
type FieldModel struct {
	models.FieldSpec
	Value    string
	Disabled bool
}

// ProfileModel is what the profile screen shows. Exactly one of Prompt,
// Loading and Fields is meaningful.
type ProfileModel struct {
	Authorized bool
	Prompt     string
	Loading    bool
	Editing    bool
	Action     string
	Fields     []FieldModel
}

// Profile keeps two copies of the user record: committed is what the
// backend last confirmed, draft is what the form shows. Outside edit mode
// the two are equal.
type Profile struct {
	profiles services.ProfileService
	auth     session.Auth
	nav      Navigator
	logger   logging.Logger

	committed models.Profile
	draft     models.Profile
	loaded    bool
	editing   bool
}

func NewProfile(profiles services.ProfileService, auth session.Auth, nav Navigator, logger logging.Logger) *Profile {
	return &Profile{profiles: profiles, auth: auth, nav: nav, logger: orDiscard(logger)}
}

// Mount fetches the profile. A failed fetch signs the user out and moves to
// the login view; the backend is not asked why.
func (p *Profile) Mount(ctx context.Context) {
	p.committed, p.draft = models.Profile{}, models.Profile{}
	p.loaded, p.editing = false, false
	if !p.auth.State().Authorized() {
		return
	}

	u, err := p.profiles.Fetch(ctx)
	if err != nil {
		p.logger.Warn(ctx, "profile fetch failed, signing out", "route", router.ProfilePath, "error", err)
		_ = signOut(ctx, p.auth, p.nav, p.logger)
		return
	}
	p.committed, p.draft = *u, *u
	p.loaded = true
}

// BeginEdit snapshots the committed profile into the draft.
func (p *Profile) BeginEdit() error {
	if !p.loaded {
		return ErrNotLoaded
	}
	p.draft = p.committed
	p.editing = true
	return nil
}

// SetField changes one draft field. Empty values are stored as "".
func (p *Profile) SetField(id, value string) error {
	if id == models.FieldEmail {
		return fmt.Errorf("%w: %s", ErrReadOnlyField, id)
	}
	if _, ok := p.draft.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, id)
	}
	if !p.editing {
		return ErrNotEditing
	}
	p.draft, _ = p.draft.With(id, value)
	return nil
}

// Save sends the whole draft. Edit mode ends either way. On failure the
// error goes to the log, the draft is reset to the committed copy and the
// error is returned so the surface can say the save did not happen.
func (p *Profile) Save(ctx context.Context) error {
	if !p.editing {
		return ErrNotEditing
	}
	p.editing = false

	if err := p.profiles.Update(ctx, p.draft); err != nil {
		p.logger.Error(ctx, "error updating user data", "error", err)
		p.draft = p.committed
		return err
	}
	p.committed = p.draft
	return nil
}

// ToggleEdit is the Edit/Save button: it enters edit mode or saves.
func (p *Profile) ToggleEdit(ctx context.Context) error {
	if p.editing {
		return p.Save(ctx)
	}
	return p.BeginEdit()
}

// Cancel leaves edit mode and discards the draft. Calling it outside edit
// mode does nothing.
func (p *Profile) Cancel() {
	p.draft = p.committed
	p.editing = false
}

func (p *Profile) Logout(ctx context.Context) error {
	return signOut(ctx, p.auth, p.nav, p.logger)
}

func (p *Profile) Committed() models.Profile { return p.committed }
func (p *Profile) Draft() models.Profile     { return p.draft }
func (p *Profile) Editing() bool             { return p.editing }

func (p *Profile) Model() ProfileModel {
	m := ProfileModel{Authorized: p.auth.State().Authorized()}
	switch {
	case !m.Authorized:
		m.Prompt = LoginPrompt
		return m
	case !p.loaded:
		m.Loading = true
		return m
	}

	m.Editing = p.editing
	m.Action = "Edit"
	if p.editing {
		m.Action = "Save"
	}
	for _, f := range models.ProfileFields {
		v, _ := p.draft.Get(f.ID)
		m.Fields = append(m.Fields, FieldModel{
			FieldSpec: f,
			Value:     v,
			Disabled:  f.ReadOnly || !p.editing,
		})
	}
	return m
}
