package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login opens the login form and prompts for credentials. When a session
// already exists the guard sends us home instead and nothing is asked.
func (a *App) Login(ctx context.Context) error {
	if err := a.core.Nav.Navigate(ctx, router.LoginPath); err != nil {
		return a.fail("navigation failed", err)
	}
	if a.core.Nav.Current() != router.LoginPath {
		fmt.Fprintf(a.out, "Already logged in as %s\n", a.core.Session.State().Identity())
		return a.Show(ctx)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.core.Login.Submit(ctx, email, password); err != nil {
		return a.fail("Login unsuccessful", err)
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Show(ctx)
}

// Register opens the registration form and prompts for the account fields.
func (a *App) Register(ctx context.Context) error {
	if err := a.core.Nav.Navigate(ctx, router.RegisterPath); err != nil {
		return a.fail("navigation failed", err)
	}

	var reg models.Registration
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter full name", &reg.FullName},
		{"Enter username", &reg.Username},
		{"Enter email", &reg.Email},
		{"Enter phone number", &reg.PhoneNumber},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.core.Register.Submit(ctx, reg, password); err != nil {
		return a.fail("Registration unsuccessful", err)
	}

	fmt.Fprintln(a.out, "Success!")
	return a.Show(ctx)
}

// Logout drops the session from whichever view is current.
func (a *App) Logout(ctx context.Context) error {
	logout := a.core.Home.Logout
	if a.core.Nav.Current() == router.ProfilePath {
		logout = a.core.Profile.Logout
	}
	if err := logout(ctx); err != nil {
		return a.fail("logout failed", err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return a.Show(ctx)
}
