package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/views"
)

// Show prints the current view.
func (a *App) Show(context.Context) error {
	switch a.core.Nav.Current() {
	case router.HomePath:
		renderHome(a.out, a.core.Home.Model())
	case router.ProfilePath:
		renderProfile(a.out, a.core.Profile.Model())
	case router.LoginPath:
		fmt.Fprintln(a.out, "== Login ==")
		fmt.Fprintln(a.out, "Type 'login' to sign in, or 'register' to create an account.")
	case router.RegisterPath:
		fmt.Fprintln(a.out, "== Register ==")
		fmt.Fprintln(a.out, "Type 'register' to create an account, or 'login' if you have one.")
	}
	return nil
}

func renderHome(w io.Writer, m views.HomeModel) {
	fmt.Fprintln(w, "== Home == / Profile")
	for _, l := range m.Lines {
		fmt.Fprintln(w, l)
	}
	if m.Authorized {
		fmt.Fprintln(w, "[logout]")
	}
}

func renderProfile(w io.Writer, m views.ProfileModel) {
	fmt.Fprintln(w, "Home / == Profile ==")
	switch {
	case !m.Authorized:
		fmt.Fprintln(w, m.Prompt)
		return
	case m.Loading:
		fmt.Fprintln(w, "Loading...")
		return
	}

	fmt.Fprintf(w, "Personal Data  [%s]\n", strings.ToLower(m.Action))
	width := 0
	for _, f := range m.Fields {
		width = max(width, len(f.Label)+1)
	}
	for _, f := range m.Fields {
		note := ""
		switch {
		case f.ReadOnly:
			note = "  (read-only)"
		case !f.Disabled:
			note = "  (" + f.ID + ")"
		}
		fmt.Fprintf(w, "  %-*s  %s%s\n", width, f.Label+":", f.Value, note)
	}
	if m.Editing {
		fmt.Fprintln(w, "Use 'set <field> <value>', then 'save' or 'cancel'.")
	}
	fmt.Fprintln(w, "[logout]")
}
