package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userdash/internal/client/app"
	"github.com/dmitrijs2005/userdash/internal/client/config"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

type App struct {
	core   *app.App
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	core, err := app.New(ctx, c, logger)
	if err != nil {
		return nil, err
	}
	return &App{core: core, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run opens the root route and serves commands until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.core.Close() }()

	printlnFn("Welcome to userdash (type 'help' for commands)")
	_ = a.Go(ctx, router.RootPath)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.core.Session.State().Authorized()
}

// getStatus is the prompt suffix: current route, then the email if signed in.
func (a *App) getStatus() string {
	s := a.core.Nav.Current()
	if st := a.core.Session.State(); st.Authorized() && st.Identity() != "" {
		s += " (" + st.Identity() + ")"
	}
	return s
}

// Go navigates to path and prints the view the guard let us land on.
func (a *App) Go(ctx context.Context, path string) error {
	if err := a.core.Nav.Navigate(ctx, path); err != nil {
		return a.fail("navigation failed", err)
	}
	return a.Show(ctx)
}

func (a *App) fail(what string, err error) error {
	fmt.Fprintf(a.out, "%s: %v\n", what, err)
	return err
}
