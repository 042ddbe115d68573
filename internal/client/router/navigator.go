package router

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/logging"
)

// maxRedirects bounds redirect chains so a bad route table cannot spin.
const maxRedirects = 8

// View is anything the Navigator can mount.
type View interface {
	Mount(ctx context.Context)
}

// Navigator tracks the current route. It is not safe for concurrent use:
// like a UI event loop, callers serialize navigations. Navigate may be
// called re-entrantly from a view's Mount (e.g. a forced logout).
type Navigator struct {
	guard   *Guard
	auth    session.Auth
	logger  logging.Logger
	views   map[string]View
	current string
}

func NewNavigator(guard *Guard, auth session.Auth, logger logging.Logger) *Navigator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Navigator{
		guard:  guard,
		auth:   auth,
		logger: logger,
		views:  make(map[string]View),
	}
}

// Handle registers v for path.
func (n *Navigator) Handle(path string, v View) error {
	path = Clean(path)
	if !n.guard.Known(path) {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	if _, ok := n.views[path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateView, path)
	}
	n.views[path] = v
	return nil
}

// Bind re-evaluates the current route whenever the session changes.
func (n *Navigator) Bind() (unsubscribe func()) {
	return n.auth.Subscribe(func(ctx context.Context, _ session.State) {
		if err := n.Refresh(ctx); err != nil {
			n.logger.Error(ctx, "refresh after session change", "route", n.current, "error", err)
		}
	})
}

// Navigate resolves path through the guard, following redirects, makes the
// final path current and mounts its view.
func (n *Navigator) Navigate(ctx context.Context, path string) error {
	target := Clean(path)
	for hop := 0; hop < maxRedirects; hop++ {
		d, err := n.guard.Resolve(target, n.auth.State())
		if err != nil {
			return err
		}
		if d.Kind == Redirect {
			n.logger.Debug(ctx, "redirect", "from", target, "to", d.Path)
			target = Clean(d.Path)
			continue
		}

		n.current = target
		n.logger.Debug(ctx, "render", "route", target)
		if v, ok := n.views[target]; ok {
			v.Mount(ctx)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRedirectLoop, path)
}

// Refresh re-runs the current navigation against the current session.
func (n *Navigator) Refresh(ctx context.Context) error {
	if n.current == "" {
		return nil
	}
	return n.Navigate(ctx, n.current)
}

// Current returns the path of the mounted view, "" before the first navigation.
func (n *Navigator) Current() string {
	return n.current
}
