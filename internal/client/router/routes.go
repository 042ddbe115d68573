// Package router decides which view a navigation ends on. The Guard maps a
// requested path and the current session.State to a Decision; the
// Navigator follows redirects and mounts the resulting view.
package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdash/internal/client/session"
)

const (
	RootPath     = "/"
	RegisterPath = "/register"
	LoginPath    = "/login"
	HomePath     = "/home"
	ProfilePath  = "/profile"
)

var (
	ErrUnknownRoute  = errors.New("unknown route")
	ErrRedirectLoop  = errors.New("too many redirects")
	ErrDuplicateView = errors.New("view already registered")
)

// Route is one entry of the route table.
//
// A Protected route redirects to the login path when the session is
// Unauthorized. WhenAuthorized and WhenUnauthorized, if set, redirect
// unconditionally for that state; they take precedence over Protected.
type Route struct {
	Path             string
	Protected        bool
	WhenAuthorized   string
	WhenUnauthorized string
}

// DefaultRoutes is the application route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: RootPath, WhenAuthorized: HomePath, WhenUnauthorized: LoginPath},
		{Path: RegisterPath},
		{Path: LoginPath, WhenAuthorized: HomePath},
		{Path: HomePath},
		{Path: ProfilePath, Protected: true},
	}
}

type DecisionKind int

const (
	Render DecisionKind = iota
	Redirect
)

func (k DecisionKind) String() string {
	if k == Redirect {
		return "redirect"
	}
	return "render"
}

// Decision is the outcome of one guard evaluation.
type Decision struct {
	Kind DecisionKind
	Path string
}

// Guard evaluates the route table. It holds no state of its own; every
// call sees the session State passed in, so a decision is never based on a
// token older than the caller's.
type Guard struct {
	routes    map[string]Route
	loginPath string
}

func NewGuard(routes []Route) *Guard {
	g := &Guard{routes: make(map[string]Route, len(routes)), loginPath: LoginPath}
	for _, r := range routes {
		g.routes[Clean(r.Path)] = r
	}
	return g
}

// Resolve returns Render for path, or Redirect with the target path.
func (g *Guard) Resolve(path string, st session.State) (Decision, error) {
	path = Clean(path)
	r, ok := g.routes[path]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	if st.Authorized() {
		if r.WhenAuthorized != "" {
			return Decision{Kind: Redirect, Path: r.WhenAuthorized}, nil
		}
		return Decision{Kind: Render, Path: path}, nil
	}

	if r.WhenUnauthorized != "" {
		return Decision{Kind: Redirect, Path: r.WhenUnauthorized}, nil
	}
	if r.Protected {
		return Decision{Kind: Redirect, Path: g.loginPath}, nil
	}
	return Decision{Kind: Render, Path: path}, nil
}

// Known reports whether path is in the route table.
func (g *Guard) Known(path string) bool {
	_, ok := g.routes[Clean(path)]
	return ok
}

// Protected reports whether path requires a session.
func (g *Guard) Protected(path string) bool {
	return g.routes[Clean(path)].Protected
}

// Clean strips the query, fragment and trailing slash from path and makes
// sure it starts with "/".
func Clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = RootPath
		}
	}
	return path
}
