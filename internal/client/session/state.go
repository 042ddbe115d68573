// Package session holds the client's authentication state: the Store that
// owns the token and persists it, and the two-variant State consumed by the
// route guard and the view controllers.
package session

import (
	"errors"
	"strings"
)

// ErrNoSession is returned when an authenticated call is attempted while
// the state is Unauthorized.
var ErrNoSession = errors.New("no session")

// Token is the opaque bearer token issued by the backend. It is never
// parsed or validated on the client.
type Token string

// Status is the tag of State.
type Status int

const (
	Unauthorized Status = iota
	Authorized
)

func (s Status) String() string {
	if s == Authorized {
		return "authorized"
	}
	return "unauthorized"
}

// State is either Unauthorized (no token) or Authorized (token present,
// optionally with the identity the user signed in with). The zero value is
// Unauthorized.
type State struct {
	status   Status
	token    Token
	identity string
}

// Anonymous returns the Unauthorized state.
func Anonymous() State {
	return State{}
}

// SignedIn returns the Authorized state for tok. A blank token yields
// Unauthorized: an empty token and an absent token are the same thing.
func SignedIn(tok Token, identity string) State {
	if strings.TrimSpace(string(tok)) == "" {
		return Anonymous()
	}
	return State{status: Authorized, token: tok, identity: identity}
}

func (s State) Status() Status   { return s.status }
func (s State) Authorized() bool { return s.status == Authorized }
func (s State) Token() Token     { return s.token }
func (s State) Identity() string { return s.identity }

// Bearer returns the token for an outgoing request, or ErrNoSession.
func (s State) Bearer() (string, error) {
	if !s.Authorized() {
		return "", ErrNoSession
	}
	return string(s.token), nil
}
