// Package services contains the client application services. They sit
// between the views and the backend Client and are the only code that
// reads the session token for outgoing requests.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdash/internal/client/api"
	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/session"
)

// AuthService defines the sign-in operations.
//
// Contract:
//   - Register: create the account and sign in with the returned token.
//   - Login: authenticate and store the returned token.
//   - Logout: drop the token locally. The backend is not contacted.
type AuthService interface {
	Register(ctx context.Context, reg models.Registration, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	auth   session.Auth
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(client api.Client, auth session.Auth) AuthService {
	return &authService{client: client, auth: auth}
}

// Register sends reg with password to the backend. The password field of reg
// is ignored; the caller keeps ownership of password and should wipe it.
func (a *authService) Register(ctx context.Context, reg models.Registration, password []byte) error {
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Password = string(password)

	token, err := a.client.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	if err := a.auth.SignIn(ctx, session.Token(token), reg.Email); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)

	token, err := a.client.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.auth.SignIn(ctx, session.Token(token), email); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.auth.Clear(ctx)
}
