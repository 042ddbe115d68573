// Package users implements the dev server's account logic: registration,
// password login and the profile record.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/userdash/internal/devserver/auth"
	"github.com/dmitrijs2005/userdash/internal/devserver/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("email and password are required")
)

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
		now:           time.Now,
	}
}

// Register creates the account and returns a token for it.
func (s *Service) Register(ctx context.Context, p Profile, password string) (string, error) {
	p.Email = strings.TrimSpace(p.Email)
	if p.Email == "" || password == "" {
		return "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		ID:           uuid.NewString(),
		Profile:      p,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}
	return s.generateAccessToken(user)
}

// Login checks the password and returns a fresh token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateAccessToken(user)
}

// Authenticate maps a bearer token to a user ID.
func (s *Service) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return user.Profile, nil
}

// UpdateProfile stores p for the user. The email is fixed at registration;
// whatever p carries there is ignored.
func (s *Service) UpdateProfile(ctx context.Context, userID string, p Profile) (Profile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	p.Email = user.Profile.Email
	user.Profile = p
	if err := s.repo.Update(ctx, user); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) generateAccessToken(user *User) (string, error) {
	return auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
}
