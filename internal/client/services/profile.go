package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdash/internal/client/api"
	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/session"
)

// ProfileService performs the authenticated profile calls. The token is read
// from the session at call time, so a request started after logout fails
// with session.ErrNoSession instead of sending a stale token.
type ProfileService interface {
	Fetch(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, p models.Profile) error
}

type profileService struct {
	client api.Client
	auth   session.Auth
}

func NewProfileService(client api.Client, auth session.Auth) ProfileService {
	return &profileService{client: client, auth: auth}
}

func (s *profileService) Fetch(ctx context.Context) (*models.Profile, error) {
	token, err := s.auth.State().Bearer()
	if err != nil {
		return nil, err
	}

	p, err := s.client.GetProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, p models.Profile) error {
	token, err := s.auth.State().Bearer()
	if err != nil {
		return err
	}

	if err := s.client.UpdateProfile(ctx, token, p); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
