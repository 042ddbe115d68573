package api

import (
	"context"

	"github.com/dmitrijs2005/userdash/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, reg models.Registration) (string, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, p models.Profile) error
}
