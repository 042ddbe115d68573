package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	RegisterToken string
	RegisterErr   error
	LastRegister  models.Registration

	LoginToken string
	LoginErr   error
	LastLogin  models.Credentials

	Profile    *models.Profile
	GetErr     error
	LastGetTok string

	UpdateErr     error
	LastUpdateTok string
	LastUpdate    models.Profile
	UpdateCalls   int
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (string, error) {
	f.LastRegister = reg
	return f.RegisterToken, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (string, error) {
	f.LastLogin = creds
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) GetProfile(_ context.Context, token string) (*models.Profile, error) {
	f.LastGetTok = token
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	p := *f.Profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, token string, p models.Profile) error {
	f.UpdateCalls++
	f.LastUpdateTok = token
	f.LastUpdate = p
	return f.UpdateErr
}

func newSession(t *testing.T) *session.Store {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s, err := session.Open(ctx, session.NewSQLitePersister(db))
	require.NoError(t, err)
	return s
}
