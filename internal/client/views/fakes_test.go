package views

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/services"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/stretchr/testify/require"
)

// fakeClient implements api.Client.
type fakeClient struct {
	Token    string
	LoginErr error

	Profile  models.Profile
	GetErr   error
	GetCalls int
	GetToken string

	UpdateErr   error
	UpdateCalls int
	LastUpdate  models.Profile
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (string, error) {
	return f.Token, f.LoginErr
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (string, error) {
	return f.Token, f.LoginErr
}

func (f *fakeClient) GetProfile(_ context.Context, token string) (*models.Profile, error) {
	f.GetCalls++
	f.GetToken = token
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	p := f.Profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, _ string, p models.Profile) error {
	f.UpdateCalls++
	f.LastUpdate = p
	if f.UpdateErr == nil {
		f.Profile = p
	}
	return f.UpdateErr
}

// memPersister keeps the session in memory.
type memPersister struct {
	st    session.State
	saves int
}

func (m *memPersister) Load(context.Context) (session.State, error) { return m.st, nil }
func (m *memPersister) Save(_ context.Context, st session.State) error {
	m.saves++
	m.st = st
	return nil
}

type app struct {
	client   *fakeClient
	persist  *memPersister
	store    *session.Store
	nav      *router.Navigator
	home     *Home
	profile  *Profile
	login    *Login
	register *Register
}

// newApp wires the controllers the way the binaries do.
func newApp(t *testing.T, st session.State) *app {
	t.Helper()
	ctx := context.Background()

	a := &app{
		client:  &fakeClient{Token: "tok"},
		persist: &memPersister{st: st},
	}
	store, err := session.Open(ctx, a.persist)
	require.NoError(t, err)
	a.store = store

	a.nav = router.NewNavigator(router.NewGuard(router.DefaultRoutes()), store, nil)
	unbind := a.nav.Bind()
	t.Cleanup(unbind)

	profiles := services.NewProfileService(a.client, store)
	authSvc := services.NewAuthService(a.client, store)

	a.home = NewHome(profiles, store, a.nav, nil)
	a.profile = NewProfile(profiles, store, a.nav, nil)
	a.login = NewLogin(authSvc, a.nav, nil)
	a.register = NewRegister(authSvc, a.nav, nil)

	require.NoError(t, a.nav.Handle(router.HomePath, a.home))
	require.NoError(t, a.nav.Handle(router.ProfilePath, a.profile))
	require.NoError(t, a.nav.Handle(router.LoginPath, a.login))
	require.NoError(t, a.nav.Handle(router.RegisterPath, a.register))
	return a
}
