package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userdash/internal/client/api"
	"github.com/dmitrijs2005/userdash/internal/client/app"
	"github.com/dmitrijs2005/userdash/internal/client/models"
	"github.com/dmitrijs2005/userdash/internal/client/router"
	"github.com/dmitrijs2005/userdash/internal/client/session"
	"github.com/dmitrijs2005/userdash/internal/client/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token    string
	loginErr error
	lastReg  models.Registration
	lastPass string

	profile   models.Profile
	getErr    error
	updateErr error
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (string, error) {
	f.lastReg = reg
	f.lastPass = reg.Password
	return f.token, f.loginErr
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (string, error) {
	f.lastPass = creds.Password
	return f.token, f.loginErr
}

func (f *fakeClient) GetProfile(context.Context, string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p := f.profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, _ string, p models.Profile) error {
	if f.updateErr == nil {
		f.profile = p
	}
	return f.updateErr
}

type memPersister struct{ st session.State }

func (m *memPersister) Load(context.Context) (session.State, error) { return m.st, nil }
func (m *memPersister) Save(_ context.Context, st session.State) error {
	m.st = st
	return nil
}

func newTestApp(t *testing.T, st session.State, client *fakeClient) (*App, *bytes.Buffer) {
	t.Helper()
	core, err := app.Build(context.Background(), &memPersister{st: st}, client, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = core.Close() })

	var out bytes.Buffer
	return &App{core: core, reader: bufio.NewReader(strings.NewReader("")), out: &out}, &out
}

// stubInputs feeds answers to successive text prompts and a fixed password.
func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
}

func TestApp_LoginShowsWelcome(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{token: "abc", profile: models.Profile{Email: "a@b.com"}}
	a, out := newTestApp(t, session.Anonymous(), client)
	stubInputs(t, []string{"a@b.com"}, "pw")

	require.NoError(t, a.Go(ctx, "/"))
	assert.Equal(t, "/login", a.getStatus())

	require.NoError(t, a.Login(ctx))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "pw", client.lastPass)
	assert.Equal(t, "/home (a@b.com)", a.getStatus())
	assert.Contains(t, out.String(), "Login successful")
	assert.Contains(t, out.String(), "Welcome, a@b.com.")
}

func TestApp_LoginWhenAlreadySignedIn(t *testing.T) {
	client := &fakeClient{profile: models.Profile{Email: "a@b.com"}}
	a, out := newTestApp(t, session.SignedIn("abc", "a@b.com"), client)
	stubInputs(t, nil, "")

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Already logged in as a@b.com")
	assert.Equal(t, router.HomePath, a.core.Nav.Current())
}

func TestApp_LoginFailure(t *testing.T) {
	client := &fakeClient{loginErr: api.ErrUnauthorized}
	a, out := newTestApp(t, session.Anonymous(), client)
	stubInputs(t, []string{"a@b.com"}, "bad")

	err := a.Login(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, out.String(), "Login unsuccessful")
	assert.False(t, a.isLoggedIn())
}

func TestApp_Register(t *testing.T) {
	client := &fakeClient{token: "t1", profile: models.Profile{Email: "j@d.com"}}
	a, out := newTestApp(t, session.Anonymous(), client)
	stubInputs(t, []string{"Jane Doe", "jane", "j@d.com", "555"}, "pw")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, models.Registration{
		FullName: "Jane Doe", Username: "jane", Email: "j@d.com", PhoneNumber: "555", Password: "pw",
	}, client.lastReg)
	assert.Contains(t, out.String(), "Success!")
	assert.Equal(t, router.HomePath, a.core.Nav.Current())
}

func TestApp_ProfileEditSave(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{profile: models.Profile{FullName: "John", Email: "a@b.com"}}
	a, out := newTestApp(t, session.SignedIn("abc", "a@b.com"), client)

	require.NoError(t, a.Go(ctx, "/profile"))
	assert.Contains(t, out.String(), "Personal Data  [edit]")

	require.NoError(t, a.Edit(ctx))
	require.NoError(t, a.Set(ctx, models.FieldFullName, "Jane Doe"))
	require.ErrorIs(t, a.Set(ctx, models.FieldEmail, "x@y.z"), views.ErrReadOnlyField)

	out.Reset()
	require.NoError(t, a.Save(ctx))
	assert.Equal(t, "Jane Doe", a.core.Profile.Committed().FullName)
	assert.Contains(t, out.String(), "Jane Doe")
	assert.Contains(t, out.String(), "[edit]")
}

func TestApp_ProfileSaveFailure(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{profile: models.Profile{FullName: "John"}, updateErr: errors.New("boom")}
	a, out := newTestApp(t, session.SignedIn("abc", "a@b.com"), client)

	require.NoError(t, a.Go(ctx, "/profile"))
	require.NoError(t, a.Edit(ctx))
	require.NoError(t, a.Set(ctx, models.FieldFullName, "Jane"))

	require.Error(t, a.Save(ctx))
	assert.Contains(t, out.String(), "Profile was not saved")
	assert.Equal(t, "John", a.core.Profile.Draft().FullName)
	assert.True(t, a.isLoggedIn())
}

func TestApp_ProfileCommandsElsewhere(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, session.Anonymous(), &fakeClient{})

	require.NoError(t, a.Go(ctx, "/home"))
	require.ErrorIs(t, a.Edit(ctx), errNotOnProfile)
	require.ErrorIs(t, a.Save(ctx), errNotOnProfile)
	require.ErrorIs(t, a.Cancel(ctx), errNotOnProfile)
	require.ErrorIs(t, a.Set(ctx, "fullName", "x"), errNotOnProfile)
}

func TestApp_ProfileFetchFailureLogsOut(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{getErr: api.ErrUnauthorized}
	a, out := newTestApp(t, session.SignedIn("abc", "a@b.com"), client)

	require.NoError(t, a.Go(ctx, "/profile"))

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "/login", a.getStatus())
	assert.Contains(t, out.String(), "== Login ==")
}

func TestApp_Logout(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{profile: models.Profile{Email: "a@b.com"}}
	a, out := newTestApp(t, session.SignedIn("abc", "a@b.com"), client)

	require.NoError(t, a.Go(ctx, "/profile"))
	require.NoError(t, a.Logout(ctx))

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, router.LoginPath, a.core.Nav.Current())
	assert.Contains(t, out.String(), "Logged out")
}

func TestApp_UnknownRoute(t *testing.T) {
	a, out := newTestApp(t, session.Anonymous(), &fakeClient{})

	require.ErrorIs(t, a.Go(context.Background(), "/admin"), router.ErrUnknownRoute)
	assert.Contains(t, out.String(), "navigation failed")
}

func TestRenderProfile_States(t *testing.T) {
	var b bytes.Buffer
	renderProfile(&b, views.ProfileModel{Prompt: views.LoginPrompt})
	assert.Contains(t, b.String(), views.LoginPrompt)

	b.Reset()
	renderProfile(&b, views.ProfileModel{Authorized: true, Loading: true})
	assert.Contains(t, b.String(), "Loading...")

	b.Reset()
	renderProfile(&b, views.ProfileModel{
		Authorized: true,
		Editing:    true,
		Action:     "Save",
		Fields: []views.FieldModel{
			{FieldSpec: models.ProfileFields[0], Value: "Jane"},
			{FieldSpec: models.ProfileFields[2], Value: "a@b.com", Disabled: true},
		},
	})
	s := b.String()
	assert.Contains(t, s, "[save]")
	assert.Contains(t, s, "Full Name:  Jane  (fullName)")
	assert.Contains(t, s, "a@b.com  (read-only)")
}
