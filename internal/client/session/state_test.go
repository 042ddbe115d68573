package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ZeroValueIsUnauthorized(t *testing.T) {
	var st State
	assert.False(t, st.Authorized())
	assert.Equal(t, Unauthorized, st.Status())
	assert.Equal(t, Anonymous(), st)
}

func TestSignedIn_BlankTokenIsAnonymous(t *testing.T) {
	assert.Equal(t, Anonymous(), SignedIn("", "a@b.com"))
	assert.Equal(t, Anonymous(), SignedIn("   ", ""))
}

func TestState_Bearer(t *testing.T) {
	_, err := Anonymous().Bearer()
	require.ErrorIs(t, err, ErrNoSession)

	tok, err := SignedIn("abc", "").Bearer()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "authorized", Authorized.String())
	assert.Equal(t, "unauthorized", Unauthorized.String())
}
