package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"retrolog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() models.Identity {
	return models.Identity{
		ID:    models.FlexID(7),
		Name:  "Ada",
		Email: "ada@example.com",
		Token: "bearer-token",
	}
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoginThenRestoreRoundTrip(t *testing.T) {
	path := sessionPath(t)

	store := NewStore(path)
	assert.False(t, store.Current().IsAuthenticated)

	require.NoError(t, store.Login(testIdentity()))
	assert.True(t, store.Current().IsAuthenticated)

	// A fresh store restores the same identity from disk.
	restored := NewStore(path)
	state := restored.Current()
	require.True(t, state.IsAuthenticated)
	assert.Equal(t, testIdentity(), state.User)
}

func TestLogoutThenRestoreIsAnonymous(t *testing.T) {
	path := sessionPath(t)

	store := NewStore(path)
	require.NoError(t, store.Login(testIdentity()))
	require.NoError(t, store.Logout())

	assert.False(t, store.Current().IsAuthenticated)
	assert.Equal(t, models.Identity{}, store.Current().User, "no partial state")

	restored := NewStore(path)
	assert.False(t, restored.Current().IsAuthenticated)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := NewStore(sessionPath(t))
	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.False(t, store.Current().IsAuthenticated)
}

func TestRestoreMalformedFileIsAnonymous(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path)
	assert.False(t, store.Current().IsAuthenticated)
}

func TestRestoreExpiredSessionIsAnonymous(t *testing.T) {
	path := sessionPath(t)
	envelope := storedSession{
		Identity:  testIdentity(),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	data, err := json.Marshal(envelope)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	store := NewStore(path)
	assert.False(t, store.Current().IsAuthenticated)
}

func TestRestoreEmptyIdentityIsAnonymous(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"identity":{},"expiresAt":"2099-01-01T00:00:00Z"}`), 0o600))

	store := NewStore(path)
	assert.False(t, store.Current().IsAuthenticated)
}

func TestLoginPersistsExpiryWindow(t *testing.T) {
	path := sessionPath(t)
	store := NewStore(path)
	require.NoError(t, store.Login(testIdentity()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope storedSession
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.WithinDuration(t, time.Now().Add(TTL), envelope.ExpiresAt, time.Minute)
}
