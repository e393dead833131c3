package credentials

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "credentials.json"))
}

func validCreds(expiresIn time.Duration) Credentials {
	return Credentials{
		AccessToken:  "access-token-value",
		RefreshToken: "refresh-token-value",
		ExpiresAt:    time.Now().Add(expiresIn).UnixMilli(),
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	creds := validCreds(time.Hour)

	require.NoError(t, store.Save(creds))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, *loaded)

	t.Run("file mode is owner-only", func(t *testing.T) {
		info, err := os.Stat(store.path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("no leftover temp file", func(t *testing.T) {
		_, err := os.Stat(store.path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestStore_SaveValidation(t *testing.T) {
	store := newTestStore(t)

	t.Run("short access token rejected", func(t *testing.T) {
		creds := validCreds(time.Hour)
		creds.AccessToken = "short"
		assert.ErrorIs(t, store.Save(creds), ErrTokenTooShort)
	})

	t.Run("short refresh token rejected", func(t *testing.T) {
		creds := validCreds(time.Hour)
		creds.RefreshToken = "short"
		assert.ErrorIs(t, store.Save(creds), ErrTokenTooShort)
	})

	t.Run("empty refresh token allowed", func(t *testing.T) {
		creds := validCreds(time.Hour)
		creds.RefreshToken = ""
		assert.NoError(t, store.Save(creds))
	})

	t.Run("expired artifact rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(validCreds(-time.Minute)), ErrExpired)
	})

	t.Run("zero expiry accepted as non-expiring", func(t *testing.T) {
		creds := validCreds(time.Hour)
		creds.ExpiresAt = 0
		assert.NoError(t, store.Save(creds))
	})
}

func TestStore_Status(t *testing.T) {
	store := newTestStore(t)

	t.Run("absent artifact", func(t *testing.T) {
		status := store.Status()
		assert.False(t, status.Present)
	})

	t.Run("valid artifact", func(t *testing.T) {
		require.NoError(t, store.Save(validCreds(time.Hour)))
		status := store.Status()
		assert.True(t, status.Present)
		assert.False(t, status.Expired)
		assert.WithinDuration(t, time.Now().Add(time.Hour), status.ExpiresAt, 5*time.Second)
	})

	t.Run("expiry observed after the fact", func(t *testing.T) {
		require.NoError(t, store.Save(validCreds(time.Minute)))
		store.now = func() time.Time { return time.Now().Add(time.Hour) }
		status := store.Status()
		assert.True(t, status.Present)
		assert.True(t, status.Expired)
	})
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}
