package backoffice_test

import (
	"os"
	"path/filepath"
	"testing"

	backoffice "github.com/bookhaven/go-backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := backoffice.NewFileTokenStore(path)

	t.Run("load on empty store reports absent", func(t *testing.T) {
		token, ok := store.Load()
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		require.NoError(t, store.Save("first-token"))

		token, ok := store.Load()
		assert.True(t, ok)
		assert.Equal(t, "first-token", token)
	})

	t.Run("save overwrites the previous credential", func(t *testing.T) {
		require.NoError(t, store.Save("second-token"))

		token, ok := store.Load()
		assert.True(t, ok)
		assert.Equal(t, "second-token", token)
	})

	t.Run("token survives a new store instance", func(t *testing.T) {
		reopened := backoffice.NewFileTokenStore(path)
		token, ok := reopened.Load()
		assert.True(t, ok)
		assert.Equal(t, "second-token", token)
	})

	t.Run("clear removes the credential and is idempotent", func(t *testing.T) {
		require.NoError(t, store.Clear())
		require.NoError(t, store.Clear())

		_, ok := store.Load()
		assert.False(t, ok)
	})

	t.Run("file is user only", func(t *testing.T) {
		require.NoError(t, store.Save("perm-check"))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})
}

func TestMemoryTokenStore(t *testing.T) {
	store := backoffice.NewMemoryTokenStore()

	_, ok := store.Load()
	assert.False(t, ok)

	require.NoError(t, store.Save("tok"))
	token, ok := store.Load()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, ok = store.Load()
	assert.False(t, ok)
}
