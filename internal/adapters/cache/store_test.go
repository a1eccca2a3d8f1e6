package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/adapters/cache"
	"go.trai.ch/lockcheck/internal/core/domain"
)

func TestStore_EnsureInitialized(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directory and empty list", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "var", "tmp", "locked_requirements.json")
		store := cache.NewStore(path)

		require.NoError(t, store.EnsureInitialized())

		fingerprints, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, fingerprints)
	})

	t.Run("does not clobber an existing store", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cache.json")
		store := cache.NewStore(path)

		require.NoError(t, store.EnsureInitialized())
		require.NoError(t, store.Save([]string{"abc"}))
		require.NoError(t, store.EnsureInitialized())

		fingerprints, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"abc"}, fingerprints)
	})
}

func TestStore_LoadSave(t *testing.T) {
	t.Parallel()

	t.Run("roundtrip preserves order", func(t *testing.T) {
		t.Parallel()
		store := cache.NewStore(filepath.Join(t.TempDir(), "cache.json"))
		require.NoError(t, store.EnsureInitialized())

		want := []string{"first", "second", "third"}
		require.NoError(t, store.Save(want))

		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()
		store := cache.NewStore(filepath.Join(t.TempDir(), "absent.json"))

		_, err := store.Load()
		require.Error(t, err)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cache.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := cache.NewStore(path).Load()
		require.Error(t, err)
	})
}

func TestStore_Save_CapsRetention(t *testing.T) {
	t.Parallel()

	store := cache.NewStore(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, store.EnsureInitialized())

	fingerprints := make([]string, domain.FingerprintRetention+37)
	for i := range fingerprints {
		fingerprints[i] = fmt.Sprintf("fp-%d", i)
	}
	require.NoError(t, store.Save(fingerprints))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, domain.FingerprintRetention)
	assert.Equal(t, "fp-37", got[0])
	assert.Equal(t, fmt.Sprintf("fp-%d", len(fingerprints)-1), got[len(got)-1])
}
