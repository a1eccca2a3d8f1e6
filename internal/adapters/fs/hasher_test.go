package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/internal/adapters/fs"
)

func writeFiles(t *testing.T, dir string, files map[string]string, order []string) {
	t.Helper()
	for _, name := range order {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(files[name]), 0o644))
	}
}

func TestHasher_ComputeFingerprint(t *testing.T) {
	t.Parallel()

	hasher := fs.NewHasher()

	files := map[string]string{
		"base.in":  "aiohttp\nsix\n",
		"dev.in":   "pytest\n",
		"base.txt": "aiohttp==3.8.1\nsix==1.16.0\n",
		"dev.txt":  "pytest==7.4.0\n",
	}

	t.Run("independent of file creation order", func(t *testing.T) {
		t.Parallel()
		dirA := t.TempDir()
		dirB := t.TempDir()
		writeFiles(t, dirA, files, []string{"base.in", "dev.in", "base.txt", "dev.txt"})
		writeFiles(t, dirB, files, []string{"dev.txt", "base.in", "dev.in", "base.txt"})

		fpA, err := hasher.ComputeFingerprint(dirA, dirA)
		require.NoError(t, err)
		fpB, err := hasher.ComputeFingerprint(dirB, dirB)
		require.NoError(t, err)

		assert.Equal(t, fpA, fpB)
	})

	t.Run("sensitive to content changes", func(t *testing.T) {
		t.Parallel()
		dirA := t.TempDir()
		dirB := t.TempDir()
		writeFiles(t, dirA, files, []string{"base.in", "dev.in", "base.txt", "dev.txt"})

		changed := map[string]string{}
		for k, v := range files {
			changed[k] = v
		}
		changed["base.txt"] = "aiohttp==3.9.0\nsix==1.16.0\n"
		writeFiles(t, dirB, changed, []string{"base.in", "dev.in", "base.txt", "dev.txt"})

		fpA, err := hasher.ComputeFingerprint(dirA, dirA)
		require.NoError(t, err)
		fpB, err := hasher.ComputeFingerprint(dirB, dirB)
		require.NoError(t, err)

		assert.NotEqual(t, fpA, fpB)
	})

	t.Run("lock source directory is independently targetable", func(t *testing.T) {
		t.Parallel()
		reqDir := t.TempDir()
		scratch := t.TempDir()
		writeFiles(t, reqDir, files, []string{"base.in", "dev.in", "base.txt", "dev.txt"})
		writeFiles(t, scratch, files, []string{"base.txt", "dev.txt"})

		committed, err := hasher.ComputeFingerprint(reqDir, reqDir)
		require.NoError(t, err)
		regenerated, err := hasher.ComputeFingerprint(reqDir, scratch)
		require.NoError(t, err)

		// Identical lock content under identical names yields the same digest.
		assert.Equal(t, committed, regenerated)
	})

	t.Run("ignores unrelated extensions", func(t *testing.T) {
		t.Parallel()
		dirA := t.TempDir()
		dirB := t.TempDir()
		writeFiles(t, dirA, files, []string{"base.in", "dev.in", "base.txt", "dev.txt"})
		writeFiles(t, dirB, files, []string{"base.in", "dev.in", "base.txt", "dev.txt"})
		require.NoError(t, os.WriteFile(filepath.Join(dirB, "notes.md"), []byte("scratch"), 0o644))

		fpA, err := hasher.ComputeFingerprint(dirA, dirA)
		require.NoError(t, err)
		fpB, err := hasher.ComputeFingerprint(dirB, dirB)
		require.NoError(t, err)

		assert.Equal(t, fpA, fpB)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.ComputeFingerprint(filepath.Join(t.TempDir(), "absent"), t.TempDir())
		require.Error(t, err)
	})
}

func TestHasher_ComputeFileHash(t *testing.T) {
	t.Parallel()

	hasher := fs.NewHasher()
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	pathC := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(pathA, []byte("same content"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("same content"), 0o644))
	require.NoError(t, os.WriteFile(pathC, []byte("other content"), 0o644))

	hashA, err := hasher.ComputeFileHash(pathA)
	require.NoError(t, err)
	hashB, err := hasher.ComputeFileHash(pathB)
	require.NoError(t, err)
	hashC, err := hasher.ComputeFileHash(pathC)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.NotEqual(t, hashA, hashC)

	_, err = hasher.ComputeFileHash(filepath.Join(dir, "absent.txt"))
	require.Error(t, err)
}
