package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes fingerprints over requirement file sets.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFingerprint digests the raw bytes of every declarative file in
// requirementsDir followed by every lock file in lockSourceDir, both sets
// sorted lexicographically by filename. Identical content under identical
// filenames yields an identical digest regardless of filesystem iteration
// order.
func (h *Hasher) ComputeFingerprint(requirementsDir, lockSourceDir string) (string, error) {
	digest := sha256.New()

	if err := h.hashDir(digest, requirementsDir, domain.DeclarativeExt); err != nil {
		return "", err
	}
	if err := h.hashDir(digest, lockSourceDir, domain.LockedExt); err != nil {
		return "", err
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// ComputeFileHash computes the XXHash of a single file's content. Used for
// compact drift diagnostics in log output.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return digest.Sum64(), nil
}

func (h *Hasher) hashDir(w io.Writer, dir, ext string) error {
	names, err := ListByExt(dir, ext)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := h.hashFile(w, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

func (h *Hasher) hashFile(w io.Writer, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is constructed from sorted directory listing
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to feed file into digest"), "path", path)
	}

	return nil
}
