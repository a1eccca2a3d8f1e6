// Package cache implements the fingerprint store backed by a flat JSON file.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

// Store implements ports.FingerprintStore using a single JSON file holding an
// ordered list of fingerprint hex strings, most recent last.
type Store struct {
	path string
}

// NewStore creates a new FingerprintStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// EnsureInitialized creates the store file with an empty list if it does not
// exist, creating its parent directory as needed.
func (s *Store) EnsureInitialized() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to stat fingerprint cache")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create fingerprint cache directory")
	}

	return s.write([]string{})
}

// Load reads and deserializes the stored fingerprints.
func (s *Store) Load() ([]string, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read fingerprint cache")
	}

	var fingerprints []string
	if err := json.Unmarshal(data, &fingerprints); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal fingerprint cache")
	}

	return fingerprints, nil
}

// Save truncates the list to the retention cap and replaces the prior content.
func (s *Store) Save(fingerprints []string) error {
	return s.write(domain.CapFingerprints(fingerprints))
}

func (s *Store) write(fingerprints []string) error {
	data, err := json.Marshal(fingerprints)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal fingerprint cache")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to write fingerprint cache")
	}

	return nil
}
