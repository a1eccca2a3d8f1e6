// Package ports defines the core interfaces for the application.
package ports

// FingerprintStore defines the interface for persisting the history of
// previously validated requirement fingerprints.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// EnsureInitialized creates the store file with an empty list, including
	// its parent directory, if it does not exist yet.
	EnsureInitialized() error

	// Load returns all stored fingerprints, oldest first. A corrupt or
	// unreadable store is an error: the file is fully owned by this tool.
	Load() ([]string, error)

	// Save replaces the stored fingerprints entirely, truncating the list to
	// the retention cap (most recent entries win).
	Save(fingerprints []string) error
}
