package ports

// Hasher defines the interface for computing requirement fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFingerprint digests every declarative file in requirementsDir and
	// every lock file in lockSourceDir, each set sorted lexicographically by
	// filename so the result is independent of filesystem iteration order.
	// lockSourceDir is a parameter so the same logic can target either the
	// committed lock files or a scratch directory holding regenerated output.
	ComputeFingerprint(requirementsDir, lockSourceDir string) (string, error)

	// ComputeFileHash computes a fast content digest of a single file.
	ComputeFileHash(path string) (uint64, error)
}
