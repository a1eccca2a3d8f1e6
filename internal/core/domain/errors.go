package domain

import "go.trai.ch/zerr"

var (
	// ErrLockfilesOutOfSync is returned after lock file divergence has been
	// reported. The diffs and remediation message are already printed when
	// callers observe it.
	ErrLockfilesOutOfSync = zerr.New("lock files out of sync with their inputs")

	// ErrCompilerFailed is returned when the external lock compiler exits
	// non-zero. Its own stderr is the user-facing diagnostic.
	ErrCompilerFailed = zerr.New("lock compiler failed")
)
