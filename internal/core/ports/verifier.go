package ports

import "context"

// Verifier defines the interface for checking committed lock files against
// freshly regenerated ones.
//
//go:generate mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Run seeds scratchDir with the committed lock files, regenerates them
	// through the lock compiler, and compares the outputs byte-for-byte.
	// It returns true only when every regenerated file matches its committed
	// counterpart. Only scratchDir is mutated.
	Run(ctx context.Context, scratchDir string) (bool, error)
}
