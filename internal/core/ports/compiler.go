package ports

import "context"

// LockCompiler defines the interface to the external lock compiler process.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type LockCompiler interface {
	// Regenerate invokes the compiler, instructing it to write one regenerated
	// lock file per declarative input into outputDir. A non-zero exit from the
	// compiler is returned as an error.
	Regenerate(ctx context.Context, outputDir string) error
}
