package ports

// Reporter defines the interface for presenting lock file divergence.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report prints a unified diff per regenerated lock file, flushes all diff
	// output, then emits the remediation message and returns the terminating
	// consistency error.
	Report(requirementsDir, scratchDir string) error
}
