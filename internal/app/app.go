// Package app implements the application layer for lockcheck.
package app

import (
	"context"
	"os"
	"slices"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg      *domain.Config
	store    ports.FingerprintStore
	hasher   ports.Hasher
	verifier ports.Verifier
	reporter ports.Reporter
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	store ports.FingerprintStore,
	hasher ports.Hasher,
	verifier ports.Verifier,
	reporter ports.Reporter,
	logger ports.Logger,
) *App {
	return &App{
		cfg:      cfg,
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		reporter: reporter,
		logger:   logger,
	}
}

// Check runs the lock file consistency gate:
//
//	CACHE_CHECK -> (HIT: done) | (MISS: VERIFY -> CACHE_UPDATE ->
//	(PASS: done) | (FAIL: REPORT -> error))
//
// The cache is updated before a failure is reported, keyed by the fingerprint
// of the freshly regenerated state, so that running the regeneration command
// afterwards turns the next check into a cache hit.
func (a *App) Check(ctx context.Context) error {
	if err := a.store.EnsureInitialized(); err != nil {
		return err
	}

	seen, err := a.store.Load()
	if err != nil {
		return err
	}

	current, err := a.hasher.ComputeFingerprint(a.cfg.RequirementsDir, a.cfg.RequirementsDir)
	if err != nil {
		return err
	}

	if slices.Contains(seen, current) {
		a.logger.Info("requirements unchanged since last successful check")
		return nil
	}

	scratchDir, err := os.MkdirTemp("", "lockcheck-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create scratch directory")
	}
	defer func() { _ = os.RemoveAll(scratchDir) }()

	clean, err := a.verifier.Run(ctx, scratchDir)
	if err != nil {
		return err
	}

	// The regeneration succeeded either way; remember its fingerprint.
	regenerated, err := a.hasher.ComputeFingerprint(a.cfg.RequirementsDir, scratchDir)
	if err != nil {
		return err
	}
	if err := a.store.Save(append(seen, regenerated)); err != nil {
		return err
	}

	if clean {
		a.logger.Info("lock files are consistent with their inputs")
		return nil
	}

	return a.reporter.Report(a.cfg.RequirementsDir, scratchDir)
}
