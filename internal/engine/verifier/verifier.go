// Package verifier implements the lock file verification engine.
package verifier

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/lockcheck/internal/adapters/fs"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier regenerates lock files in a scratch directory and compares them
// byte-for-byte against the committed versions.
type Verifier struct {
	requirementsDir string
	compiler        ports.LockCompiler
	hasher          ports.Hasher
	logger          ports.Logger
}

// New creates a Verifier for the configured requirements directory.
func New(cfg *domain.Config, compiler ports.LockCompiler, hasher ports.Hasher, logger ports.Logger) *Verifier {
	return &Verifier{
		requirementsDir: cfg.RequirementsDir,
		compiler:        compiler,
		hasher:          hasher,
		logger:          logger,
	}
}

// Run seeds scratchDir with the committed lock files so the compiler performs
// incremental resolution, invokes the compiler, and compares its outputs
// against the committed files. It returns true only when every regenerated
// file is byte-identical to its committed counterpart. A lock file name
// present on only one side counts as a mismatch, never a skip. Only
// scratchDir is mutated.
func (v *Verifier) Run(ctx context.Context, scratchDir string) (bool, error) {
	committed, err := fs.ListByExt(v.requirementsDir, domain.LockedExt)
	if err != nil {
		return false, err
	}

	for _, name := range committed {
		src := filepath.Join(v.requirementsDir, name)
		if err := fs.CopyFile(src, filepath.Join(scratchDir, name)); err != nil {
			return false, err
		}
	}

	if err := v.compiler.Regenerate(ctx, scratchDir); err != nil {
		return false, err
	}

	regenerated, err := fs.ListByExt(scratchDir, domain.LockedExt)
	if err != nil {
		return false, err
	}

	regeneratedSet := make(map[string]bool, len(regenerated))
	for _, name := range regenerated {
		regeneratedSet[name] = true
	}
	committedSet := make(map[string]bool, len(committed))
	for _, name := range committed {
		committedSet[name] = true
	}

	clean := true
	for _, name := range regenerated {
		if !committedSet[name] {
			v.logger.Info("lock file not in committed set: " + name)
			clean = false
			continue
		}

		same, err := v.compareFile(name, scratchDir)
		if err != nil {
			return false, err
		}
		if !same {
			clean = false
		}
	}

	for _, name := range committed {
		if !regeneratedSet[name] {
			v.logger.Info("lock file no longer produced by compiler: " + name)
			clean = false
		}
	}

	return clean, nil
}

func (v *Verifier) compareFile(name, scratchDir string) (bool, error) {
	committedPath := filepath.Join(v.requirementsDir, name)
	regeneratedPath := filepath.Join(scratchDir, name)

	//nolint:gosec // Paths are constructed from sorted directory listings
	want, err := os.ReadFile(committedPath)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read committed lock file"), "path", committedPath)
	}

	//nolint:gosec // Paths are constructed from sorted directory listings
	got, err := os.ReadFile(regeneratedPath)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read regenerated lock file"), "path", regeneratedPath)
	}

	if bytes.Equal(want, got) {
		return true, nil
	}

	wantHash, err := v.hasher.ComputeFileHash(committedPath)
	if err != nil {
		return false, err
	}
	gotHash, err := v.hasher.ComputeFileHash(regeneratedPath)
	if err != nil {
		return false, err
	}
	v.logger.Info(fmt.Sprintf("lock file drift: %s (%016x -> %016x)", name, wantHash, gotHash))

	return false, nil
}
