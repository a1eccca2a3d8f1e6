// Package domain contains the core types for lock file verification.
package domain

import "path/filepath"

const (
	// DeclarativeExt is the extension of declarative requirement input files.
	DeclarativeExt = ".in"
	// LockedExt is the extension of pinned lock files.
	LockedExt = ".txt"
)

const (
	// DirPerm is the permission used when creating directories.
	DirPerm = 0o750
	// FilePerm is the permission used when writing files.
	FilePerm = 0o644
)

// Config holds the resolved tool configuration.
type Config struct {
	// RequirementsDir is the directory holding *.in and *.txt files.
	RequirementsDir string
	// CacheFile is the path of the persisted fingerprint cache.
	CacheFile string
	// CompileCommand is the argv of the external lock compiler.
	CompileCommand []string
	// OutputFlag is the compiler flag naming its output directory.
	OutputFlag string
	// DocsURL points contributors at further documentation on failure.
	DocsURL string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		RequirementsDir: "requirements",
		CacheFile:       filepath.Join("var", "tmp", "locked_requirements.json"),
		CompileCommand:  []string{filepath.Join("tools", "update-locked-requirements")},
		OutputFlag:      "--output-dir",
		DocsURL:         "docs/requirements.md",
	}
}
