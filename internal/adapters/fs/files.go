// Package fs provides filesystem helpers and the fingerprint hasher.
package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// ListByExt returns the names of regular files in dir carrying the given
// extension, sorted lexicographically.
func ListByExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// CopyFile copies the contents of src to dst, creating or truncating dst.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", src)
	}

	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}

	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write destination file"), "path", dst)
	}

	return nil
}
