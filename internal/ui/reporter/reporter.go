// Package reporter renders lock file divergence as unified diffs followed by
// a remediation message.
package reporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/lockcheck/internal/adapters/fs"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/lockcheck/internal/ui/output"
	"go.trai.ch/lockcheck/internal/ui/style"
	"go.trai.ch/zerr"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

var _ ports.Reporter = (*Reporter)(nil)

// Reporter prints unified diffs to stdout and the remediation message to
// stderr. Diffs stay plain text so CI logs and pipes get standard
// ---/+++/@@ blocks; only the remediation message is styled.
type Reporter struct {
	cfg    *domain.Config
	stdout io.Writer
	stderr io.Writer
	header lipgloss.Style
	hint   lipgloss.Style
}

// New creates a Reporter writing diffs to stdout and remediation to stderr.
func New(cfg *domain.Config, stdout, stderr io.Writer) *Reporter {
	renderer := lipgloss.NewRenderer(stderr, termenv.WithProfile(output.ColorProfile()))
	return &Reporter{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
		header: renderer.NewStyle().Foreground(style.Red).Bold(true),
		hint:   renderer.NewStyle().Foreground(style.Slate),
	}
}

// Report prints a unified diff for every regenerated lock file that differs
// from its committed counterpart, flushes all diff output, then emits the
// remediation message and returns the terminating consistency error.
func (r *Reporter) Report(requirementsDir, scratchDir string) error {
	names, err := fs.ListByExt(scratchDir, domain.LockedExt)
	if err != nil {
		return err
	}

	for _, name := range names {
		if err := r.printDiff(requirementsDir, scratchDir, name); err != nil {
			return err
		}
	}

	// Diff output must be complete before the failure is signaled.
	if f, ok := r.stdout.(interface{ Flush() error }); ok {
		_ = f.Flush()
	} else if f, ok := r.stdout.(*os.File); ok {
		_ = f.Sync()
	}

	r.printRemediation()

	return domain.ErrLockfilesOutOfSync
}

func (r *Reporter) printDiff(requirementsDir, scratchDir, name string) error {
	committedPath := filepath.Join(requirementsDir, name)
	regeneratedPath := filepath.Join(scratchDir, name)

	// A lock file the compiler newly produced diffs against empty content.
	committed, err := readFileOrEmpty(committedPath)
	if err != nil {
		return err
	}
	regenerated, err := readFileOrEmpty(regeneratedPath)
	if err != nil {
		return err
	}

	if bytes.Equal(committed, regenerated) {
		return nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(committed)),
		B:        splitLines(string(regenerated)),
		FromFile: committedPath,
		ToFile:   regeneratedPath,
		Context:  diffContext,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to render diff"), "file", name)
	}

	_, _ = fmt.Fprint(r.stdout, diff)

	return nil
}

func (r *Reporter) printRemediation() {
	head := r.header.Render(style.Cross + " Lock files are out of sync with their declarative inputs.")
	body := fmt.Sprintf(
		"Run `%s` to regenerate them, commit the result, and re-run this check.",
		strings.Join(r.cfg.CompileCommand, " "),
	)
	hint := r.hint.Render("See " + r.cfg.DocsURL + " for more details.")

	_, _ = fmt.Fprintln(r.stderr, head)
	_, _ = fmt.Fprintln(r.stderr, body)
	_, _ = fmt.Fprintln(r.stderr, hint)
}

func readFileOrEmpty(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from directory listings
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}
	return data, nil
}

// splitLines splits keeping line terminators, without the phantom trailing
// line difflib.SplitLines appends.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
