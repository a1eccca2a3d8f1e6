package commands_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockcheck/cmd/lockcheck/commands"
	"go.trai.ch/lockcheck/internal/adapters/cache"
	"go.trai.ch/lockcheck/internal/adapters/fs"
	"go.trai.ch/lockcheck/internal/adapters/logger"
	"go.trai.ch/lockcheck/internal/adapters/shell"
	"go.trai.ch/lockcheck/internal/app"
	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/engine/verifier"
	"go.trai.ch/lockcheck/internal/ui/reporter"
)

// buildApp wires a real application around a shell script standing in for the
// lock compiler. The script receives the output directory as $1.
func buildApp(t *testing.T, reqDir, script string, stdout, stderr io.Writer) *app.App {
	t.Helper()

	cfg := domain.DefaultConfig()
	cfg.RequirementsDir = reqDir
	cfg.CacheFile = filepath.Join(t.TempDir(), "var", "tmp", "locked_requirements.json")
	cfg.CompileCommand = []string{"/bin/sh", "-c", script}

	log := logger.NewWithWriter(io.Discard)
	hasher := fs.NewHasher()
	compiler := shell.NewCompiler(cfg, log)

	return app.New(
		cfg,
		cache.NewStore(cfg.CacheFile),
		hasher,
		verifier.New(cfg, compiler, hasher, log),
		reporter.New(cfg, stdout, stderr),
		log,
	)
}

func setupRequirements(t *testing.T, lockedContent string) string {
	t.Helper()
	reqDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(reqDir, "base.in"), []byte("aiohttp\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(reqDir, "base.txt"), []byte(lockedContent), 0o644))
	return reqDir
}

func TestRootCommand_ConsistentLockfiles(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	reqDir := setupRequirements(t, "aiohttp==3.8.1\n")
	// The compiler reproduces the committed pins exactly.
	script := fmt.Sprintf(`cp %s/base.txt "$1"/base.txt`, reqDir)

	var stdout, stderr bytes.Buffer
	cli := commands.New(buildApp(t, reqDir, script, &stdout, &stderr))
	cli.SetArgs(nil)
	cli.SetOutput(&stdout, &stderr)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, stdout.String())
}

func TestRootCommand_DivergentLockfiles(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	reqDir := setupRequirements(t, "aiohttp==3.8.1\n")
	script := `printf 'aiohttp==3.9.0\n' > "$1"/base.txt`

	var stdout, stderr bytes.Buffer
	cli := commands.New(buildApp(t, reqDir, script, &stdout, &stderr))
	cli.SetArgs(nil)
	cli.SetOutput(&stdout, &stderr)

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrLockfilesOutOfSync)

	assert.Contains(t, stdout.String(), "@@")
	assert.Contains(t, stdout.String(), "-aiohttp==3.8.1")
	assert.Contains(t, stdout.String(), "+aiohttp==3.9.0")
	assert.Contains(t, stderr.String(), "Run `/bin/sh")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	t.Parallel()

	cli := commands.New(nil)
	cli.SetArgs([]string{"unexpected"})
	cli.SetOutput(io.Discard, io.Discard)

	require.Error(t, cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cli := commands.New(nil)
	cli.SetArgs([]string{"version"})
	cli.SetOutput(&out, &out)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "lockcheck version dev")
}
