// Package shell provides the subprocess adapter for the external lock compiler.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockCompiler = (*Compiler)(nil)

// Compiler invokes the external lock-compiler driver via os/exec.
type Compiler struct {
	command    []string
	outputFlag string
	logger     ports.Logger
}

// NewCompiler creates a Compiler from the configured argv and output flag.
func NewCompiler(cfg *domain.Config, logger ports.Logger) *Compiler {
	return &Compiler{
		command:    cfg.CompileCommand,
		outputFlag: cfg.OutputFlag,
		logger:     logger,
	}
}

// Regenerate runs the compiler with the output-directory flag appended,
// streaming its stdout and stderr to the logger. The process is waited on to
// completion; no timeout is applied.
func (c *Compiler) Regenerate(ctx context.Context, outputDir string) error {
	if len(c.command) == 0 {
		return zerr.New("no compile command configured")
	}

	name := c.command[0]
	args := make([]string, 0, len(c.command)+1)
	args = append(args, c.command[1:]...)
	args = append(args, c.outputFlag, outputDir)

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from trusted config
	cmd.Env = os.Environ()
	cmd.Stdout = &logWriter{logger: c.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: c.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(err, domain.ErrCompilerFailed.Error())
		wrapped = zerr.With(wrapped, "command", name)
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
