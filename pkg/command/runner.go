package command

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

// waitDelay bounds how long a canceled tool may hold its output pipes open.
const waitDelay = 2 * time.Second

// Runner runs an external command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands as subprocesses.
type ExecRunner struct{}

// Run executes name with args and returns stdout once the process exits.
// The call blocks until the process exits or ctx is done.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	errCtx := map[string]any{
		"tool": name,
		"args": strings.Join(args, " "),
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
			name+" not started", err, errCtx)
	}

	path, err := exec.LookPath(name)
	if err != nil {
		toolInvocations.WithLabelValues(name, statusNotFound).Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeToolInvocation,
			name+" not found in PATH", err, errCtx)
	}

	slog.Debug("running tool", "tool", name, "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = waitDelay

	out, err := cmd.Output()
	if ctxErr := ctx.Err(); ctxErr != nil {
		toolInvocations.WithLabelValues(name, statusTimeout).Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeTimeout,
			name+" did not finish", ctxErr, errCtx)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			toolInvocations.WithLabelValues(name, statusFailed).Inc()
			return nil, errors.WrapWithContext(errors.ErrCodeToolInvocation,
				"failed to execute "+name, err, errCtx)
		}
		slog.Debug("tool exited with non-zero status",
			"tool", name,
			"exitCode", exitErr.ExitCode(),
			"stdoutBytes", len(out))
	}

	if !utf8.Valid(out) {
		toolInvocations.WithLabelValues(name, statusUndecodable).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeToolInvocation,
			name+" output is not valid UTF-8", errCtx)
	}

	toolInvocations.WithLabelValues(name, statusOK).Inc()
	return out, nil
}

// Text runs the command through r and returns stdout as a string.
func Text(ctx context.Context, r Runner, name string, args ...string) (string, error) {
	out, err := r.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
