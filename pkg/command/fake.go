package command

import (
	"context"
	"strings"
	"sync"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

// Fake is an in-memory Runner keyed by the full command line
// ("nvidia-smi -x -q"). Unknown command lines fail like a missing tool.
// It is safe for concurrent use.
type Fake struct {
	// Outputs maps command lines to stdout.
	Outputs map[string]string
	// Errors maps command lines to the error returned instead of output.
	Errors map[string]error

	mu    sync.Mutex
	calls []string
}

// Run returns the configured output or error for the command line.
func (f *Fake) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := CommandLine(name, args...)

	f.mu.Lock()
	f.calls = append(f.calls, line)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, name+" did not finish", err)
	}
	if err, ok := f.Errors[line]; ok {
		return nil, err
	}
	if out, ok := f.Outputs[line]; ok {
		return []byte(out), nil
	}
	return nil, errors.NewWithContext(errors.ErrCodeToolInvocation,
		name+" not found in PATH", map[string]any{"tool": name})
}

// Calls returns the command lines run so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CommandLine joins a command and its arguments with single spaces.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
