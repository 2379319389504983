package settings

import (
	"bufio"
	"context"
	"log/slog"
	"strings"

	"github.com/NVIDIA/gpu-probe/pkg/command"
	"github.com/NVIDIA/gpu-probe/pkg/defaults"
	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

var queryArgs = []string{"--query", "all"}

// Attributes are the values extracted from the nvidia-settings report.
// A later zero CUDACores or BusWidth value does not replace an
// earlier non-zero one.
type Attributes struct {
	// CUDACores is the number of CUDA cores.
	CUDACores uint64
	// BusWidth is the memory interface width in bits.
	BusWidth uint64
	// MaxTransferRate is the highest memTransferRatemax over all performance
	// modes, in mega-transfers per second.
	MaxTransferRate uint64
}

func (a *Attributes) merge(p Partial) {
	if p.CUDACores != 0 {
		a.CUDACores = p.CUDACores
	}
	if p.BusWidth != 0 {
		a.BusWidth = p.BusWidth
	}
	a.MaxTransferRate = max(a.MaxTransferRate, p.MaxTransferRate)
}

func (a *Attributes) validate() error {
	switch {
	case a.MaxTransferRate == 0:
		return attributeNotFound(keyMemTransferRateMax)
	case a.BusWidth == 0:
		return attributeNotFound(attrGPUMemoryInterface)
	case a.CUDACores == 0:
		return attributeNotFound(attrCUDACores)
	}
	return nil
}

func attributeNotFound(name string) error {
	return errors.NewWithContext(errors.ErrCodeAttributeNotFound,
		name+" attribute not found", map[string]any{"attribute": name})
}

// Scan runs every classifier over every line of output and returns the
// merged attributes.
func Scan(output string) (*Attributes, error) {
	var attrs Attributes

	sc := bufio.NewScanner(strings.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		for _, classify := range Classifiers {
			p, ok, err := classify(fields)
			if err != nil {
				return nil, err
			}
			if ok {
				attrs.merge(p)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeToolInvocation, "failed to read nvidia-settings output", err)
	}

	if err := attrs.validate(); err != nil {
		return nil, err
	}
	return &attrs, nil
}

// Reader runs nvidia-settings and scans its report.
type Reader struct {
	runner command.Runner
	path   string
}

// Option configures a Reader.
type Option func(*Reader)

// WithPath sets the nvidia-settings executable.
func WithPath(path string) Option {
	return func(r *Reader) {
		if path != "" {
			r.path = path
		}
	}
}

// WithRunner sets the command runner.
func WithRunner(runner command.Runner) Option {
	return func(r *Reader) {
		if runner != nil {
			r.runner = runner
		}
	}
}

// NewReader returns a Reader using nvidia-settings from PATH unless overridden.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		runner: command.ExecRunner{},
		path:   defaults.SettingsCommand,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the configured nvidia-settings executable.
func (r *Reader) Path() string {
	return r.path
}

// Read runs nvidia-settings and extracts Attributes.
func (r *Reader) Read(ctx context.Context) (*Attributes, error) {
	out, err := r.Raw(ctx)
	if err != nil {
		return nil, err
	}
	attrs, err := Scan(out)
	if err != nil {
		return nil, err
	}
	slog.Debug("scanned nvidia-settings report",
		"cudaCores", attrs.CUDACores,
		"busWidth", attrs.BusWidth,
		"maxTransferRate", attrs.MaxTransferRate)
	return attrs, nil
}

// Raw returns the unparsed report.
func (r *Reader) Raw(ctx context.Context) (string, error) {
	return command.Text(ctx, r.runner, r.path, queryArgs...)
}
