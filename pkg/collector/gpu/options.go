package gpu

import (
	"github.com/NVIDIA/gpu-probe/pkg/command"
	"github.com/NVIDIA/gpu-probe/pkg/settings"
	"github.com/NVIDIA/gpu-probe/pkg/smi"
)

// Option configures the tools used by a Detector, Dumper or Collector.
type Option func(*options)

type options struct {
	runner       command.Runner
	smiPath      string
	settingsPath string
}

// WithRunner sets the runner used for both tools.
func WithRunner(r command.Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithSMIPath overrides the nvidia-smi executable.
func WithSMIPath(path string) Option {
	return func(o *options) {
		o.smiPath = path
	}
}

// WithSettingsPath overrides the nvidia-settings executable.
func WithSettingsPath(path string) Option {
	return func(o *options) {
		o.settingsPath = path
	}
}

func newReaders(opts []Option) (*smi.Reader, *settings.Reader) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return smi.NewReader(smi.WithRunner(o.runner), smi.WithPath(o.smiPath)),
		settings.NewReader(settings.WithRunner(o.runner), settings.WithPath(o.settingsPath))
}
