package collector

import (
	"context"

	"github.com/NVIDIA/gpu-probe/pkg/collector/gpu"
	"github.com/NVIDIA/gpu-probe/pkg/collector/host"
	"github.com/NVIDIA/gpu-probe/pkg/command"
)

// GPUCollector produces a GPU report. It never fails; errors travel inside
// the report.
type GPUCollector interface {
	Collect(ctx context.Context) *gpu.Report
}

// HostCollector produces host system info.
type HostCollector interface {
	Collect(ctx context.Context) (*host.Info, error)
}

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateGPUCollector() GPUCollector
	CreateHostCollector() HostCollector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// SMIPath is the nvidia-smi executable. Empty means nvidia-smi from PATH.
	SMIPath string
	// SettingsPath is the nvidia-settings executable. Empty means nvidia-settings from PATH.
	SettingsPath string
	// Runner runs the tools. Nil means real processes.
	Runner command.Runner
}

// Option configures a DefaultFactory.
type Option func(*DefaultFactory)

// WithSMIPath sets the nvidia-smi executable.
func WithSMIPath(path string) Option {
	return func(f *DefaultFactory) {
		f.SMIPath = path
	}
}

// WithSettingsPath sets the nvidia-settings executable.
func WithSettingsPath(path string) Option {
	return func(f *DefaultFactory) {
		f.SettingsPath = path
	}
}

// WithRunner sets the command runner shared by the GPU tools.
func WithRunner(r command.Runner) Option {
	return func(f *DefaultFactory) {
		f.Runner = r
	}
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...Option) *DefaultFactory {
	f := &DefaultFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateGPUCollector creates a GPU collector.
func (f *DefaultFactory) CreateGPUCollector() GPUCollector {
	return gpu.NewCollector(
		gpu.WithRunner(f.Runner),
		gpu.WithSMIPath(f.SMIPath),
		gpu.WithSettingsPath(f.SettingsPath),
	)
}

// CreateHostCollector creates a host info collector.
func (f *DefaultFactory) CreateHostCollector() HostCollector {
	return &host.Collector{}
}
