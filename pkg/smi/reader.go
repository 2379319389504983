package smi

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/gpu-probe/pkg/command"
	"github.com/NVIDIA/gpu-probe/pkg/defaults"
)

// Element names in the nvidia-smi XML report.
const (
	FieldProductName   = "product_name"
	FieldCUDAVersion   = "cuda_version"
	FieldMaxClocks     = "max_clocks"
	FieldGraphicsClock = "graphics_clock"
	FieldSMClock       = "sm_clock"
	FieldMemClock      = "mem_clock"
	FieldVideoClock    = "video_clock"
	FieldFBMemoryUsage = "fb_memory_usage"
	FieldTotal         = "total"
)

var (
	xmlArgs  = []string{"-x", "-q"}
	textArgs = []string{"-q"}
)

// Readings holds the raw, unconverted field values read from the report.
type Readings struct {
	ProductName   string
	CUDAVersion   string
	GraphicsClock string
	SMClock       string
	MemClock      string
	VideoClock    string
	TotalMemory   string
}

// Reader runs nvidia-smi and extracts Readings from its XML report.
type Reader struct {
	runner command.Runner
	path   string
}

// Option configures a Reader.
type Option func(*Reader)

// WithPath sets the nvidia-smi executable.
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

// NewReader returns a Reader using nvidia-smi from PATH unless overridden.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		runner: command.ExecRunner{},
		path:   defaults.SMICommand,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the configured nvidia-smi executable.
func (r *Reader) Path() string {
	return r.path
}

// RunAndParse runs nvidia-smi in XML mode and parses its output.
func (r *Reader) RunAndParse(ctx context.Context) (*Tree, error) {
	out, err := r.runner.Run(ctx, r.path, xmlArgs...)
	if err != nil {
		return nil, err
	}
	tree, err := ParseXML(out)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed nvidia-smi report", "elements", tree.Len())
	return tree, nil
}

// Read runs nvidia-smi and extracts Readings.
func (r *Reader) Read(ctx context.Context) (*Readings, error) {
	tree, err := r.RunAndParse(ctx)
	if err != nil {
		return nil, err
	}
	return Extract(tree)
}

// RawXML returns the unparsed XML report.
func (r *Reader) RawXML(ctx context.Context) (string, error) {
	return command.Text(ctx, r.runner, r.path, xmlArgs...)
}

// RawText returns the human-readable report.
func (r *Reader) RawText(ctx context.Context) (string, error) {
	return command.Text(ctx, r.runner, r.path, textArgs...)
}

// Extract pulls the capability fields out of doc. It fails on the first
// missing or empty field.
func Extract(doc Document) (*Readings, error) {
	var (
		res Readings
		err error
	)

	if res.ProductName, err = field(doc, FieldProductName); err != nil {
		return nil, err
	}
	if res.CUDAVersion, err = field(doc, FieldCUDAVersion); err != nil {
		return nil, err
	}

	maxClocks, err := doc.Lookup(FieldMaxClocks)
	if err != nil {
		return nil, err
	}
	clocks := []struct {
		name string
		dst  *string
	}{
		{FieldGraphicsClock, &res.GraphicsClock},
		{FieldSMClock, &res.SMClock},
		{FieldMemClock, &res.MemClock},
		{FieldVideoClock, &res.VideoClock},
	}
	for _, c := range clocks {
		if *c.dst, err = childField(doc, maxClocks, c.name); err != nil {
			return nil, err
		}
	}

	fbMemory, err := doc.Lookup(FieldFBMemoryUsage)
	if err != nil {
		return nil, err
	}
	if res.TotalMemory, err = childField(doc, fbMemory, FieldTotal); err != nil {
		return nil, err
	}

	return &res, nil
}

func field(doc Document, name string) (string, error) {
	id, err := doc.Lookup(name)
	if err != nil {
		return "", err
	}
	return doc.Text(id)
}

func childField(doc Document, parent NodeID, name string) (string, error) {
	id, err := doc.LookupChild(parent, name)
	if err != nil {
		return "", err
	}
	return doc.Text(id)
}
