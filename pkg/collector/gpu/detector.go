package gpu

import (
	"context"
	"log/slog"

	gounits "github.com/docker/go-units"

	"github.com/NVIDIA/gpu-probe/pkg/settings"
	"github.com/NVIDIA/gpu-probe/pkg/smi"
	"github.com/NVIDIA/gpu-probe/pkg/units"
)

// Detector combines nvidia-smi and nvidia-settings into a Record.
type Detector struct {
	smi      *smi.Reader
	settings *settings.Reader
}

// NewDetector returns a Detector using the tools from PATH unless overridden.
func NewDetector(opts ...Option) *Detector {
	s, st := newReaders(opts)
	return &Detector{smi: s, settings: st}
}

// Detect runs both tools once and builds a Record. Any missing or malformed
// field fails the whole detection.
func (d *Detector) Detect(ctx context.Context) (*Record, error) {
	readings, err := d.smi.Read(ctx)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Model: readings.ProductName,
		CUDA: CUDA{
			Enabled: true,
			Version: readings.CUDAVersion,
		},
	}

	clocks := []struct {
		text string
		dst  *uint64
	}{
		{readings.GraphicsClock, &rec.Clocks.Graphics},
		{readings.SMClock, &rec.Clocks.SM},
		{readings.MemClock, &rec.Clocks.Memory},
		{readings.VideoClock, &rec.Clocks.Video},
	}
	for _, c := range clocks {
		hz, err := units.ParseClockSpeed(c.text)
		if err != nil {
			return nil, err
		}
		*c.dst = units.HzToMHz(hz)
	}

	memBytes, err := units.ParseMemorySize(readings.TotalMemory)
	if err != nil {
		return nil, err
	}
	rec.Memory.Total = units.BytesToGiB(memBytes)

	attrs, err := d.settings.Read(ctx)
	if err != nil {
		return nil, err
	}
	rec.CUDA.Cores = attrs.CUDACores
	rec.BusWidth = attrs.BusWidth
	rec.MaxTransferRate = attrs.MaxTransferRate
	rec.Memory.Bandwidth = Bandwidth(attrs.MaxTransferRate, attrs.BusWidth)

	slog.Debug("detected gpu",
		"model", rec.Model,
		"memory", gounits.BytesSize(float64(memBytes)),
		"cudaCores", rec.CUDA.Cores,
		"bandwidthGiB", rec.Memory.Bandwidth)

	return rec, nil
}
