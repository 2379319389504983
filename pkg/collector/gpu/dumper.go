package gpu

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/gpu-probe/pkg/settings"
	"github.com/NVIDIA/gpu-probe/pkg/smi"
)

// Dump is the raw output of both tools, captured when detection fails.
type Dump struct {
	SettingsOut string
	SMIText     string
	SMIXML      string
}

// Dumper captures raw tool output.
type Dumper struct {
	smi      *smi.Reader
	settings *settings.Reader
}

// NewDumper returns a Dumper using the tools from PATH unless overridden.
func NewDumper(opts ...Option) *Dumper {
	s, st := newReaders(opts)
	return &Dumper{smi: s, settings: st}
}

// Dump runs nvidia-settings --query all, nvidia-smi -q and nvidia-smi -x -q,
// in that order, and stops at the first failure.
func (d *Dumper) Dump(ctx context.Context) (*Dump, error) {
	var (
		out Dump
		err error
	)

	if out.SettingsOut, err = d.settings.Raw(ctx); err != nil {
		return nil, err
	}
	if out.SMIText, err = d.smi.RawText(ctx); err != nil {
		return nil, err
	}
	if out.SMIXML, err = d.smi.RawXML(ctx); err != nil {
		return nil, err
	}

	slog.Debug("captured raw tool output",
		"settingsBytes", len(out.SettingsOut),
		"smiTextBytes", len(out.SMIText),
		"smiXMLBytes", len(out.SMIXML))

	return &out, nil
}
