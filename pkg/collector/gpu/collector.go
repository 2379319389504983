package gpu

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Document keys.
const (
	KeyGPU         = "gpu"
	KeySettingsOut = "settings_out"
	KeySMIText     = "smi_text"
	KeySMIXML      = "smi_xml"
	KeyErrDebug    = "err_debug"
	KeyErrMain     = "err_main"
)

// Outcome tells which branch of the fallback chain produced a Report.
type Outcome int

const (
	// OutcomeDetected means a full Record was built.
	OutcomeDetected Outcome = iota
	// OutcomeDumped means detection failed and raw output was captured.
	OutcomeDumped
	// OutcomeFailed means both detection and the dump failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDetected:
		return "detected"
	case OutcomeDumped:
		return "dumped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report is the result of a collection. Exactly one of Record or Dump is set
// unless Outcome is OutcomeFailed, in which case both errors are set.
type Report struct {
	Outcome Outcome
	Record  *Record
	Dump    *Dump

	// DetectErr is set for OutcomeDumped and OutcomeFailed.
	DetectErr error
	// DumpErr is set for OutcomeFailed.
	DumpErr error
}

// Document renders the report as its JSON document shape.
func (r *Report) Document() map[string]any {
	switch r.Outcome {
	case OutcomeDetected:
		return map[string]any{KeyGPU: r.Record}
	case OutcomeDumped:
		return map[string]any{
			KeySettingsOut: r.Dump.SettingsOut,
			KeySMIText:     r.Dump.SMIText,
			KeySMIXML:      r.Dump.SMIXML,
		}
	default:
		return map[string]any{
			KeyErrDebug: errorString(r.DumpErr),
			KeyErrMain:  errorString(r.DetectErr),
		}
	}
}

// MarshalJSON encodes the document shape.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Collector runs detection and falls back to a raw dump.
type Collector struct {
	detector *Detector
	dumper   *Dumper
}

// NewCollector returns a Collector using the tools from PATH unless overridden.
func NewCollector(opts ...Option) *Collector {
	return &Collector{
		detector: NewDetector(opts...),
		dumper:   NewDumper(opts...),
	}
}

// Collect always returns a Report; errors are carried inside it.
func (c *Collector) Collect(ctx context.Context) *Report {
	report := c.collect(ctx)
	collectTotal.WithLabelValues(report.Outcome.String()).Inc()
	return report
}

func (c *Collector) collect(ctx context.Context) *Report {
	rec, err := c.detector.Detect(ctx)
	if err == nil {
		return &Report{Outcome: OutcomeDetected, Record: rec}
	}
	slog.Warn("gpu detection failed, capturing raw tool output", "error", err)

	dump, dumpErr := c.dumper.Dump(ctx)
	if dumpErr == nil {
		return &Report{Outcome: OutcomeDumped, Dump: dump, DetectErr: err}
	}
	slog.Error("failed to capture raw tool output", "error", dumpErr)

	return &Report{Outcome: OutcomeFailed, DetectErr: err, DumpErr: dumpErr}
}
