package units

import (
	"github.com/dustin/go-humanize"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

const bytesPerGiB = 1024 * 1024 * 1024

// ParseMemorySize converts a binary or decimal byte-size string such as
// "24576 MiB" or "16 GB" into bytes.
func ParseMemorySize(text string) (uint64, error) {
	n, err := humanize.ParseBytes(text)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeMalformedSize,
			"invalid memory size", err, map[string]any{"value": text})
	}
	return n, nil
}

// BytesToGiB converts bytes to GiB.
func BytesToGiB(b uint64) float64 {
	return float64(b) / bytesPerGiB
}
