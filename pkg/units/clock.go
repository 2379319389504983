package units

import (
	"math"
	"strconv"
	"strings"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

const hzPerMHz = 1_000_000

// clockScales maps lower-cased unit suffixes to their multiplier in Hz.
var clockScales = map[string]float64{
	"hz":  1,
	"khz": 1e3,
	"mhz": 1e6,
	"ghz": 1e9,
}

// ParseClockSpeed converts a "<number> <unit>" frequency into Hz, rounding to
// the nearest integer. The unit is one of Hz, kHz, MHz or GHz in any case.
func ParseClockSpeed(text string) (uint64, error) {
	parts := strings.Fields(text)
	if len(parts) == 0 || len(parts) > 2 {
		return 0, errors.NewWithContext(errors.ErrCodeMalformedNumber,
			"clock speed must be <number> <unit>", map[string]any{"value": text})
	}

	if strings.Contains(parts[0], "_") {
		return 0, errors.NewWithContext(errors.ErrCodeMalformedNumber,
			"invalid clock speed number", map[string]any{"value": text})
	}

	freq, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeMalformedNumber,
			"invalid clock speed number", err, map[string]any{"value": text})
	}
	if freq < 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, errors.NewWithContext(errors.ErrCodeMalformedNumber,
			"clock speed out of range", map[string]any{"value": text})
	}

	if len(parts) < 2 {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidUnit,
			"missing clock speed unit", map[string]any{"value": text})
	}

	scale, ok := clockScales[strings.ToLower(parts[1])]
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidUnit,
			"invalid unit "+parts[1], map[string]any{"value": text, "unit": parts[1]})
	}

	hz := math.Round(freq * scale)
	if hz >= math.MaxUint64 {
		return 0, errors.NewWithContext(errors.ErrCodeMalformedNumber,
			"clock speed out of range", map[string]any{"value": text})
	}
	return uint64(hz), nil
}

// HzToMHz converts Hz to whole MHz, truncating.
func HzToMHz(hz uint64) uint64 {
	return hz / hzPerMHz
}
