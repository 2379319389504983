package settings

import (
	"strconv"
	"strings"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

const (
	attributeToken = "Attribute"

	attrCUDACores          = "CUDACores"
	attrGPUMemoryInterface = "GPUMemoryInterface"
	attrGPUPerfModes       = "GPUPerfModes"

	keyMemTransferRateMax = "memTransferRatemax"
)

// Partial is one line's contribution to Attributes. Zero fields carry no
// information.
type Partial struct {
	CUDACores       uint64
	BusWidth        uint64
	MaxTransferRate uint64
}

// Classifier inspects the whitespace-split fields of one line. It reports
// whether the line was recognized and, if so, what it contributes.
type Classifier func(fields []string) (Partial, bool, error)

// Classifiers is the set applied to every line, in order.
var Classifiers = []Classifier{
	ClassifyCUDACores,
	ClassifyMemoryInterface,
	ClassifyPerfModes,
}

// ClassifyCUDACores recognizes "Attribute 'CUDACores' ... <value>".
func ClassifyCUDACores(fields []string) (Partial, bool, error) {
	v, ok, err := trailingValue(fields, attrCUDACores)
	if !ok || err != nil {
		return Partial{}, ok, err
	}
	return Partial{CUDACores: v}, true, nil
}

// ClassifyMemoryInterface recognizes "Attribute 'GPUMemoryInterface' ... <value>".
func ClassifyMemoryInterface(fields []string) (Partial, bool, error) {
	v, ok, err := trailingValue(fields, attrGPUMemoryInterface)
	if !ok || err != nil {
		return Partial{}, ok, err
	}
	return Partial{BusWidth: v}, true, nil
}

// ClassifyPerfModes recognizes "Attribute 'GPUPerfModes' ..." and returns the
// largest memTransferRatemax on the line.
func ClassifyPerfModes(fields []string) (Partial, bool, error) {
	if !isAttribute(fields, attrGPUPerfModes) {
		return Partial{}, false, nil
	}

	var maxRate uint64
	for _, f := range fields[2:] {
		key, value, found := strings.Cut(f, "=")
		if !found || key != keyMemTransferRateMax {
			continue
		}
		rate, err := parseCount(strings.TrimRight(value, ","), attrGPUPerfModes)
		if err != nil {
			return Partial{}, true, err
		}
		maxRate = max(maxRate, rate)
	}
	return Partial{MaxTransferRate: maxRate}, true, nil
}

func isAttribute(fields []string, name string) bool {
	return len(fields) >= 2 && fields[0] == attributeToken && fields[1] == "'"+name+"'"
}

// trailingValue parses the last field of a named attribute line after
// dropping its final character (the full stop nvidia-settings prints).
func trailingValue(fields []string, name string) (uint64, bool, error) {
	if !isAttribute(fields, name) || len(fields) < 3 {
		return 0, false, nil
	}
	last := fields[len(fields)-1]
	v, err := parseCount(last[:len(last)-1], name)
	return v, true, err
}

func parseCount(s, attribute string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeMalformedNumber,
			"invalid "+attribute+" value", err,
			map[string]any{"attribute": attribute, "value": s})
	}
	return v, nil
}
