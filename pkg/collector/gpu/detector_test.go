package gpu

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gpu-probe/pkg/command"
	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

func TestBandwidth(t *testing.T) {
	tests := []struct {
		rate, width, want uint64
	}{
		{16000, 384, 768},
		{8000, 256, 256},
		{21002, 384, 1008},
		{14001, 128, 224},
		{0, 384, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bandwidth(tt.rate, tt.width), "rate=%d width=%d", tt.rate, tt.width)
	}
}

func TestDetector_Detect(t *testing.T) {
	rec, err := NewDetector(WithRunner(exampleFake())).Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Example GPU", rec.Model)
	assert.Equal(t, CUDA{Enabled: true, Cores: 2560, Version: "12.1"}, rec.CUDA)
	assert.Equal(t, Clocks{Graphics: 1000, Memory: 1000, SM: 1000, Video: 1000}, rec.Clocks)
	assert.InDelta(t, 8.0, rec.Memory.Total, 1e-9)
	assert.Equal(t, uint64(256), rec.Memory.Bandwidth)
	assert.Equal(t, uint64(256), rec.BusWidth)
	assert.Equal(t, uint64(8000), rec.MaxTransferRate)
}

func TestDetector_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		code    errors.ErrorCode
		message string
	}{
		{"bad clock unit", "<sm_clock>1000 MHz</sm_clock>", "<sm_clock>1000 XHz</sm_clock>", errors.ErrCodeInvalidUnit, "XHz"},
		{"bad clock number", "<video_clock>1000 MHz</video_clock>", "<video_clock>N/A MHz</video_clock>", errors.ErrCodeMalformedNumber, ""},
		{"bad memory size", "<total>8192 MiB</total>", "<total>N/A</total>", errors.ErrCodeMalformedSize, ""},
		{"missing model", "<product_name>Example GPU</product_name>", "", errors.ErrCodeFieldNotFound, "product_name"},
		{"empty cuda version", "<cuda_version>12.1</cuda_version>", "<cuda_version> </cuda_version>", errors.ErrCodeEmptyField, ""},
		{"missing max clocks", "max_clocks>", "boost_clocks>", errors.ErrCodeFieldNotFound, "max_clocks"},
		{"broken xml", "</nvidia_smi_log>", "", errors.ErrCodeXMLParse, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := exampleFake()
			fake.Outputs[smiXMLCmd] = strings.ReplaceAll(exampleSMIXML, tt.from, tt.to)

			_, err := NewDetector(WithRunner(fake)).Detect(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
			// settings is never consulted once nvidia-smi fails
			assert.Equal(t, []string{smiXMLCmd}, fake.Calls())
		})
	}
}

func TestDetector_NoFallbackInside(t *testing.T) {
	fake := &command.Fake{}
	_, err := NewDetector(WithRunner(fake)).Detect(context.Background())
	require.Error(t, err)
	assert.Len(t, fake.Calls(), 1)
}

func TestDumper_Dump(t *testing.T) {
	fake := exampleFake()
	dump, err := NewDumper(WithRunner(fake)).Dump(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Dump{
		SettingsOut: exampleSettings,
		SMIText:     exampleSMIText,
		SMIXML:      exampleSMIXML,
	}, dump)
	assert.Equal(t, []string{settingsCmd, smiTextCmd, smiXMLCmd}, fake.Calls())
}

func TestDumper_StopsAtFirstFailure(t *testing.T) {
	fake := exampleFake()
	delete(fake.Outputs, smiTextCmd)

	_, err := NewDumper(WithRunner(fake)).Dump(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeToolInvocation, errors.CodeOf(err))
	assert.Equal(t, []string{settingsCmd, smiTextCmd}, fake.Calls())
}
