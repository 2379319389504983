package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gpu-probe/pkg/collector"
	"github.com/NVIDIA/gpu-probe/pkg/command"
)

const testSMIXML = `<nvidia_smi_log>
	<cuda_version>12.4</cuda_version>
	<gpu>
		<product_name>Test GPU</product_name>
		<fb_memory_usage><total>8192 MiB</total></fb_memory_usage>
		<max_clocks>
			<graphics_clock>1000 MHz</graphics_clock>
			<sm_clock>1000 MHz</sm_clock>
			<mem_clock>1000 MHz</mem_clock>
			<video_clock>1000 MHz</video_clock>
		</max_clocks>
	</gpu>
</nvidia_smi_log>`

const testSettings = `Attribute 'CUDACores' (host:0[gpu:0]): 2560.
Attribute 'GPUMemoryInterface' (host:0[gpu:0]): 256.
Attribute 'GPUPerfModes' (host:0[gpu:0]): perf=0, memTransferRatemax=8000,
`

func testRunner() *command.Fake {
	return &command.Fake{Outputs: map[string]string{
		"nvidia-smi -x -q":            testSMIXML,
		"nvidia-smi -q":               "Product Name : Test GPU\n",
		"nvidia-settings --query all": testSettings,
	}}
}

func runProbe(t *testing.T, runner command.Runner, args ...string) error {
	t.Helper()
	cmd := newRootCmd(collector.WithRunner(runner))
	return cmd.Run(context.Background(), append([]string{name}, args...))
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRootCmd_WritesDocumentToPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, runProbe(t, testRunner(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpu": {
		"model": "Test GPU",
		"cuda": {"enabled": true, "cores": 2560, "version": "12.4"},
		"clocks": {"graphics.mhz": 1000, "memory.mhz": 1000, "sm.mhz": 1000, "video.mhz": 1000},
		"memory": {"bandwidth.gib": 256, "total.gib": 8}
	}}`, string(data))
}

func TestRootCmd_FallbackDocument(t *testing.T) {
	runner := testRunner()
	runner.Outputs["nvidia-settings --query all"] = "Attribute 'GPUMemoryInterface' (host:0[gpu:0]): 256.\n"

	out := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, runProbe(t, runner, out))

	doc := readJSON(t, out)
	assert.NotContains(t, doc, "gpu")
	assert.Equal(t, "Product Name : Test GPU\n", doc["smi_text"])
	assert.Equal(t, testSMIXML, doc["smi_xml"])
	assert.Contains(t, doc, "settings_out")
}

func TestRootCmd_ErrorDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, runProbe(t, &command.Fake{}, out))

	doc := readJSON(t, out)
	assert.Len(t, doc, 2)
	assert.Contains(t, doc["err_main"], "nvidia-smi")
	assert.Contains(t, doc["err_debug"], "nvidia-settings")
}

func TestRootCmd_ToolPathFlags(t *testing.T) {
	runner := &command.Fake{Outputs: map[string]string{
		"/opt/bin/nvidia-smi -x -q":            testSMIXML,
		"/opt/bin/nvidia-settings --query all": testSettings,
	}}

	out := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, runProbe(t, runner,
		"--smi-path", "/opt/bin/nvidia-smi",
		"--settings-path", "/opt/bin/nvidia-settings",
		out))

	assert.Contains(t, readJSON(t, out), "gpu")
}

func TestRootCmd_FormatFromEnv(t *testing.T) {
	t.Setenv("GPUPROBE_FORMAT", "yaml")

	out := filepath.Join(t.TempDir(), "probe.yaml")
	require.NoError(t, runProbe(t, testRunner(), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "Test GPU", doc["gpu"]["model"])
}

func TestRootCmd_IncludeHost(t *testing.T) {
	out := filepath.Join(t.TempDir(), "probe.json")
	err := runProbe(t, testRunner(), "--include-host", out)
	if err != nil {
		t.Skipf("host info not available: %v", err)
	}

	doc := readJSON(t, out)
	assert.Contains(t, doc, "gpu")
	assert.Contains(t, doc, "cpu.num")
	assert.Contains(t, doc, "mem.total")
}

func TestRootCmd_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "gpuprobe.prom")

	require.NoError(t, runProbe(t, testRunner(), "--metrics-file", metrics, filepath.Join(dir, "probe.json")))

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gpuprobe_gpu_collect_total")
	assert.Contains(t, string(data), "gpuprobe_snapshot_total")
}

func TestRootCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many paths", []string{"a.json", "b.json"}},
		{"unknown format", []string{"--format", "xml"}},
		{"unwritable path", []string{"/nonexistent/dir/probe.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testRunner()
			assert.Error(t, runProbe(t, runner, tt.args...))
			assert.Empty(t, runner.Calls(), "no tool runs on invalid input")
		})
	}
}

func TestRootCmd_TimeoutDisabled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, runProbe(t, testRunner(), "--timeout", "0s", out))
	assert.Contains(t, readJSON(t, out), "gpu")
}
