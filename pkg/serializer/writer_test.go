package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/gpu-probe/pkg/errors"
)

type testClocks struct {
	Graphics uint64 `json:"graphics.mhz" yaml:"graphics.mhz"`
	SM       uint64 `json:"sm.mhz" yaml:"sm.mhz"`
}

type testRecord struct {
	Model    string     `json:"model" yaml:"model"`
	Clocks   testClocks `json:"clocks" yaml:"clocks"`
	BusWidth uint64     `json:"-" yaml:"-"`
}

func testDocument() map[string]any {
	return map[string]any{
		"gpu": &testRecord{
			Model:    "Test GPU",
			Clocks:   testClocks{Graphics: 1000, SM: 1500},
			BusWidth: 256,
		},
	}
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	err := writer.Serialize(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	assert.JSONEq(t, `{"gpu": {"model": "Test GPU", "clocks": {"graphics.mhz": 1000, "sm.mhz": 1500}}}`, buf.String())
	// indented like the rest of the tooling output
	assert.Contains(t, buf.String(), "\n  \"gpu\": {")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	err := writer.Serialize(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result map[string]testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	assert.Equal(t, "Test GPU", result["gpu"].Model)
	assert.Equal(t, uint64(1500), result["gpu"].Clocks.SM)
	assert.NotContains(t, buf.String(), "busWidth")
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), testDocument())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	assert.Contains(t, output, "FIELD")
	assert.Contains(t, output, "VALUE")
	assert.Contains(t, output, "gpu.model")
	assert.Contains(t, output, "gpu.clocks.sm.mhz")
	assert.NotContains(t, output, "BusWidth")

	// keys are sorted
	assert.Less(t, strings.Index(output, "gpu.clocks.graphics.mhz"), strings.Index(output, "gpu.model"))
}

func TestWriter_SerializeTable_MultilineValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), map[string]any{
		"smi_text": "==NVSMI LOG==\nProduct Name : Test GPU\n",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], `"==NVSMI LOG==\nProduct Name : Test GPU\n"`)
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	err := writer.Serialize(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("Serialize empty map failed: %v", err)
	}

	if !strings.Contains(buf.String(), "<empty>") {
		t.Errorf("Expected '<empty>' in output for empty data, got: %s", buf.String())
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type dataWithNil struct {
		Name  string
		Value *int
	}

	err := writer.Serialize(context.Background(), dataWithNil{Name: "test"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Name")
	assert.Contains(t, buf.String(), "<nil>")
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), 42))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "42")
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("invalid"), &buf)

	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}

	// Should default to JSON format
	err := writer.Serialize(context.Background(), map[string]string{"err_main": "boom"})
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
}

func TestWriter_Close(t *testing.T) {
	// Test closing stdout writer (should be safe)
	writer := NewStdoutWriter(FormatJSON)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}

	// Test closing multiple times (should be safe)
	if err := writer.Close(); err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "\t", "\n"} {
		writer, err := NewFileWriterOrStdout(FormatJSON, path)
		require.NoError(t, err)
		require.NotNil(t, writer)
		assert.Nil(t, writer.closer, "blank path %q should write to stdout", path)
		assert.NoError(t, writer.Close())
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "probe.json")

	writer, err := NewFileWriterOrStdout(FormatJSON, tmpFile)
	require.NoError(t, err)

	require.NoError(t, writer.Serialize(context.Background(), testDocument()))
	require.NoError(t, writer.Close())
	// second close is a no-op
	require.NoError(t, writer.Close())

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var result map[string]map[string]any
	require.NoError(t, json.Unmarshal(content, &result))
	assert.Equal(t, "Test GPU", result["gpu"]["model"])
}

func TestNewFileWriterOrStdout_Truncates(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "probe.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(strings.Repeat("x", 4096)), 0o600))

	writer, err := NewFileWriterOrStdout(FormatJSON, tmpFile)
	require.NoError(t, err)
	require.NoError(t, writer.Serialize(context.Background(), map[string]string{"a": "b"}))
	require.NoError(t, writer.Close())

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "x")
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	writer, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json")
	require.Error(t, err)
	assert.Nil(t, writer)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "yaml", "table"}, SupportedFormats())
}
