package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesJSONArray(t *testing.T) {
	output := filepath.Join(t.TempDir(), "scan_results.json")
	results := []ScanResult{
		newOpenResult("10.0.0.1", 80, "HTTP/1.1 200 OK"),
		newClosedResult("10.0.0.1", 81),
	}

	require.NoError(t, NewSaver(output).Save(results))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]interface{}{
		"ip":      "10.0.0.1",
		"port":    float64(80),
		"service": "HTTP (HyperText Transfer Protocol)",
		"banner":  "HTTP/1.1 200 OK",
	}, decoded[0])
	assert.Equal(t, map[string]interface{}{
		"ip":      "10.0.0.1",
		"port":    float64(81),
		"service": "Closed",
		"banner":  nil,
	}, decoded[1])

	// 四个空格缩进
	assert.True(t, strings.HasPrefix(string(data), "[\n    {\n        \"ip\""))
}

func TestSaveEmptyResults(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, NewSaver(output).Save(nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "nested", "out.json")
	saver := NewSaver(output)

	require.NoError(t, saver.Save([]ScanResult{newClosedResult("a", 1), newClosedResult("a", 2)}))
	require.NoError(t, saver.Save([]ScanResult{newClosedResult("b", 3)}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var decoded []ScanResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []ScanResult{newClosedResult("b", 3)}, decoded)

	// 不留下临时文件
	entries, err := os.ReadDir(filepath.Dir(output))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveFailureKeepsDirectoryClean(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.json")
	// 目标是一个非空目录，rename 会失败
	require.NoError(t, os.MkdirAll(filepath.Join(output, "child"), 0o755))

	err := NewSaver(output).Save([]ScanResult{newClosedResult("a", 1)})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.json", entries[0].Name())
}
