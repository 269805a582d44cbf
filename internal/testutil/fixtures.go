// Package testutil provides shared test infrastructure for the bpviz packages:
// paths to the bundled sample data and helpers for writing throwaway result files.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// SampleTrace is a trace name present in sample_data/results.json with every field populated.
const SampleTrace = "SHORT_MOBILE-1"

// SparseTrace is a trace in sample_data/results.json without bimodal accesses,
// useful entries or statistical-corrector counters.
const SparseTrace = "LONG_SERVER-3"

// SampleDataPath returns the path of sample_data/results.json.
// The path is resolved relative to this source file: internal/testutil/ → sample_data/.
func SampleDataPath(t *testing.T) string {
	t.Helper()
	return sampleFile(t, "results.json")
}

// SampleConfigPath returns the path of sample_data/predictor.yml.
func SampleConfigPath(t *testing.T) string {
	t.Helper()
	return sampleFile(t, "predictor.yml")
}

func sampleFile(t *testing.T, name string) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "sample_data", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample file %s: %v", name, err)
	}
	return path
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
