// Package testutil provides shared test infrastructure for the scheduling
// simulator: the golden dataset and assertion helpers used across sim/ and
// its sub-package tests.
package testutil

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/goldendataset.yaml.
type GoldenDataset struct {
	Horizon   int              `yaml:"horizon"`
	Processes []GoldenProcess  `yaml:"processes"`
	Tests     []GoldenTestCase `yaml:"tests"`
}

// GoldenProcess is one process of the shared golden workload.
type GoldenProcess struct {
	Name     string `yaml:"name"`
	Arrival  int    `yaml:"arrival"`
	Service  int    `yaml:"service"`
	Priority int    `yaml:"priority"`
}

// GoldenTestCase is the expected outcome of one algorithm on the golden workload.
type GoldenTestCase struct {
	Algorithm                string  `yaml:"algorithm"`
	Quantum                  int     `yaml:"quantum"`
	Name                     string  `yaml:"name"`
	Finish                   []int   `yaml:"finish"`
	MeanNormalizedTurnaround float64 `yaml:"mean_normalized_turnaround"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
