package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRunFlags clears every run flag for the duration of the test.
func resetRunFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		legacyInputPath, workloadSpecPath, presetName = "", "", ""
		defaultsFilePath = filepath.Join("..", "defaults.yaml")
		operation, algorithmList, metricsTextfile = "", "", ""
		horizonOverride = 0
		printSummary = false
	}
	reset()
	t.Cleanup(reset)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const legacyTwoProcesses = "trace\n1\n10\n2\nA,0,3\nB,1,2\n"

func TestExecuteRun_LegacyInput_PrintsTimeline(t *testing.T) {
	// GIVEN a legacy input requesting FCFS traces
	resetRunFlags(t)
	legacyInputPath = writeFile(t, "input.txt", legacyTwoProcesses)

	// WHEN the run executes
	var out bytes.Buffer
	require.NoError(t, executeRun(&out))

	// THEN the occupancy grid is printed
	assert.Contains(t, out.String(), "FCFS 0 1 2 3 4 5 6 7 8 9")
	assert.Contains(t, out.String(), "A   |*|*|*| | | | | | | |")
	assert.Contains(t, out.String(), "B   | |.|.|*|*| | | | | |")
}

func TestExecuteRun_Overrides(t *testing.T) {
	// GIVEN the same input with operation, algorithms and horizon overridden
	resetRunFlags(t)
	legacyInputPath = writeFile(t, "input.txt", legacyTwoProcesses)
	operation = "STATS"
	algorithmList = "srt,lottery,rr-2"
	horizonOverride = 4
	printSummary = true

	// WHEN the run executes
	var out bytes.Buffer
	require.NoError(t, executeRun(&out))

	// THEN stats are printed per requested algorithm and the unknown one is skipped
	got := out.String()
	assert.Contains(t, got, "== SRT ==")
	assert.Contains(t, got, "== RR-2 ==")
	assert.Contains(t, got, "== lottery ==\nskipped:")
	assert.Contains(t, got, "| -", "B cannot finish within 4 instants")
	assert.Contains(t, got, "Context switches")
	assert.NotContains(t, got, "FCFS")
}

func TestExecuteRun_WorkloadSpecWithMetricsTextfile(t *testing.T) {
	resetRunFlags(t)
	workloadSpecPath = writeFile(t, "spec.yaml", `
operation: stats
horizon: 10
algorithms:
  - id: hrrn
  - id: aging
    quantum: 2
processes:
  - {name: B, arrival: 1, service: 2}
  - {name: A, arrival: 0, service: 3, priority: 1}
`)
	metricsTextfile = filepath.Join(t.TempDir(), "sched.prom")

	var out bytes.Buffer
	require.NoError(t, executeRun(&out))

	assert.Contains(t, out.String(), "== HRRN ==")
	assert.Contains(t, out.String(), "== Aging-2 ==")
	data, err := os.ReadFile(metricsTextfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `schedsim_runs_total{algorithm="HRRN"} 1`)
	assert.Contains(t, string(data), `schedsim_runs_total{algorithm="Aging-2"} 1`)
}

func TestExecuteRun_Preset(t *testing.T) {
	resetRunFlags(t)
	presetName = "textbook"
	algorithmList = "fcfs"

	var out bytes.Buffer
	require.NoError(t, executeRun(&out))
	assert.Contains(t, out.String(), "== FCFS ==")
	assert.Contains(t, out.String(), "2.56")
}

func TestExecuteRun_InputSelectionErrors(t *testing.T) {
	resetRunFlags(t)
	err := executeRun(&bytes.Buffer{})
	assert.ErrorContains(t, err, "no workload given")

	legacyInputPath = "a.txt"
	presetName = "textbook"
	err = executeRun(&bytes.Buffer{})
	assert.ErrorContains(t, err, "only one of")
}

func TestExecuteRun_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name  string
		apply func()
		want  string
	}{
		{"negative horizon", func() { horizonOverride = -1 }, "--horizon must be positive"},
		{"bad algorithm list", func() { algorithmList = "rr-0" }, "--algorithms: quantum must be positive"},
		{"bad operation", func() { operation = "plot" }, "unknown operation"},
		{"rr without quantum", func() { algorithmList = "rr" }, "requires a positive quantum"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetRunFlags(t)
			legacyInputPath = writeFile(t, "input.txt", legacyTwoProcesses)
			tc.apply()
			assert.ErrorContains(t, executeRun(&bytes.Buffer{}), tc.want)
		})
	}
}
