package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sched-sim/sim"
)

func twoProcessWorkload(t *testing.T, op sim.Operation, horizon int) *sim.Workload {
	t.Helper()
	w, err := sim.NewWorkload(
		[]sim.Process{{Name: "A", Arrival: 0, Service: 3}, {Name: "B", Arrival: 1, Service: 2}},
		horizon, op, []sim.AlgorithmRequest{{ID: "fcfs"}},
	)
	require.NoError(t, err)
	return w
}

func TestWriteTimeline_FCFS_MatchesHandTracedGrid(t *testing.T) {
	// GIVEN FCFS on A(0,3) B(1,2) with horizon 10
	res := sim.FCFS{}.Simulate(twoProcessWorkload(t, sim.OperationTrace, 10))

	// WHEN the timeline is rendered
	var buf bytes.Buffer
	require.NoError(t, WriteTimeline(&buf, res))

	// THEN header, rule and rows line up on instant columns
	want := strings.Join([]string{
		"FCFS 0 1 2 3 4 5 6 7 8 9",
		"-------------------------",
		"A   |*|*|*| | | | | | | |",
		"B   | |.|.|*|*| | | | | |",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteStats_CompletedRun_ShowsMetricsAndMeans(t *testing.T) {
	res := sim.FCFS{}.Simulate(twoProcessWorkload(t, sim.OperationStats, 10))

	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "== FCFS ==")
	assert.Contains(t, out, "Process")
	assert.Contains(t, out, "Mean")
	assert.Contains(t, out, "Turnaround")
	assert.Contains(t, out, "2.00") // B normalized turnaround
	assert.Contains(t, out, "3.50") // mean turnaround (3+4)/2
	assert.Contains(t, out, "1.50") // mean normalized turnaround (1+2)/2
	assert.NotContains(t, out, "| -")
}

func TestWriteStats_IncompleteProcess_ShowsDash(t *testing.T) {
	// GIVEN a horizon too short for B to finish
	res := sim.FCFS{}.Simulate(twoProcessWorkload(t, sim.OperationStats, 4))

	var buf bytes.Buffer
	require.NoError(t, WriteStats(&buf, res))

	// THEN B's metrics are rendered as "-"
	assert.Contains(t, buf.String(), "| -")
	assert.Equal(t, 1, res.Completed())
}

func TestWriter_Report_TraceWithSummary(t *testing.T) {
	res := sim.FCFS{}.Simulate(twoProcessWorkload(t, sim.OperationTrace, 10))

	var buf bytes.Buffer
	rw := NewWriter(&buf, sim.OperationTrace, true)
	require.NoError(t, rw.Report(res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "FCFS 0 1 2"), out)
	assert.Contains(t, out, "Completed        : 2/2")
	assert.Contains(t, out, "Context switches : 1")
	assert.Contains(t, out, "Idle instants    : 5")
	assert.Contains(t, out, "Utilization      : 50.0%")
}

func TestWriter_Skip_NamesRequest(t *testing.T) {
	var buf bytes.Buffer
	rw := NewWriter(&buf, sim.OperationStats, false)
	require.NoError(t, rw.Skip(sim.AlgorithmRequest{ID: "9", Quantum: 2}, errors.New("unknown algorithm \"9\"")))
	assert.Equal(t, "== 9-2 ==\nskipped: unknown algorithm \"9\"\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_Report_PropagatesWriteError(t *testing.T) {
	res := sim.FCFS{}.Simulate(twoProcessWorkload(t, sim.OperationStats, 10))
	err := NewWriter(failingWriter{}, sim.OperationStats, false).Report(res)
	assert.EqualError(t, err, "disk full")
}
