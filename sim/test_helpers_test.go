package sim

import (
	"strings"
	"testing"
)

// mustWorkload builds a trace workload requesting FCFS, failing the test on error.
func mustWorkload(t *testing.T, horizon int, procs ...Process) *Workload {
	t.Helper()
	w, err := NewWorkload(procs, horizon, OperationTrace, []AlgorithmRequest{{ID: "fcfs"}})
	if err != nil {
		t.Fatalf("NewWorkload: %v", err)
	}
	return w
}

func proc(name string, arrival, service int) Process {
	return Process{Name: name, Arrival: arrival, Service: service}
}

// columns renders the occupancy grid one string per process, one character
// per instant.
func columns(r *RunResult) []string {
	cols := make([]string, len(r.Workload.Processes))
	for i := range cols {
		var sb strings.Builder
		for t := range r.Occupancy {
			sb.WriteByte(byte(r.Occupancy[t][i]))
		}
		cols[i] = sb.String()
	}
	return cols
}

// finishTimes returns each process's finish time, or -1 if it did not complete.
func finishTimes(r *RunResult) []int {
	out := make([]int, len(r.Metrics))
	for i, m := range r.Metrics {
		out[i] = -1
		if m.Completed {
			out[i] = m.FinishTime
		}
	}
	return out
}

// allAlgorithms returns one instance of every discipline, quantum-based ones at q.
func allAlgorithms(q int) []Algorithm {
	return []Algorithm{
		FCFS{}, RoundRobin{Quantum: q}, SPN{}, SRT{}, HRRN{}, FB1{}, FB2i{}, Aging{Quantum: q},
	}
}
