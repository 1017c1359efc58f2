package sim

import "fmt"

// Cell is the state of one process at one instant.
type Cell byte

const (
	CellBlank   Cell = ' ' // not arrived, finished, or outside the run
	CellRunning Cell = '*' // the processor executed this process
	CellWaiting Cell = '.' // ready but not running
)

// RunResult is the complete output of one simulator invocation.
// Occupancy is indexed [instant][process]. Running holds, for each instant,
// the index of the dispatched process or -1 when the processor was idle.
type RunResult struct {
	Algorithm string
	Workload  *Workload
	Occupancy [][]Cell
	Running   []int
	Metrics   []ProcessMetrics
}

// Completed returns the number of processes that finished within the horizon.
func (r *RunResult) Completed() int {
	n := 0
	for _, m := range r.Metrics {
		if m.Completed {
			n++
		}
	}
	return n
}

// schedule is the per-run mutable state every simulator builds fresh.
// It records dispatches and completions and enforces the single-processor
// and horizon invariants; a violation is a simulator defect and panics.
type schedule struct {
	w         *Workload
	grid      [][]Cell
	running   []int
	remaining []int
	metrics   []ProcessMetrics
}

func newSchedule(w *Workload) *schedule {
	n := w.ProcessCount()
	s := &schedule{
		w:         w,
		grid:      make([][]Cell, w.LastInstant),
		running:   make([]int, w.LastInstant),
		remaining: make([]int, n),
		metrics:   make([]ProcessMetrics, n),
	}
	for t := range s.grid {
		row := make([]Cell, n)
		for i := range row {
			row[i] = CellBlank
		}
		s.grid[t] = row
		s.running[t] = -1
	}
	for i, p := range w.Processes {
		s.remaining[i] = p.Service
	}
	return s
}

// run marks process idx as executing at instant t and consumes one unit of
// its remaining service. It returns true when that unit was the last one,
// after recording the completion at t+1.
func (s *schedule) run(t, idx int) bool {
	if t < 0 || t >= s.w.LastInstant {
		panic(fmt.Sprintf("run: instant %d outside horizon [0,%d)", t, s.w.LastInstant))
	}
	if s.running[t] != -1 {
		panic(fmt.Sprintf("run: instant %d already assigned to process %d, cannot run %d", t, s.running[t], idx))
	}
	if t < s.w.Processes[idx].Arrival {
		panic(fmt.Sprintf("run: process %d dispatched at %d before its arrival %d", idx, t, s.w.Processes[idx].Arrival))
	}
	if s.remaining[idx] <= 0 {
		panic(fmt.Sprintf("run: process %d has no remaining service at instant %d", idx, t))
	}
	s.running[t] = idx
	s.grid[t][idx] = CellRunning
	s.remaining[idx]--
	if s.remaining[idx] == 0 {
		s.metrics[idx] = deriveMetrics(s.w.Processes[idx], t+1)
		return true
	}
	return false
}

// runBurst runs idx for up to n consecutive instants starting at t, stopping
// early at completion or at the horizon. It returns the instant after the
// last one used and whether the process completed.
func (s *schedule) runBurst(t, idx, n int) (int, bool) {
	for ; n > 0 && t < s.w.LastInstant; n-- {
		done := s.run(t, idx)
		t++
		if done {
			return t, true
		}
	}
	return t, false
}

// result back-fills waiting cells and freezes the run. A process is waiting
// at every instant from its arrival up to its finish (or the horizon, when it
// never finishes) at which it was not running.
func (s *schedule) result(name string) *RunResult {
	for i, p := range s.w.Processes {
		end := s.w.LastInstant
		if s.metrics[i].Completed {
			end = s.metrics[i].FinishTime
		}
		for t := p.Arrival; t < end; t++ {
			if s.grid[t][i] != CellRunning {
				s.grid[t][i] = CellWaiting
			}
		}
	}
	return &RunResult{
		Algorithm: name,
		Workload:  s.w,
		Occupancy: s.grid,
		Running:   s.running,
		Metrics:   s.metrics,
	}
}
