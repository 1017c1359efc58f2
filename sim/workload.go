package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkload is returned (wrapped) when a workload or one of its
// algorithm requests fails validation. Construction is all-or-nothing.
var ErrInvalidWorkload = errors.New("invalid workload")

// ErrUnknownAlgorithm is returned (wrapped) for algorithm identifiers outside
// the supported set. The orchestrator skips such requests instead of aborting.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Operation selects what the reporter emits for each run.
type Operation string

const (
	// OperationTrace emits the per-instant occupancy grid.
	OperationTrace Operation = "trace"
	// OperationStats emits finish/turnaround/normalized turnaround per process.
	OperationStats Operation = "stats"
)

// validOperations maps accepted operation strings.
var validOperations = map[Operation]bool{
	OperationTrace: true,
	OperationStats: true,
}

// IsValidOperation returns true if op is "trace" or "stats".
func IsValidOperation(op string) bool {
	return validOperations[Operation(op)]
}

// Process is one schedulable unit. Fields are set once at workload
// construction and never mutated by simulators.
type Process struct {
	Name     string // display label; duplicates are permitted
	Arrival  int    // first instant the process is runnable (>= 0)
	Service  int    // total CPU instants required (> 0)
	Priority int    // base priority, only read by Aging
}

// AlgorithmRequest is an unresolved algorithm identifier plus its optional
// quantum, as handed over by an input parser.
type AlgorithmRequest struct {
	ID      string
	Quantum int // 0 = not given
}

func (r AlgorithmRequest) String() string {
	if r.Quantum > 0 {
		return fmt.Sprintf("%s-%d", r.ID, r.Quantum)
	}
	return r.ID
}

// Workload is the validated, read-only input shared by every simulator.
// Processes are sorted ascending by Arrival; simulators admit them by
// advancing an index into this slice and never re-scan for arrivals.
type Workload struct {
	Processes   []Process
	LastInstant int // simulated instants are 0 .. LastInstant-1
	Operation   Operation
	Algorithms  []AlgorithmRequest
}

// NewWorkload validates its arguments and returns a Workload that owns a copy
// of procs and reqs. Errors wrap ErrInvalidWorkload.
//
// Unknown algorithm identifiers are not rejected here: they are carried
// through so the orchestrator can report them individually. Known
// quantum-based algorithms without a positive quantum are rejected.
func NewWorkload(procs []Process, lastInstant int, op Operation, reqs []AlgorithmRequest) (*Workload, error) {
	if lastInstant <= 0 {
		return nil, fmt.Errorf("%w: last instant must be positive, got %d", ErrInvalidWorkload, lastInstant)
	}
	if !validOperations[op] {
		return nil, fmt.Errorf("%w: operation must be %q or %q, got %q", ErrInvalidWorkload, OperationTrace, OperationStats, op)
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("%w: at least one process required", ErrInvalidWorkload)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: at least one algorithm required", ErrInvalidWorkload)
	}
	for i, p := range procs {
		if p.Arrival < 0 {
			return nil, fmt.Errorf("%w: process[%d] %q: arrival must be non-negative, got %d", ErrInvalidWorkload, i, p.Name, p.Arrival)
		}
		if p.Service <= 0 {
			return nil, fmt.Errorf("%w: process[%d] %q: service must be positive, got %d", ErrInvalidWorkload, i, p.Name, p.Service)
		}
		if i > 0 && p.Arrival < procs[i-1].Arrival {
			return nil, fmt.Errorf("%w: process[%d] %q arrives at %d, before process[%d] %q at %d; processes must be sorted by arrival",
				ErrInvalidWorkload, i, p.Name, p.Arrival, i-1, procs[i-1].Name, procs[i-1].Arrival)
		}
	}
	for i, r := range reqs {
		if _, err := ParseAlgorithm(r.ID, r.Quantum); err != nil && !errors.Is(err, ErrUnknownAlgorithm) {
			return nil, fmt.Errorf("algorithm[%d]: %w", i, err)
		}
	}
	return &Workload{
		Processes:   append([]Process(nil), procs...),
		LastInstant: lastInstant,
		Operation:   op,
		Algorithms:  append([]AlgorithmRequest(nil), reqs...),
	}, nil
}

// ProcessCount returns the number of processes in the workload.
func (w *Workload) ProcessCount() int {
	return len(w.Processes)
}
