package sim

import (
	"fmt"
	"strings"
)

// Algorithm is one of the eight supported scheduling disciplines.
// Each variant carries its own parameters and owns its simulator; Simulate
// builds all of its state fresh and never touches the workload.
type Algorithm interface {
	Name() string
	Simulate(w *Workload) *RunResult
}

// FCFS runs processes to completion in arrival order.
type FCFS struct{}

// RoundRobin preempts the running process after Quantum instants.
type RoundRobin struct {
	Quantum int
}

// SPN (shortest process next) dispatches the shortest ready burst, non-preemptively.
type SPN struct{}

// SRT (shortest remaining time) re-evaluates remaining service every instant.
type SRT struct{}

// HRRN dispatches the highest (wait+service)/service ratio, non-preemptively.
type HRRN struct{}

// FB1 is feedback scheduling with a quantum of one instant at every level.
type FB1 struct{}

// FB2i is feedback scheduling where level L is granted 2^L instants.
type FB2i struct{}

// Aging dispatches by dynamic priority for up to Quantum instants; waiting
// processes gain one priority point per instant.
type Aging struct {
	Quantum int
}

func (FCFS) Name() string         { return "FCFS" }
func (a RoundRobin) Name() string { return fmt.Sprintf("RR-%d", a.Quantum) }
func (SPN) Name() string          { return "SPN" }
func (SRT) Name() string          { return "SRT" }
func (HRRN) Name() string         { return "HRRN" }
func (FB1) Name() string          { return "FB-1" }
func (FB2i) Name() string         { return "FB-2i" }
func (a Aging) Name() string      { return fmt.Sprintf("Aging-%d", a.Quantum) }

// algorithmAliases maps every accepted identifier (lower-cased) to its
// canonical name. Numeric ids are the legacy input format.
var algorithmAliases = map[string]string{
	"1": "fcfs", "fcfs": "fcfs",
	"2": "rr", "rr": "rr",
	"3": "spn", "spn": "spn",
	"4": "srt", "srt": "srt",
	"5": "hrrn", "hrrn": "hrrn",
	"6": "fb1", "fb1": "fb1", "fb-1": "fb1",
	"7": "fb2i", "fb2i": "fb2i", "fb-2i": "fb2i",
	"8": "aging", "aging": "aging",
}

// quantumAlgorithms is the set of canonical names that require a quantum.
var quantumAlgorithms = map[string]bool{"rr": true, "aging": true}

// IsValidAlgorithm returns true if id names a supported algorithm.
func IsValidAlgorithm(id string) bool {
	_, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// RequiresQuantum returns true if id names an algorithm that needs a quantum.
func RequiresQuantum(id string) bool {
	return quantumAlgorithms[algorithmAliases[strings.ToLower(strings.TrimSpace(id))]]
}

// ParseAlgorithm resolves an identifier into an Algorithm.
// Unknown identifiers wrap ErrUnknownAlgorithm; a missing or non-positive
// quantum for RR or Aging wraps ErrInvalidWorkload. The quantum is ignored
// by algorithms that do not use it.
func ParseAlgorithm(id string, quantum int) (Algorithm, error) {
	name, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, id)
	}
	if quantumAlgorithms[name] && quantum <= 0 {
		return nil, fmt.Errorf("%w: %s requires a positive quantum, got %d", ErrInvalidWorkload, name, quantum)
	}
	switch name {
	case "fcfs":
		return FCFS{}, nil
	case "rr":
		return RoundRobin{Quantum: quantum}, nil
	case "spn":
		return SPN{}, nil
	case "srt":
		return SRT{}, nil
	case "hrrn":
		return HRRN{}, nil
	case "fb1":
		return FB1{}, nil
	case "fb2i":
		return FB2i{}, nil
	case "aging":
		return Aging{Quantum: quantum}, nil
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", name))
	}
}
