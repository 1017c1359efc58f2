package workload

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sched-sim/sim"
)

// SpecVersion is written by converters and accepted (or empty) on load.
const SpecVersion = "1"

// WorkloadSpec is the YAML form of a workload.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Version    string          `yaml:"version,omitempty"`
	Operation  string          `yaml:"operation"`
	Horizon    int             `yaml:"horizon"`
	Algorithms []AlgorithmSpec `yaml:"algorithms"`
	Processes  []ProcessSpec   `yaml:"processes"`
}

// AlgorithmSpec requests one simulation run.
type AlgorithmSpec struct {
	ID      string `yaml:"id"`
	Quantum int    `yaml:"quantum,omitempty"` // required for rr and aging
}

// ProcessSpec describes one process.
type ProcessSpec struct {
	Name     string `yaml:"name"`
	Arrival  int    `yaml:"arrival"`
	Service  int    `yaml:"service"`
	Priority int    `yaml:"priority,omitempty"`
}

var validVersions = map[string]bool{"": true, SpecVersion: true}

// LoadWorkloadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec, err := ParseWorkloadSpec(data)
	if err != nil {
		return nil, fmt.Errorf("parsing workload spec %s: %w", path, err)
	}
	return spec, nil
}

// ParseWorkloadSpec decodes a YAML workload specification with strict field checking.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
// Unknown algorithm identifiers are accepted with a warning: they are
// reported as skipped when the workload runs.
func (s *WorkloadSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported version %q; valid: %q or empty", s.Version, SpecVersion)
	}
	if !sim.IsValidOperation(s.Operation) {
		return fmt.Errorf("unknown operation %q; valid: trace, stats", s.Operation)
	}
	if s.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", s.Horizon)
	}
	if len(s.Algorithms) == 0 {
		return fmt.Errorf("at least one algorithm required")
	}
	for i, a := range s.Algorithms {
		if err := validateAlgorithm(&a, i); err != nil {
			return err
		}
	}
	if len(s.Processes) == 0 {
		return fmt.Errorf("at least one process required")
	}
	for i, p := range s.Processes {
		if err := validateProcess(&p, i); err != nil {
			return err
		}
	}
	return nil
}

func validateAlgorithm(a *AlgorithmSpec, idx int) error {
	prefix := fmt.Sprintf("algorithm[%d]", idx)
	if a.ID == "" {
		return fmt.Errorf("%s: id must not be empty", prefix)
	}
	if a.Quantum < 0 {
		return fmt.Errorf("%s: quantum must be non-negative, got %d", prefix, a.Quantum)
	}
	if !sim.IsValidAlgorithm(a.ID) {
		logrus.Warnf("%s: unknown algorithm %q will be skipped", prefix, a.ID)
		return nil
	}
	if sim.RequiresQuantum(a.ID) && a.Quantum == 0 {
		return fmt.Errorf("%s: %s requires a positive quantum", prefix, a.ID)
	}
	if !sim.RequiresQuantum(a.ID) && a.Quantum != 0 {
		logrus.Warnf("%s: quantum %d ignored by %s", prefix, a.Quantum, a.ID)
	}
	return nil
}

func validateProcess(p *ProcessSpec, idx int) error {
	prefix := fmt.Sprintf("process[%d]", idx)
	if p.Name == "" {
		return fmt.Errorf("%s: name must not be empty", prefix)
	}
	if p.Arrival < 0 {
		return fmt.Errorf("%s %q: arrival must be non-negative, got %d", prefix, p.Name, p.Arrival)
	}
	if p.Service <= 0 {
		return fmt.Errorf("%s %q: service must be positive, got %d", prefix, p.Name, p.Service)
	}
	return nil
}

// Build validates the spec and constructs the engine workload.
// Processes are stable-sorted by arrival, so equal arrivals keep their
// listed order.
func (s *WorkloadSpec) Build() (*sim.Workload, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	procs := make([]sim.Process, len(s.Processes))
	for i, p := range s.Processes {
		procs[i] = sim.Process{Name: p.Name, Arrival: p.Arrival, Service: p.Service, Priority: p.Priority}
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})
	reqs := make([]sim.AlgorithmRequest, len(s.Algorithms))
	for i, a := range s.Algorithms {
		reqs[i] = sim.AlgorithmRequest{ID: a.ID, Quantum: a.Quantum}
	}
	return sim.NewWorkload(procs, s.Horizon, sim.Operation(s.Operation), reqs)
}
