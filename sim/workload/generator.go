package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sched-sim/sim"
)

// GeneratorSpec describes a synthetic workload: how many processes, how
// their arrivals are spaced, and how service demand and base priority are
// drawn. Generation is deterministic for a given Seed.
type GeneratorSpec struct {
	Seed       int64           `yaml:"seed"`
	Count      int             `yaml:"count"`
	Operation  string          `yaml:"operation"`
	Horizon    int             `yaml:"horizon"`
	Algorithms []AlgorithmSpec `yaml:"algorithms"`
	Arrival    ArrivalSpec     `yaml:"arrival"`
	Service    DistSpec        `yaml:"service"`
	Priority   *DistSpec       `yaml:"priority,omitempty"` // nil = all zero
}

// ArrivalSpec configures the inter-arrival gap process.
type ArrivalSpec struct {
	Process string   `yaml:"process"`  // poisson, gamma, weibull, constant
	MeanGap float64  `yaml:"mean_gap"` // mean instants between arrivals
	CV      *float64 `yaml:"cv,omitempty"`
}

// DistSpec parameterizes an integer distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// LoadGeneratorSpec reads and parses a YAML generator spec with strict field checking.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec %s: %w", path, err)
	}
	return &spec, nil
}

// Generate draws a WorkloadSpec from g. The first process arrives at
// instant 0; service demands are clamped to at least 1. Processes are named
// P1, P2, ... in arrival order. The result is validated.
func Generate(g *GeneratorSpec) (*WorkloadSpec, error) {
	if g.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", g.Count)
	}
	gaps, err := NewGapSampler(g.Arrival)
	if err != nil {
		return nil, fmt.Errorf("arrival: %w", err)
	}
	service, err := NewValueSampler(g.Service)
	if err != nil {
		return nil, fmt.Errorf("service distribution: %w", err)
	}
	var priority ValueSampler = &ConstantSampler{}
	if g.Priority != nil {
		if priority, err = NewValueSampler(*g.Priority); err != nil {
			return nil, fmt.Errorf("priority distribution: %w", err)
		}
	}

	rng := sim.NewPartitionedRNG(sim.NewGenerationKey(g.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrivals)
	serviceRNG := rng.ForSubsystem(sim.SubsystemService)
	priorityRNG := rng.ForSubsystem(sim.SubsystemPriority)

	spec := &WorkloadSpec{
		Version:    SpecVersion,
		Operation:  g.Operation,
		Horizon:    g.Horizon,
		Algorithms: append([]AlgorithmSpec(nil), g.Algorithms...),
		Processes:  make([]ProcessSpec, g.Count),
	}
	arrival := 0
	for i := range spec.Processes {
		if i > 0 {
			arrival += gaps.SampleGap(arrivalRNG)
		}
		s := service.Sample(serviceRNG)
		if s < 1 {
			s = 1
		}
		spec.Processes[i] = ProcessSpec{
			Name:     fmt.Sprintf("P%d", i+1),
			Arrival:  arrival,
			Service:  s,
			Priority: priority.Sample(priorityRNG),
		}
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("generated spec is invalid: %w", err)
	}
	return spec, nil
}
