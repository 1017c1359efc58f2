package workload

import (
	"fmt"
	"sort"
	"strings"
)

// ComposeSpecs merges multiple WorkloadSpecs into one.
// Processes are concatenated and stable-sorted by arrival; algorithm
// requests are concatenated with exact duplicates (same id, case-insensitive,
// and quantum) dropped. The horizon is the largest of the inputs. All specs
// must agree on the operation. Each input is validated first.
func ComposeSpecs(specs []*WorkloadSpec) (*WorkloadSpec, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no specs to compose")
	}
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("spec[%d]: %w", i, err)
		}
	}

	merged := &WorkloadSpec{
		Version:   SpecVersion,
		Operation: specs[0].Operation,
	}
	seen := make(map[AlgorithmSpec]bool)
	for i, s := range specs {
		if s.Operation != merged.Operation {
			return nil, fmt.Errorf("spec[%d]: operation %q conflicts with %q", i, s.Operation, merged.Operation)
		}
		if s.Horizon > merged.Horizon {
			merged.Horizon = s.Horizon
		}
		for _, a := range s.Algorithms {
			key := AlgorithmSpec{ID: strings.ToLower(a.ID), Quantum: a.Quantum}
			if seen[key] {
				continue
			}
			seen[key] = true
			merged.Algorithms = append(merged.Algorithms, a)
		}
		merged.Processes = append(merged.Processes, s.Processes...)
	}
	sort.SliceStable(merged.Processes, func(i, j int) bool {
		return merged.Processes[i].Arrival < merged.Processes[j].Arrival
	})
	return merged, nil
}
