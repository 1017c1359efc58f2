package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ValueSampler draws integer service demands or base priorities.
// Callers clamp the result to the range they accept.
type ValueSampler interface {
	Sample(rng *rand.Rand) int
}

// GaussianSampler produces clamped, rounded Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int(math.Round(clamped))
}

// ExponentialSampler produces exponentially-distributed values.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int {
	val := rng.ExpFloat64() * s.mean
	if val > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(val))
}

// UniformSampler draws uniformly from [min, max].
type UniformSampler struct {
	min, max int
}

func (s *UniformSampler) Sample(rng *rand.Rand) int {
	return s.min + rng.Intn(s.max-s.min+1)
}

// EmpiricalPDFSampler samples from an empirical probability distribution
// using inverse CDF via binary search.
type EmpiricalPDFSampler struct {
	values []int     // Sorted values
	cdf    []float64 // Cumulative probabilities (same length as values)
}

// NewEmpiricalPDFSampler creates a sampler from a PDF map (value → probability).
// Automatically normalizes probabilities if they don't sum to 1.0.
func NewEmpiricalPDFSampler(pdf map[int]float64) *EmpiricalPDFSampler {
	keys := make([]int, 0, len(pdf))
	for k := range pdf {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	totalProb := 0.0
	for _, k := range keys {
		if pdf[k] > 0 {
			totalProb += pdf[k]
		}
	}

	values := make([]int, 0, len(keys))
	cdf := make([]float64, 0, len(keys))
	cumulative := 0.0
	for _, k := range keys {
		p := pdf[k]
		if p <= 0 {
			continue // skip zero or negative probabilities
		}
		cumulative += p / totalProb
		values = append(values, k)
		cdf = append(cdf, cumulative)
	}
	// Ensure last CDF entry is exactly 1.0
	if len(cdf) > 0 {
		cdf[len(cdf)-1] = 1.0
	}

	return &EmpiricalPDFSampler{values: values, cdf: cdf}
}

func (s *EmpiricalPDFSampler) Sample(rng *rand.Rand) int {
	if len(s.values) == 0 {
		return 0
	}
	if len(s.values) == 1 {
		return s.values[0]
	}
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cdf, u)
	if idx >= len(s.values) {
		idx = len(s.values) - 1
	}
	return s.values[idx]
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value int
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int {
	return s.value
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewValueSampler creates a ValueSampler from a DistSpec.
func NewValueSampler(spec DistSpec) (ValueSampler, error) {
	switch spec.Type {
	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		s := &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    int(spec.Params["min"]),
			max:    int(spec.Params["max"]),
		}
		if s.min > s.max {
			return nil, fmt.Errorf("gaussian min %d exceeds max %d", s.min, s.max)
		}
		return s, nil

	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %v", spec.Params["mean"])
		}
		return &ExponentialSampler{mean: spec.Params["mean"]}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		s := &UniformSampler{min: int(spec.Params["min"]), max: int(spec.Params["max"])}
		if s.min > s.max {
			return nil, fmt.Errorf("uniform min %d exceeds max %d", s.min, s.max)
		}
		return s, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: int(spec.Params["value"])}, nil

	case "empirical":
		// Params used as PDF (value → probability)
		pdf := make(map[int]float64, len(spec.Params))
		for k, v := range spec.Params {
			var value int
			if _, err := fmt.Sscanf(k, "%d", &value); err != nil {
				return nil, fmt.Errorf("empirical PDF key %q is not an integer: %w", k, err)
			}
			if v > 0 {
				pdf[value] = v
			}
		}
		if len(pdf) == 0 {
			return nil, fmt.Errorf("empirical distribution has no bins with positive probability")
		}
		return NewEmpiricalPDFSampler(pdf), nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
