package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// GapSampler generates inter-arrival gaps, in instants, between consecutive
// synthetic processes. A gap of 0 means simultaneous arrival.
type GapSampler interface {
	SampleGap(rng *rand.Rand) int
}

// PoissonSampler generates exponentially-distributed gaps (CV=1).
type PoissonSampler struct {
	meanGap float64
}

func (s *PoissonSampler) SampleGap(rng *rand.Rand) int {
	return roundGap(rng.ExpFloat64() * s.meanGap)
}

// GammaSampler generates Gamma-distributed gaps.
// CV > 1 produces bursty arrivals: many simultaneous arrivals separated by
// long idle stretches.
type GammaSampler struct {
	shape float64 // 1/CV² (alpha parameter)
	scale float64 // meanGap * CV² (beta parameter)
}

func (s *GammaSampler) SampleGap(rng *rand.Rand) int {
	return roundGap(gammaRand(rng, s.shape, s.scale))
}

// gammaRand samples from Gamma(shape, scale) using Marsaglia-Tsang's method.
// For shape >= 1: direct method.
// For shape < 1: Gamma(shape) = Gamma(shape+1) * U^(1/shape).
func gammaRand(rng *rand.Rand, shape, scale float64) float64 {
	if shape < 1.0 {
		u := rng.Float64()
		return gammaRand(rng, shape+1.0, scale) * math.Pow(u, 1.0/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)

	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1.0 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()

		// Squeeze test
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// WeibullSampler generates Weibull-distributed gaps.
type WeibullSampler struct {
	shape float64 // Weibull k parameter
	scale float64 // Weibull λ parameter, in instants
}

func (s *WeibullSampler) SampleGap(rng *rand.Rand) int {
	// Inverse CDF: scale * (-ln(U))^(1/shape)
	u := rng.Float64()
	if u == 0 {
		u = math.SmallestNonzeroFloat64 // prevent -ln(0) = +Inf
	}
	return roundGap(s.scale * math.Pow(-math.Log(u), 1.0/s.shape))
}

// ConstantGapSampler spaces arrivals evenly.
type ConstantGapSampler struct {
	gap int
}

func (s *ConstantGapSampler) SampleGap(_ *rand.Rand) int {
	return s.gap
}

// roundGap converts a sampled gap to whole instants, guarding against
// negative, infinite or NaN samples.
func roundGap(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(v))
}

// validArrivalProcesses lists accepted ArrivalSpec.Process values.
var validArrivalProcesses = map[string]bool{
	"poisson": true, "gamma": true, "weibull": true, "constant": true,
}

// NewGapSampler creates a GapSampler from a spec.
func NewGapSampler(spec ArrivalSpec) (GapSampler, error) {
	if !validArrivalProcesses[spec.Process] {
		return nil, fmt.Errorf("unknown arrival process %q; valid: poisson, gamma, weibull, constant", spec.Process)
	}
	if spec.MeanGap < 0 || math.IsNaN(spec.MeanGap) || math.IsInf(spec.MeanGap, 0) {
		return nil, fmt.Errorf("mean_gap must be a finite non-negative number, got %v", spec.MeanGap)
	}
	cv := 1.0
	if spec.CV != nil {
		cv = *spec.CV
	}
	if cv <= 0 {
		return nil, fmt.Errorf("cv must be positive, got %v", cv)
	}

	switch spec.Process {
	case "constant":
		return &ConstantGapSampler{gap: roundGap(spec.MeanGap)}, nil

	case "gamma":
		// shape = 1/CV², scale = mean * CV²
		shape := 1.0 / (cv * cv)
		if shape < 0.01 {
			logrus.Warnf("Gamma shape %.4f (CV=%.1f) is very small; falling back to Poisson", shape, cv)
			return &PoissonSampler{meanGap: spec.MeanGap}, nil
		}
		return &GammaSampler{shape: shape, scale: spec.MeanGap * cv * cv}, nil

	case "weibull":
		k := weibullShapeFromCV(cv)
		// scale = mean / Γ(1 + 1/k)
		return &WeibullSampler{shape: k, scale: spec.MeanGap / math.Gamma(1.0+1.0/k)}, nil

	default:
		return &PoissonSampler{meanGap: spec.MeanGap}, nil
	}
}

// weibullShapeFromCV finds Weibull shape parameter k such that
// CV² = Γ(1+2/k)/Γ(1+1/k)² - 1, using bisection.
// Range: k ∈ [0.1, 100], tolerance: |CV_computed - CV_target| < 0.001.
func weibullShapeFromCV(targetCV float64) float64 {
	lo, hi := 0.1, 100.0
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2.0
		cv := weibullCV(mid)
		if math.Abs(cv-targetCV) < 0.001 {
			return mid
		}
		// CV is monotonically decreasing in k
		if cv > targetCV {
			lo = mid
		} else {
			hi = mid
		}
	}
	logrus.Warnf("weibullShapeFromCV: bisection did not converge for CV=%.3f after 100 iterations; using k=%.3f", targetCV, (lo+hi)/2.0)
	return (lo + hi) / 2.0
}

// weibullCV computes the coefficient of variation for Weibull(k).
func weibullCV(k float64) float64 {
	g1 := math.Gamma(1.0 + 1.0/k)
	g2 := math.Gamma(1.0 + 2.0/k)
	return math.Sqrt(g2/(g1*g1) - 1.0)
}
