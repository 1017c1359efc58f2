package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Reporter consumes the outcome of each requested algorithm, in request order.
type Reporter interface {
	// Report receives a completed run.
	Report(r *RunResult) error
	// Skip receives a request that could not be simulated (unknown identifier).
	Skip(req AlgorithmRequest, err error) error
}

// RunObserver is notified of every completed run after it has been reported.
type RunObserver interface {
	Observe(r *RunResult)
}

// Orchestrator runs every algorithm requested by a workload.
type Orchestrator struct {
	reporter  Reporter
	observers []RunObserver
}

// NewOrchestrator creates an Orchestrator that hands results to rep and then
// to each observer. rep must not be nil.
func NewOrchestrator(rep Reporter, observers ...RunObserver) *Orchestrator {
	if rep == nil {
		panic("NewOrchestrator: reporter must not be nil")
	}
	return &Orchestrator{reporter: rep, observers: observers}
}

// Run simulates each requested algorithm on fresh state. Unknown algorithms
// are passed to Reporter.Skip and do not stop the remaining runs. A reporter
// error aborts immediately. The returned slice holds the completed runs.
func (o *Orchestrator) Run(w *Workload) ([]*RunResult, error) {
	results := make([]*RunResult, 0, len(w.Algorithms))
	for _, req := range w.Algorithms {
		alg, err := ParseAlgorithm(req.ID, req.Quantum)
		if errors.Is(err, ErrUnknownAlgorithm) {
			logrus.Warnf("Skipping algorithm %q: %v", req.ID, err)
			if err := o.reporter.Skip(req, err); err != nil {
				return results, fmt.Errorf("reporting skipped algorithm %q: %w", req.ID, err)
			}
			continue
		}
		if err != nil {
			return results, err
		}

		logrus.Infof("Running %s on %d processes, horizon=%d", alg.Name(), w.ProcessCount(), w.LastInstant)
		res := alg.Simulate(w)
		if err := o.reporter.Report(res); err != nil {
			return results, fmt.Errorf("reporting %s: %w", res.Algorithm, err)
		}
		for _, obs := range o.observers {
			obs.Observe(res)
		}
		logrus.Debugf("%s: %d/%d processes completed", res.Algorithm, res.Completed(), w.ProcessCount())
		results = append(results, res)
	}
	return results, nil
}
