package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sched-sim/sim/internal/testutil"
)

func TestSimulate_GoldenDataset(t *testing.T) {
	ds := testutil.LoadGoldenDataset(t)
	procs := make([]Process, len(ds.Processes))
	for i, p := range ds.Processes {
		procs[i] = Process{Name: p.Name, Arrival: p.Arrival, Service: p.Service, Priority: p.Priority}
	}
	w := mustWorkload(t, ds.Horizon, procs...)

	for _, tc := range ds.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			alg, err := ParseAlgorithm(tc.Algorithm, tc.Quantum)
			require.NoError(t, err)

			r := alg.Simulate(w)

			assert.Equal(t, tc.Name, r.Algorithm)
			assert.Equal(t, tc.Finish, finishTimes(r))
			testutil.AssertFloat64Equal(t, "mean normalized turnaround",
				tc.MeanNormalizedTurnaround, r.Summarize().MeanNormalizedTurnaround, 1e-3)
		})
	}
}
