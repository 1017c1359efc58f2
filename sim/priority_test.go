package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAging_LowPriorityProcessIsNotStarved(t *testing.T) {
	// GIVEN L (base 0) and H (base 3) both arriving at 0, quantum 1
	w := mustWorkload(t, 5,
		Process{Name: "L", Arrival: 0, Service: 2, Priority: 0},
		Process{Name: "H", Arrival: 0, Service: 3, Priority: 3},
	)

	// WHEN Aging runs
	r := Aging{Quantum: 1}.Simulate(w)

	// THEN H runs first, and L ages to H's base priority by t=2 and wins
	// the tie on longer wait
	assert.Equal(t, []int{1, 1, 0, 1, 0}, r.Running)
	assert.Equal(t, []string{"..*.*", "**.* "}, columns(r))
	assert.Equal(t, []int{5, 4}, finishTimes(r))
	assert.Equal(t, "Aging-1", r.Algorithm)
}

func TestAging_BurstRunsWithoutReevaluation(t *testing.T) {
	// GIVEN the same processes with quantum 2
	w := mustWorkload(t, 5,
		Process{Name: "L", Arrival: 0, Service: 2, Priority: 0},
		Process{Name: "H", Arrival: 0, Service: 3, Priority: 3},
	)

	// WHEN Aging runs
	r := Aging{Quantum: 2}.Simulate(w)

	// THEN each dispatch holds the processor for the full burst
	assert.Equal(t, []string{"..** ", "**..*"}, columns(r))
	assert.Equal(t, []int{4, 5}, finishTimes(r))
}

func TestAging_CompletionEndsBurstEarly(t *testing.T) {
	w := mustWorkload(t, 4,
		Process{Name: "A", Arrival: 0, Service: 1, Priority: 5},
		Process{Name: "B", Arrival: 0, Service: 2},
	)
	r := Aging{Quantum: 3}.Simulate(w)
	assert.Equal(t, []int{0, 1, 1, -1}, r.Running)
	assert.Equal(t, []int{1, 3}, finishTimes(r))
}

func TestAging_IdleThenLateArrival(t *testing.T) {
	w := mustWorkload(t, 5, proc("A", 0, 1), proc("B", 3, 1))
	r := Aging{Quantum: 2}.Simulate(w)
	assert.Equal(t, []int{0, -1, -1, 1, -1}, r.Running)
	assert.Equal(t, []int{1, 4}, finishTimes(r))
}

func TestSelectAging_TieBreaks(t *testing.T) {
	tests := []struct {
		name  string
		ready []*agingEntry
		want  int
	}{
		{"empty", nil, -1},
		{"priority", []*agingEntry{{Index: 0, Priority: 1}, {Index: 1, Priority: 2}}, 1},
		{"wait", []*agingEntry{{Index: 0, Priority: 2, Wait: 1}, {Index: 1, Priority: 2, Wait: 3}}, 1},
		{"index", []*agingEntry{{Index: 2, Priority: 2, Wait: 1}, {Index: 1, Priority: 2, Wait: 1}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, selectAging(tc.ready))
		})
	}
}

func TestRemoveAging_MissingProcess_Panics(t *testing.T) {
	assert.Panics(t, func() {
		removeAging([]*agingEntry{{Index: 0}}, 3)
	})
}
