package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFB1_AlternatesOneInstantAtATime(t *testing.T) {
	w := mustWorkload(t, 5, proc("A", 0, 2), proc("B", 0, 2))
	r := FB1{}.Simulate(w)
	assert.Equal(t, []int{0, 1, 0, 1, -1}, r.Running)
	assert.Equal(t, []int{3, 4}, finishTimes(r))
	assert.Equal(t, "FB-1", r.Algorithm)
}

func TestFB1_MatchesRoundRobinQuantumOne(t *testing.T) {
	w := mustWorkload(t, 12, proc("A", 0, 3), proc("B", 1, 4), proc("C", 3, 2), proc("D", 3, 1))
	assert.Equal(t, RoundRobin{Quantum: 1}.Simulate(w).Running, FB1{}.Simulate(w).Running)
}

func TestFB2i_QuantumDoublesPerLevel(t *testing.T) {
	// GIVEN A(0,4) and B(1,1)
	w := mustWorkload(t, 5, proc("A", 0, 4), proc("B", 1, 1))

	// WHEN FB-2i runs
	r := FB2i{}.Simulate(w)

	// THEN A runs 1 instant at level 0, then 2 at level 1 (B was admitted
	// behind A), then B runs, then A finishes at level 2
	assert.Equal(t, []string{"***.*", " ..* "}, columns(r))
	assert.Equal(t, []int{5, 4}, finishTimes(r))
}

func TestFB2i_BurstCutByHorizon(t *testing.T) {
	w := mustWorkload(t, 4, proc("A", 0, 10))
	r := FB2i{}.Simulate(w)
	assert.Equal(t, []string{"****"}, columns(r))
	assert.Equal(t, []int{-1}, finishTimes(r))
}

func TestFB2i_IdleUntilFirstArrival(t *testing.T) {
	w := mustWorkload(t, 5, proc("A", 2, 2))
	r := FB2i{}.Simulate(w)
	assert.Equal(t, []int{-1, -1, 0, 0, -1}, r.Running)
	assert.Equal(t, []int{4}, finishTimes(r))
}
