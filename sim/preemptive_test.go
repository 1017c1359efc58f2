package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobin_PreemptedProcessQueuesAheadOfNextArrival(t *testing.T) {
	// GIVEN A(0,3), B(1,2), quantum 1
	w := mustWorkload(t, 5, proc("A", 0, 3), proc("B", 1, 2))

	// WHEN RR runs
	r := RoundRobin{Quantum: 1}.Simulate(w)

	// THEN A is requeued at the end of t=0 before B is admitted for t=1,
	// so the dispatch sequence is A A B A B
	assert.Equal(t, []int{0, 0, 1, 0, 1}, r.Running)
	assert.Equal(t, []string{"**.* ", " .*.*"}, columns(r))
	assert.Equal(t, []int{4, 5}, finishTimes(r))
	assert.Equal(t, "RR-1", r.Algorithm)
}

func TestRoundRobin_QuantumTwo(t *testing.T) {
	w := mustWorkload(t, 5, proc("A", 0, 3), proc("B", 1, 2))
	r := RoundRobin{Quantum: 2}.Simulate(w)
	assert.Equal(t, []string{"**..*", " .** "}, columns(r))
	assert.Equal(t, []int{5, 4}, finishTimes(r))
}

func TestRoundRobin_SoleProcessKeepsRunningAcrossQuanta(t *testing.T) {
	w := mustWorkload(t, 6, proc("A", 0, 4))
	r := RoundRobin{Quantum: 1}.Simulate(w)
	assert.Equal(t, []int{0, 0, 0, 0, -1, -1}, r.Running)
	assert.Equal(t, []int{4}, finishTimes(r))
}

func TestRoundRobin_SimultaneousArrivalsAtZero_AllAdmitted(t *testing.T) {
	w := mustWorkload(t, 4, proc("A", 0, 2), proc("B", 0, 2))
	r := RoundRobin{Quantum: 1}.Simulate(w)
	assert.Equal(t, []int{0, 1, 0, 1}, r.Running)
	assert.Equal(t, []int{3, 4}, finishTimes(r))
}

func TestSRT_ShorterArrivalPreempts(t *testing.T) {
	// GIVEN A(0,4) running when B(1,1) arrives
	w := mustWorkload(t, 5, proc("A", 0, 4), proc("B", 1, 1))

	// WHEN SRT runs
	r := SRT{}.Simulate(w)

	// THEN B preempts A at t=1
	assert.Equal(t, []string{"*.***", " *   "}, columns(r))
	assert.Equal(t, []int{5, 2}, finishTimes(r))
}

func TestSRT_EqualRemaining_EarlierProcessKeepsProcessor(t *testing.T) {
	// A has 2 left at t=1 when B(1,2) arrives: tie goes to A
	w := mustWorkload(t, 6, proc("A", 0, 3), proc("B", 1, 2))
	r := SRT{}.Simulate(w)
	assert.Equal(t, []int{0, 0, 0, 1, 1, -1}, r.Running)
}

func TestSRT_HorizonExhausted_ProcessIncomplete(t *testing.T) {
	// GIVEN a process needing more instants than the horizon provides
	w := mustWorkload(t, 3, proc("A", 0, 5))

	// WHEN SRT runs
	r := SRT{}.Simulate(w)

	// THEN every instant runs A, and A has no metrics
	assert.Equal(t, []string{"***"}, columns(r))
	assert.False(t, r.Metrics[0].Completed)
	assert.Equal(t, 0, r.Completed())
}
