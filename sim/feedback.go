package sim

import "github.com/sirupsen/logrus"

// maxFeedbackLevel bounds the FB-2i level so the granted quantum 2^L never
// overflows. A process at this level already holds the processor for over a
// billion instants per dispatch.
const maxFeedbackLevel = 30

// Simulate runs FB-1: a single FIFO queue in which every dispatch lasts one
// instant and an unfinished process drops behind all ready processes.
func (a FB1) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	ready := &ReadyQueue{}
	enqueue := func(idx int) { ready.Enqueue(readyEntry{Index: idx}) }
	arrivals := admitter{procs: w.Processes}
	arrivals.admit(0, enqueue)

	for clock := 0; clock < w.LastInstant; clock++ {
		if e, ok := ready.Dequeue(); ok {
			if !s.run(clock, e.Index) {
				e.Level++
				ready.Enqueue(e)
			}
		}
		arrivals.admit(clock+1, enqueue)
	}
	return s.result(a.Name())
}

// Simulate runs FB-2i. A process dispatched at level L runs for up to 2^L
// instants; if it does not finish it is requeued at level L+1. Arrivals that
// happened during a burst are admitted at level 0 once the burst ends, behind
// the requeued process.
func (a FB2i) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	ready := &ReadyQueue{}
	enqueue := func(idx int) { ready.Enqueue(readyEntry{Index: idx}) }
	arrivals := admitter{procs: w.Processes}
	arrivals.admit(0, enqueue)

	for clock := 0; clock < w.LastInstant; {
		e, ok := ready.Dequeue()
		if !ok {
			clock++
		} else {
			quantum := 1 << e.Level
			logrus.Tracef("[%s] t=%d dispatch %s at level %d for %d", a.Name(), clock, w.Processes[e.Index].Name, e.Level, quantum)
			var finished bool
			clock, finished = s.runBurst(clock, e.Index, quantum)
			if !finished {
				if e.Level < maxFeedbackLevel {
					e.Level++
				}
				ready.Enqueue(e)
			}
		}
		arrivals.admit(clock, enqueue)
	}
	return s.result(a.Name())
}
