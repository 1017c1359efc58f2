package sim

import "github.com/sirupsen/logrus"

// Simulate runs round robin. The process at the head of the ready queue keeps
// the processor until it completes or has used Quantum consecutive instants,
// then moves to the tail. Processes arriving at instant t+1 are appended after
// instant t has been processed, so a preempted process queues ahead of them.
func (a RoundRobin) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	ready := &ReadyQueue{}
	enqueue := func(idx int) { ready.Enqueue(readyEntry{Index: idx}) }
	arrivals := admitter{procs: w.Processes}
	arrivals.admit(0, enqueue)

	used := 0
	for clock := 0; clock < w.LastInstant; clock++ {
		if e, ok := ready.Peek(); ok {
			used++
			if s.run(clock, e.Index) {
				ready.Dequeue()
				used = 0
			} else if used == a.Quantum {
				ready.Dequeue()
				ready.Enqueue(e)
				used = 0
				logrus.Tracef("[%s] t=%d quantum expired for %s, queue %v", a.Name(), clock, w.Processes[e.Index].Name, ready)
			}
		}
		arrivals.admit(clock+1, enqueue)
	}
	return s.result(a.Name())
}

// Simulate runs SRT. Every instant the ready process with the least remaining
// service runs; ties go to the earlier-admitted process. A process that does
// not finish is reinserted and compared again against new arrivals.
func (a SRT) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	ready := NewReadyHeap()
	arrivals := admitter{procs: w.Processes}
	for clock := 0; clock < w.LastInstant; clock++ {
		arrivals.admit(clock, func(idx int) {
			ready.Insert(w.Processes[idx].Service, idx)
		})
		e, ok := ready.PopMin()
		if !ok {
			continue
		}
		if !s.run(clock, e.Index) {
			ready.Insert(s.remaining[e.Index], e.Index)
		}
	}
	return s.result(a.Name())
}
