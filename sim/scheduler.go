package sim

import "github.com/sirupsen/logrus"

// Non-preemptive disciplines: once dispatched, a process runs until it
// completes or the horizon ends.

// Simulate runs FCFS. Each process starts at max(previous finish, arrival).
func (a FCFS) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	clock := 0
	for i, p := range w.Processes {
		if p.Arrival > clock {
			clock = p.Arrival
		}
		if clock >= w.LastInstant {
			break
		}
		logrus.Tracef("[%s] t=%d dispatch %s", a.Name(), clock, p.Name)
		clock, _ = s.runBurst(clock, i, p.Service)
	}
	return s.result(a.Name())
}

// Simulate runs SPN. Among arrived processes the smallest total service is
// dispatched; ties go to the lower process index.
func (a SPN) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	ready := NewReadyHeap()
	arrivals := admitter{procs: w.Processes}
	for clock := 0; clock < w.LastInstant; {
		arrivals.admit(clock, func(idx int) {
			ready.Insert(w.Processes[idx].Service, idx)
		})
		e, ok := ready.PopMin()
		if !ok {
			clock++
			continue
		}
		logrus.Tracef("[%s] t=%d dispatch %s (service %d)", a.Name(), clock, w.Processes[e.Index].Name, e.Key)
		clock, _ = s.runBurst(clock, e.Index, w.Processes[e.Index].Service)
	}
	return s.result(a.Name())
}

// Simulate runs HRRN. Whenever the processor is free, the arrived process
// with the highest response ratio (wait+service)/service is dispatched; the
// first maximum in process order wins ties.
func (a HRRN) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	completed := make([]bool, w.ProcessCount())
	done := 0
	for clock := 0; clock < w.LastInstant && done < w.ProcessCount(); {
		best := -1
		for i, p := range w.Processes {
			if completed[i] || p.Arrival > clock {
				continue
			}
			if best == -1 || higherResponseRatio(p, w.Processes[best], clock) {
				best = i
			}
		}
		if best == -1 {
			clock++
			continue
		}
		logrus.Tracef("[%s] t=%d dispatch %s", a.Name(), clock, w.Processes[best].Name)
		var finished bool
		clock, finished = s.runBurst(clock, best, w.Processes[best].Service)
		if !finished {
			break
		}
		completed[best] = true
		done++
	}
	return s.result(a.Name())
}

// higherResponseRatio reports whether p has a strictly higher response ratio
// than q at clock. Compared by cross-multiplication to stay in integers.
func higherResponseRatio(p, q Process, clock int) bool {
	pw := clock - p.Arrival
	qw := clock - q.Arrival
	return (pw+p.Service)*q.Service > (qw+q.Service)*p.Service
}
