package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// agingEntry is the dynamic scheduling state of one ready process.
type agingEntry struct {
	Index    int
	Priority int // dynamic priority; higher is dispatched first
	Wait     int // instants waited since last run
}

// Simulate runs Aging.
//
// Every instant, each ready process that did not run the previous instant
// gains one priority point and one wait unit, while the process that did run
// is reset to its base priority with zero wait. At a dispatch point the ready
// process with the highest dynamic priority is chosen (ties: longer wait,
// then lower process index) and runs for up to Quantum instants, or until it
// completes, without re-evaluation.
func (a Aging) Simulate(w *Workload) *RunResult {
	s := newSchedule(w)
	arrivals := admitter{procs: w.Processes}
	ready := make([]*agingEntry, 0, w.ProcessCount())

	current, previous := -1, -1
	burstLeft := 0
	for clock := 0; clock < w.LastInstant; clock++ {
		arrivals.admit(clock, func(idx int) {
			ready = append(ready, &agingEntry{Index: idx, Priority: w.Processes[idx].Priority})
		})
		for _, e := range ready {
			if e.Index == previous {
				e.Priority = w.Processes[e.Index].Priority
				e.Wait = 0
			} else {
				e.Priority++
				e.Wait++
			}
		}
		if burstLeft == 0 {
			current = selectAging(ready)
			if current == -1 {
				previous = -1
				continue
			}
			burstLeft = a.Quantum
			logrus.Tracef("[%s] t=%d dispatch %s", a.Name(), clock, w.Processes[current].Name)
		}
		burstLeft--
		if s.run(clock, current) {
			ready = removeAging(ready, current)
			burstLeft = 0
		}
		previous = current
	}
	return s.result(a.Name())
}

// selectAging returns the process index to dispatch, or -1 if none is ready.
func selectAging(ready []*agingEntry) int {
	if len(ready) == 0 {
		return -1
	}
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].Priority != ready[j].Priority {
			return ready[i].Priority > ready[j].Priority
		}
		if ready[i].Wait != ready[j].Wait {
			return ready[i].Wait > ready[j].Wait
		}
		return ready[i].Index < ready[j].Index
	})
	return ready[0].Index
}

func removeAging(ready []*agingEntry, idx int) []*agingEntry {
	for i, e := range ready {
		if e.Index == idx {
			return append(ready[:i], ready[i+1:]...)
		}
	}
	panic("removeAging: process not in ready set")
}
