package trace

// ScheduleTrace is the dispatch history of one run, compressed into slices.
type ScheduleTrace struct {
	Horizon int
	Slices  []SliceRecord
}

// NewScheduleTrace creates an empty trace for a run of the given horizon.
func NewScheduleTrace(horizon int) *ScheduleTrace {
	return &ScheduleTrace{
		Horizon: horizon,
		Slices:  make([]SliceRecord, 0),
	}
}

// RecordInstant appends instant t, dispatched to process (or Idle).
// Instants must be recorded in increasing order; consecutive instants of the
// same process extend the current slice.
func (st *ScheduleTrace) RecordInstant(t, process int) {
	if process == Idle {
		return
	}
	if n := len(st.Slices); n > 0 {
		last := &st.Slices[n-1]
		if last.Process == process && last.End == t {
			last.End = t + 1
			return
		}
	}
	st.Slices = append(st.Slices, SliceRecord{Process: process, Start: t, End: t + 1})
}

// FromDispatches builds a trace from a per-instant dispatch sequence as
// produced by a run (index of the running process, or Idle).
func FromDispatches(running []int) *ScheduleTrace {
	st := NewScheduleTrace(len(running))
	for t, p := range running {
		st.RecordInstant(t, p)
	}
	return st
}
