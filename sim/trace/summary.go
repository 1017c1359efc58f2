package trace

// TraceSummary aggregates statistics from a ScheduleTrace.
type TraceSummary struct {
	Dispatches      int // number of slices
	ContextSwitches int // dispatches of a process other than the one that ran last
	BusyInstants    int
	IdleInstants    int
	LongestSlice    int
	Utilization     float64     // BusyInstants / Horizon
	SlicesPerProc   map[int]int // process index → number of slices
}

// Summarize computes aggregate statistics from a ScheduleTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *ScheduleTrace) *TraceSummary {
	summary := &TraceSummary{
		SlicesPerProc: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.Dispatches = len(st.Slices)
	last := Idle
	for _, s := range st.Slices {
		if last != Idle && s.Process != last {
			summary.ContextSwitches++
		}
		last = s.Process
		summary.BusyInstants += s.Len()
		if s.Len() > summary.LongestSlice {
			summary.LongestSlice = s.Len()
		}
		summary.SlicesPerProc[s.Process]++
	}
	summary.IdleInstants = st.Horizon - summary.BusyInstants
	if st.Horizon > 0 {
		summary.Utilization = float64(summary.BusyInstants) / float64(st.Horizon)
	}
	return summary
}
