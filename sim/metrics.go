// Derives per-process completion metrics and run-level means.

package sim

// ProcessMetrics holds the completion statistics of one process.
// When Completed is false the process did not finish within the horizon and
// the remaining fields are zero; they must not be reported.
type ProcessMetrics struct {
	Completed            bool
	FinishTime           int
	TurnaroundTime       int     // FinishTime - Arrival
	NormalizedTurnaround float64 // TurnaroundTime / Service
}

// deriveMetrics computes the metrics of p completing at instant finish.
func deriveMetrics(p Process, finish int) ProcessMetrics {
	tat := finish - p.Arrival
	return ProcessMetrics{
		Completed:            true,
		FinishTime:           finish,
		TurnaroundTime:       tat,
		NormalizedTurnaround: float64(tat) / float64(p.Service),
	}
}

// RunSummary aggregates completed processes of one run.
type RunSummary struct {
	Completed                int
	Incomplete               int
	MeanTurnaround           float64
	MeanNormalizedTurnaround float64
}

// Summarize averages turnaround over completed processes only.
// Means are zero when nothing completed.
func (r *RunResult) Summarize() RunSummary {
	var s RunSummary
	var tatSum, normSum float64
	for _, m := range r.Metrics {
		if !m.Completed {
			s.Incomplete++
			continue
		}
		s.Completed++
		tatSum += float64(m.TurnaroundTime)
		normSum += m.NormalizedTurnaround
	}
	if s.Completed > 0 {
		s.MeanTurnaround = tatSum / float64(s.Completed)
		s.MeanNormalizedTurnaround = normSum / float64(s.Completed)
	}
	return s
}
