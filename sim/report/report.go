// Package report renders scheduling runs as text: the per-instant occupancy
// grid for "trace" workloads and a statistics table for "stats" workloads.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/trace"
)

// Writer renders each run to an io.Writer according to the workload's
// operation. It implements sim.Reporter.
type Writer struct {
	out     io.Writer
	op      sim.Operation
	summary bool
}

// NewWriter creates a Writer. When summary is true a dispatch summary block
// follows every run.
func NewWriter(out io.Writer, op sim.Operation, summary bool) *Writer {
	return &Writer{out: out, op: op, summary: summary}
}

// Report renders one run.
func (rw *Writer) Report(r *sim.RunResult) error {
	var buf bytes.Buffer
	switch rw.op {
	case sim.OperationTrace:
		writeTimeline(&buf, r)
	case sim.OperationStats:
		writeStats(&buf, r)
	default:
		return fmt.Errorf("unknown operation %q", rw.op)
	}
	if rw.summary {
		writeSummary(&buf, r)
	}
	buf.WriteString("\n")
	_, err := rw.out.Write(buf.Bytes())
	return err
}

// Skip notes an algorithm that was not simulated.
func (rw *Writer) Skip(req sim.AlgorithmRequest, cause error) error {
	_, err := fmt.Fprintf(rw.out, "== %s ==\nskipped: %v\n\n", req, cause)
	return err
}

// WriteTimeline renders the occupancy grid of r: a header of instant digits
// (t mod 10), then one row per process with '*' running, '.' waiting.
func WriteTimeline(w io.Writer, r *sim.RunResult) error {
	var buf bytes.Buffer
	writeTimeline(&buf, r)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteStats renders finish time, turnaround and normalized turnaround of r.
func WriteStats(w io.Writer, r *sim.RunResult) error {
	var buf bytes.Buffer
	writeStats(&buf, r)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeTimeline(buf *bytes.Buffer, r *sim.RunResult) {
	width := len(r.Algorithm)
	for _, p := range r.Workload.Processes {
		if len(p.Name) > width {
			width = len(p.Name)
		}
	}
	horizon := r.Workload.LastInstant

	digits := make([]string, horizon)
	for t := range digits {
		digits[t] = fmt.Sprint(t % 10)
	}
	fmt.Fprintf(buf, "%-*s %s\n", width, r.Algorithm, strings.Join(digits, " "))
	buf.WriteString(strings.Repeat("-", width+1+2*horizon))
	buf.WriteString("\n")

	for i, p := range r.Workload.Processes {
		fmt.Fprintf(buf, "%-*s|", width, p.Name)
		for t := 0; t < horizon; t++ {
			buf.WriteByte(byte(r.Occupancy[t][i]))
			buf.WriteByte('|')
		}
		buf.WriteString("\n")
	}
}

func writeStats(buf *bytes.Buffer, r *sim.RunResult) {
	procs := r.Workload.Processes
	header := make([]string, 0, len(procs)+2)
	header = append(header, "Process")
	rows := [][]string{{"Arrival"}, {"Service"}, {"Finish"}, {"Turnaround"}, {"NormTurn"}}
	for i, p := range procs {
		header = append(header, p.Name)
		m := r.Metrics[i]
		rows[0] = append(rows[0], fmt.Sprint(p.Arrival))
		rows[1] = append(rows[1], fmt.Sprint(p.Service))
		if m.Completed {
			rows[2] = append(rows[2], fmt.Sprint(m.FinishTime))
			rows[3] = append(rows[3], fmt.Sprint(m.TurnaroundTime))
			rows[4] = append(rows[4], fmt.Sprintf("%.2f", m.NormalizedTurnaround))
		} else {
			rows[2] = append(rows[2], "-")
			rows[3] = append(rows[3], "-")
			rows[4] = append(rows[4], "-")
		}
	}

	header = append(header, "Mean")
	s := r.Summarize()
	rows[0] = append(rows[0], "")
	rows[1] = append(rows[1], "")
	rows[2] = append(rows[2], "")
	if s.Completed > 0 {
		rows[3] = append(rows[3], fmt.Sprintf("%.2f", s.MeanTurnaround))
		rows[4] = append(rows[4], fmt.Sprintf("%.2f", s.MeanNormalizedTurnaround))
	} else {
		rows[3] = append(rows[3], "-")
		rows[4] = append(rows[4], "-")
	}

	fmt.Fprintf(buf, "== %s ==\n", r.Algorithm)
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

func writeSummary(buf *bytes.Buffer, r *sim.RunResult) {
	ts := trace.Summarize(trace.FromDispatches(r.Running))
	rs := r.Summarize()
	fmt.Fprintf(buf, "Completed        : %d/%d\n", rs.Completed, rs.Completed+rs.Incomplete)
	fmt.Fprintf(buf, "Dispatches       : %d\n", ts.Dispatches)
	fmt.Fprintf(buf, "Context switches : %d\n", ts.ContextSwitches)
	fmt.Fprintf(buf, "Idle instants    : %d\n", ts.IdleInstants)
	fmt.Fprintf(buf, "Utilization      : %.1f%%\n", 100*ts.Utilization)
}
