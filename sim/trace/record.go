// Package trace analyzes the per-instant dispatch sequence of a scheduling run.
// This package has no dependencies on sim/; it works on plain process indices.
package trace

import "fmt"

// Idle marks an instant at which no process was dispatched.
const Idle = -1

// SliceRecord captures one uninterrupted stretch of a process on the processor.
type SliceRecord struct {
	Process int // process index
	Start   int // first instant of the slice
	End     int // instant after the last one
}

// Len returns the number of instants in the slice.
func (r SliceRecord) Len() int {
	return r.End - r.Start
}

func (r SliceRecord) String() string {
	return fmt.Sprintf("p%d[%d,%d)", r.Process, r.Start, r.End)
}
