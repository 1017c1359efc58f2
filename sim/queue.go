// Implements the ReadyQueue, the FIFO of runnable processes used by the
// round-robin and feedback simulators.

package sim

import (
	"fmt"
	"strings"
)

// readyEntry is a queued process with its feedback level.
// Level is only meaningful to FB-2i.
type readyEntry struct {
	Index int
	Level int
}

// ReadyQueue represents a FIFO queue of processes waiting for the processor.
type ReadyQueue struct {
	queue []readyEntry
}

// Enqueue adds a process to the back of the queue.
func (rq *ReadyQueue) Enqueue(e readyEntry) {
	rq.queue = append(rq.queue, e)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range rq.queue {
		sb.WriteString(fmt.Sprintf("%d@%d", e.Index, e.Level))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the entry at the front of the queue without removing it.
// The second result is false if the queue is empty.
func (rq *ReadyQueue) Peek() (readyEntry, bool) {
	if len(rq.queue) == 0 {
		return readyEntry{}, false
	}
	return rq.queue[0], true
}

// Dequeue removes and returns the entry at the front of the queue.
func (rq *ReadyQueue) Dequeue() (readyEntry, bool) {
	if len(rq.queue) == 0 {
		return readyEntry{}, false
	}
	e := rq.queue[0]
	rq.queue = rq.queue[1:]
	return e, true
}

// admitter walks the arrival-sorted process list once per run.
type admitter struct {
	procs []Process
	next  int
}

// admit calls fn for every not-yet-admitted process that has arrived by
// instant t, in arrival order.
func (a *admitter) admit(t int, fn func(idx int)) {
	for a.next < len(a.procs) && a.procs[a.next].Arrival <= t {
		fn(a.next)
		a.next++
	}
}

// done returns true once every process has been admitted.
func (a *admitter) done() bool {
	return a.next >= len(a.procs)
}
