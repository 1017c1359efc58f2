package sim

import "container/heap"

// heapEntry is a ready process keyed for shortest-first selection.
type heapEntry struct {
	Key   int // service (SPN) or remaining service (SRT)
	Index int
}

// ReadyHeap implements a min-priority queue with deterministic ordering.
// Ordering: key → process index. Process index equals admission order
// because processes are admitted in arrival order.
type ReadyHeap struct {
	entries []heapEntry
}

// NewReadyHeap creates an empty ready heap.
func NewReadyHeap() *ReadyHeap {
	h := &ReadyHeap{
		entries: make([]heapEntry, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *ReadyHeap) Len() int {
	return len(h.entries)
}

// Less implements heap.Interface: smaller key first, then lower index.
func (h *ReadyHeap) Less(i, j int) bool {
	ei, ej := h.entries[i], h.entries[j]
	if ei.Key != ej.Key {
		return ei.Key < ej.Key
	}
	return ei.Index < ej.Index
}

// Swap implements heap.Interface
func (h *ReadyHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push implements heap.Interface
func (h *ReadyHeap) Push(x interface{}) {
	h.entries = append(h.entries, x.(heapEntry))
}

// Pop implements heap.Interface
func (h *ReadyHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[0 : n-1]
	return item
}

// Insert adds a process with the given key.
func (h *ReadyHeap) Insert(key, idx int) {
	heap.Push(h, heapEntry{Key: key, Index: idx})
}

// PopMin removes and returns the entry with the smallest key.
// The second result is false if the heap is empty.
func (h *ReadyHeap) PopMin() (heapEntry, bool) {
	if h.Len() == 0 {
		return heapEntry{}, false
	}
	return heap.Pop(h).(heapEntry), true
}
