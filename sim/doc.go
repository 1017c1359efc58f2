// Package sim provides the discrete-time CPU scheduling engine.
//
// # Reading Guide
//
// Start with these files:
//   - workload.go: Process, Workload and its validating constructor
//   - algorithm.go: the eight Algorithm variants and identifier parsing
//   - result.go: RunResult, the occupancy grid and the per-run schedule state
//   - orchestrator.go: runs each requested algorithm and hands results on
//
// Simulators live next to the data structures they use:
//   - scheduler.go: non-preemptive FCFS, SPN, HRRN
//   - preemptive.go: RR (ReadyQueue) and SRT (ReadyHeap)
//   - feedback.go: FB-1 and FB-2i
//   - priority.go: Aging
//
// # Invariants
//
// A Workload's processes are sorted by arrival; every simulator admits them
// by advancing one index and relies on that order. Simulators build all their
// state fresh per call and never run or report an instant at or beyond
// Workload.LastInstant. A process that does not finish within the horizon has
// ProcessMetrics.Completed == false; that is a valid result, not an error.
//
// Sub-packages:
//   - sim/workload/: input parsing (legacy text format, YAML spec)
//   - sim/report/: occupancy grid and statistics rendering
//   - sim/trace/: dispatch-sequence analysis (slices, context switches, idle time)
//   - sim/observe/: Prometheus collectors for run outcomes
package sim
