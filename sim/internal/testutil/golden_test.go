package testutil

import "testing"

func TestLoadGoldenDataset_WorkloadIsSortedAndComplete(t *testing.T) {
	ds := LoadGoldenDataset(t)
	if ds.Horizon <= 0 {
		t.Fatalf("horizon = %d, want positive", ds.Horizon)
	}
	for i := 1; i < len(ds.Processes); i++ {
		if ds.Processes[i].Arrival < ds.Processes[i-1].Arrival {
			t.Errorf("process %d arrives before process %d", i, i-1)
		}
	}
	for _, tc := range ds.Tests {
		if len(tc.Finish) != len(ds.Processes) {
			t.Errorf("%s: %d finish times for %d processes", tc.Name, len(tc.Finish), len(ds.Processes))
		}
	}
}

func TestAssertFloat64Equal_WithinTolerance(t *testing.T) {
	AssertFloat64Equal(t, "exact", 1.5, 1.5, 0)
	AssertFloat64Equal(t, "zero", 0, 0, 0)
	AssertFloat64Equal(t, "close", 2.5633, 2.563333, 1e-3)
}
