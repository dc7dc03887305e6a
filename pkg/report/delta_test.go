package report

import (
	"math"
	"testing"
	"time"

	"github.com/srodi/proctop/pkg/snapshot"
	"github.com/srodi/proctop/pkg/types"
)

func snap(sys uint64, procs ...types.ProcessCounters) snapshot.Snapshot {
	return snapshot.New(time.Unix(0, 0), types.SystemCounters{Ticks: sys}, procs)
}

func proc(pid int, ticks uint64, comm string, rssKB uint64) types.ProcessCounters {
	return types.ProcessCounters{PID: pid, CPUTicks: ticks, Comm: comm, ResidentKB: rssKB}
}

func TestDeriveComputesRawRatio(t *testing.T) {
	prev := snap(1000, proc(42, 50, "worker", 0))
	curr := snap(1100, proc(42, 70, "worker", 0))

	rows, stats := Derive(prev, curr, Options{})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if math.Abs(rows[0].CPUPercent-20.0) > 1e-9 {
		t.Fatalf("expected 20%% cpu, got %.4f", rows[0].CPUPercent)
	}
	if rows[0].PID != 42 || rows[0].Comm != "worker" {
		t.Fatalf("unexpected row identity: %+v", rows[0])
	}
	if stats.Emitted != 1 || stats.Considered != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDeriveExcludesNewProcesses(t *testing.T) {
	prev := snap(1000)
	curr := snap(1100, proc(7, 5, "fresh", 4096))

	rows, stats := Derive(prev, curr, Options{})
	if len(rows) != 0 {
		t.Fatalf("new pid must not appear this cycle, got %+v", rows)
	}
	if stats.New != 1 {
		t.Fatalf("expected one new process counted, got %+v", stats)
	}
}

func TestDeriveZeroSystemDelta(t *testing.T) {
	prev := snap(1000, proc(9, 80, "idle", 0))
	curr := snap(1000, proc(9, 80, "idle", 0))

	rows, stats := Derive(prev, curr, Options{})
	if len(rows) != 0 {
		t.Fatalf("zero-footprint row should be suppressed, got %+v", rows)
	}
	if stats.Suppressed != 1 {
		t.Fatalf("expected suppression counted, got %+v", stats)
	}

	withMemory := snap(1000, proc(9, 90, "idle", 2048))
	rows, _ = Derive(prev, withMemory, Options{})
	if len(rows) != 1 {
		t.Fatalf("row with resident memory should stay visible, got %d rows", len(rows))
	}
	if rows[0].CPUPercent != 0 {
		t.Fatalf("expected 0%% cpu without elapsed system ticks, got %.4f", rows[0].CPUPercent)
	}
	if rows[0].MemoryMB != 2 {
		t.Fatalf("expected 2 MB, got %.4f", rows[0].MemoryMB)
	}
}

func TestDeriveSystemCounterWentBackwards(t *testing.T) {
	prev := snap(5000, proc(3, 10, "busy", 1024))
	curr := snap(10, proc(3, 90, "busy", 1024))

	rows, _ := Derive(prev, curr, Options{})
	if len(rows) != 1 || rows[0].CPUPercent != 0 {
		t.Fatalf("expected a single 0%% row, got %+v", rows)
	}
}

func TestDeriveCounterRegressionPolicies(t *testing.T) {
	prev := snap(1000, proc(5, 900, "old", 1024))
	curr := snap(1100, proc(5, 10, "reused", 1024))

	rows, stats := Derive(prev, curr, Options{Regression: ClampRegression})
	if len(rows) != 1 {
		t.Fatalf("clamp should keep the row, got %+v", rows)
	}
	if rows[0].CPUPercent != 0 {
		t.Fatalf("clamped row must report 0%%, got %.4f", rows[0].CPUPercent)
	}
	if rows[0].Comm != "reused" {
		t.Fatalf("row should carry the current command name, got %q", rows[0].Comm)
	}
	if stats.Regressed != 1 {
		t.Fatalf("expected regression counted, got %+v", stats)
	}

	rows, stats = Derive(prev, curr, Options{Regression: DropRegression})
	if len(rows) != 0 {
		t.Fatalf("drop should omit the row, got %+v", rows)
	}
	if stats.Regressed != 1 {
		t.Fatalf("expected regression counted, got %+v", stats)
	}
}

func TestDeriveSkipsUnnamedAndCountsVanished(t *testing.T) {
	prev := snap(1000,
		proc(1, 10, "init", 4096),
		proc(2, 10, "", 4096),
		proc(3, 10, "gone", 4096),
	)
	curr := snap(1100,
		proc(1, 20, "init", 4096),
		proc(2, 50, "", 4096),
	)

	rows, stats := Derive(prev, curr, Options{})
	if len(rows) != 1 || rows[0].PID != 1 {
		t.Fatalf("expected only pid 1, got %+v", rows)
	}
	if stats.Unnamed != 1 || stats.Vanished != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDeriveVisibilityThresholdIsStrict(t *testing.T) {
	// 0.01% cpu exactly and 0 MB: not strictly above the threshold.
	prev := snap(0, proc(1, 0, "edge", 0))
	curr := snap(10000, proc(1, 1, "edge", 0))
	rows, _ := Derive(prev, curr, Options{})
	if len(rows) != 0 {
		t.Fatalf("row at exactly the threshold should be hidden, got %+v", rows)
	}

	curr = snap(10000, proc(1, 2, "edge", 0))
	rows, _ = Derive(prev, curr, Options{})
	if len(rows) != 1 {
		t.Fatalf("row above the threshold should be shown")
	}
}

func TestDeriveRowsInPIDOrder(t *testing.T) {
	prev := snap(0, proc(30, 0, "c", 1024), proc(10, 0, "a", 1024), proc(20, 0, "b", 1024))
	curr := snap(100, proc(20, 5, "b", 1024), proc(30, 5, "c", 1024), proc(10, 5, "a", 1024))
	rows, _ := Derive(prev, curr, Options{})
	for i, want := range []int{10, 20, 30} {
		if rows[i].PID != want {
			t.Fatalf("row %d: expected pid %d, got %d", i, want, rows[i].PID)
		}
	}
}

func TestParseRegressionPolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    RegressionPolicy
		wantErr bool
	}{
		{"", ClampRegression, false},
		{"clamp", ClampRegression, false},
		{" DROP ", DropRegression, false},
		{"ignore", ClampRegression, true},
	}
	for _, tc := range cases {
		got, err := ParseRegressionPolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: unexpected error state %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
	if DropRegression.String() != "drop" || ClampRegression.String() != "clamp" {
		t.Fatalf("unexpected policy names")
	}
}
