//go:build linux

package cpu

import "testing"

const fixtureRoot = "../testdata/proc"

func TestSystemCountersFromFixture(t *testing.T) {
	c, err := NewCollector(fixtureRoot)
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}
	sys, err := c.SystemCounters()
	if err != nil {
		t.Fatalf("reading system counters: %v", err)
	}
	if sys.Ticks != 1000 {
		t.Fatalf("expected 1000 ticks across all categories, got %d", sys.Ticks)
	}
}

func TestProcessTicksSumsUserAndSystem(t *testing.T) {
	c, err := NewCollector(fixtureRoot)
	if err != nil {
		t.Fatalf("opening fixture: %v", err)
	}

	if ticks, ok := c.ProcessTicks(42); !ok || ticks != 70 {
		t.Fatalf("expected 70 ticks for pid 42, got %d ok=%t", ticks, ok)
	}
	if ticks, ok := c.ProcessTicks(1); !ok || ticks != 200 {
		t.Fatalf("expected 200 ticks for pid 1, got %d ok=%t", ticks, ok)
	}
	if _, ok := c.ProcessTicks(99); ok {
		t.Fatalf("pid 99 has no stat record and should be absent")
	}
	if _, ok := c.ProcessTicks(404); ok {
		t.Fatalf("missing pid should be absent")
	}
}

func TestNewCollectorRejectsMissingRoot(t *testing.T) {
	if _, err := NewCollector("../testdata/does-not-exist"); err == nil {
		t.Fatalf("expected error for missing proc root")
	}
}

func TestSystemCountersMissingStatFails(t *testing.T) {
	c, err := NewCollector(t.TempDir())
	if err != nil {
		t.Fatalf("opening empty root: %v", err)
	}
	sys, err := c.SystemCounters()
	if err == nil {
		t.Fatalf("expected error when stat is unreadable")
	}
	if sys.Ticks != 0 {
		t.Fatalf("expected zero reading on failure, got %d", sys.Ticks)
	}
}
