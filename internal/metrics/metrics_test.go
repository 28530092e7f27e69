package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemorySnapshot_Since(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{HeapAlloc: 100, NumGC: 2, PauseTotalNs: 1000}
	after := MemorySnapshot{HeapAlloc: 80, NumGC: 5, PauseTotalNs: 4500}

	d := after.Since(before)
	if d.HeapAllocBytes != -20 {
		t.Errorf("HeapAllocBytes = %d, want -20", d.HeapAllocBytes)
	}
	if d.GCCycles != 3 {
		t.Errorf("GCCycles = %d, want 3", d.GCCycles)
	}
	if d.GCPauseNs != 3500 {
		t.Errorf("GCPauseNs = %d, want 3500", d.GCPauseNs)
	}
}

func TestSieveMetrics_ObserveOperation(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewSieveMetrics(reg)

	m.ObserveOperation("segmented_count", 50*time.Millisecond, nil)
	m.ObserveOperation("segmented_count", 10*time.Millisecond, errors.New("boom"))
	m.ObserveOperation("count", time.Millisecond, nil)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("segmented_count", "ok")); got != 1 {
		t.Errorf("ok counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("segmented_count", "error")); got != 1 {
		t.Errorf("error counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("count", "ok")); got != 1 {
		t.Errorf("count ok counter = %v, want 1", got)
	}
}

func TestSieveMetrics_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewSieveMetrics(reg)

	m.AddSegments(10)
	m.AddSegments(0)
	m.AddSegments(-3)
	m.AddPrimes(664579)

	if got := testutil.ToFloat64(m.segments); got != 10 {
		t.Errorf("segments = %v, want 10", got)
	}
	if got := testutil.ToFloat64(m.primes); got != 664579 {
		t.Errorf("primes = %v, want 664579", got)
	}
}

func TestSieveMetrics_NilRegisterer(t *testing.T) {
	t.Parallel()

	m := NewSieveMetrics(nil)
	m.ObserveOperation("sieve", time.Millisecond, nil)
	m.AddSegments(1)
	m.AddPrimes(1)
}
