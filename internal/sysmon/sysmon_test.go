package sysmon

import (
	"strings"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_MemNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
	if s.MemUsedBytes == 0 {
		t.Error("expected non-zero MemUsedBytes on a running system")
	}
}

func TestStats_String(t *testing.T) {
	s := Stats{CPUPercent: 12.5, MemPercent: 40.2, MemUsedBytes: 2 << 30}
	got := s.String()
	for _, want := range []string{"12.5%", "40.2%", "2.0 GiB"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, want substring %q", got, want)
		}
	}
}
