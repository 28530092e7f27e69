package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{999 * time.Millisecond, "999ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"0", "0"},
		{"25", "25"},
		{"168", "168"},
		{"1000", "1,000"},
		{"664579", "664,579"},
		{"1234567890", "1,234,567,890"},
		{"not-a-number", "not-a-number"},
	}

	for _, tt := range tests {
		if got := GroupDigits(tt.in); got != tt.want {
			t.Errorf("GroupDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressETA(t *testing.T) {
	t.Parallel()

	p := NewProgressETA()

	progress, eta := p.Snapshot()
	if progress != 0 {
		t.Errorf("initial progress = %f, want 0", progress)
	}
	if eta != 0 {
		t.Errorf("initial ETA = %v, want 0", eta)
	}

	progress, eta = p.Update(25, 100)
	if progress != 0.25 {
		t.Errorf("progress = %f, want 0.25", progress)
	}
	if eta < 0 {
		t.Errorf("ETA should not be negative, got %v", eta)
	}

	progress, eta = p.Update(100, 100)
	if progress != 1.0 {
		t.Errorf("progress = %f, want 1.0", progress)
	}
	if eta != 0 {
		t.Errorf("ETA after completion = %v, want 0", eta)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "--"},
		{-time.Second, "--"},
		{200 * time.Millisecond, "<1s"},
		{90 * time.Second, "1m30s"},
		{2*time.Minute + 29*time.Second + 700*time.Millisecond, "2m30s"},
	}

	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	t.Parallel()

	got := FormatProgress(0.5, 10*time.Second)
	if !strings.Contains(got, "50%") || !strings.Contains(got, "10s") {
		t.Errorf("FormatProgress = %q, want 50%% and 10s", got)
	}
}
