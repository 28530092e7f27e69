package format

import (
	"fmt"
	"sync"
	"time"
)

// ProgressETA tracks segment completion over time and estimates when the
// remaining segments will finish. It is safe for concurrent use; the sieve
// reports completions from worker goroutines.
type ProgressETA struct {
	mu        sync.Mutex
	startTime time.Time
	completed int
	total     int
}

// NewProgressETA creates a tracker anchored at the current time.
func NewProgressETA() *ProgressETA {
	return &ProgressETA{startTime: time.Now()}
}

// Update records the latest completion counts and returns the overall
// progress fraction together with the estimated time remaining. The ETA is
// zero until at least one segment has completed.
func (p *ProgressETA) Update(completed, total int) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed = completed
	p.total = total
	return p.progressLocked(), p.etaLocked()
}

// Snapshot returns the current progress fraction and ETA without updating.
func (p *ProgressETA) Snapshot() (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progressLocked(), p.etaLocked()
}

func (p *ProgressETA) progressLocked() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(p.completed) / float64(p.total)
}

func (p *ProgressETA) etaLocked() time.Duration {
	if p.completed <= 0 || p.total <= 0 || p.completed >= p.total {
		return 0
	}
	elapsed := time.Since(p.startTime)
	perSegment := elapsed / time.Duration(p.completed)
	return perSegment * time.Duration(p.total-p.completed)
}

// FormatETA renders an estimated remaining duration for progress display.
// Sub-second estimates render as "<1s"; a zero estimate means unknown and
// renders as "--".
//
// Parameters:
//   - eta: The estimated time remaining.
//
// Returns:
//   - string: A compact human-readable form, e.g. "2m30s".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "--"
	}
	if eta < time.Second {
		return "<1s"
	}
	return eta.Round(time.Second).String()
}

// FormatProgress renders a percentage with its ETA suffix.
func FormatProgress(progress float64, eta time.Duration) string {
	return fmt.Sprintf("%3.0f%% (ETA %s)", progress*100, FormatETA(eta))
}
