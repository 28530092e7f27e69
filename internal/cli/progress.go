package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/primegen/internal/format"
	"github.com/agbru/primegen/internal/sieve"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so progress display can be tested
// without driving a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                     { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is swapped out in tests.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// ProgressReporter drives a spinner showing segment completion and an ETA.
// Its Func method yields a callback suitable for the sieve configuration.
type ProgressReporter struct {
	spinner Spinner
	eta     *format.ProgressETA
	start   sync.Once
	started atomic.Bool
}

// NewProgressReporter creates a reporter writing to out. A nil reporter is
// valid and reports nothing, so quiet mode can simply pass nil around.
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{
		spinner: newSpinner(out),
		eta:     format.NewProgressETA(),
	}
}

// Func returns the callback to hand to the sieve. The callback is invoked
// from worker goroutines; ProgressETA serializes the state.
func (p *ProgressReporter) Func() sieve.ProgressFunc {
	if p == nil {
		return nil
	}
	return func(completed, total int) {
		p.start.Do(func() {
			p.started.Store(true)
			p.spinner.Start()
		})
		progress, eta := p.eta.Update(completed, total)
		p.spinner.UpdateSuffix(fmt.Sprintf(" %s %s",
			progressBar(progress, ProgressBarWidth),
			format.FormatProgress(progress, eta)))
	}
}

// Stop halts the spinner. Safe to call on a nil reporter or before any
// progress was reported.
func (p *ProgressReporter) Stop() {
	if p == nil || !p.started.Load() {
		return
	}
	p.spinner.Stop()
}

// progressBar generates a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
