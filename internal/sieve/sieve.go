package sieve

import (
	"runtime"
)

// ProgressFunc receives segment completion updates during a segmented run.
// It is called once with (0, total) before any segment is dispatched and
// then once per completed segment, from worker goroutines; implementations
// must be safe for concurrent use.
type ProgressFunc func(completed, total int)

// Config tunes a Sieve. The zero value selects sensible defaults.
type Config struct {
	// SegmentWidth is the number of candidates per segment window. This is
	// a cache-residency tuning constant, not a correctness parameter.
	SegmentWidth uint64
	// Workers is the number of concurrent sieving goroutines. Non-positive
	// means the available hardware concurrency.
	Workers int
	// Inflight bounds how many segments may be queued or sieving at once.
	// Non-positive means Workers * DefaultInflightFactor.
	Inflight int
	// Progress, when non-nil, receives segment completion updates.
	Progress ProgressFunc
}

// Sieve generates and counts primes. It is stateless between calls and safe
// for concurrent use; each call owns its dispatch queue and buffers.
type Sieve struct {
	cfg Config
}

// New creates a Sieve with defaults applied for any unset Config field.
func New(cfg Config) *Sieve {
	if cfg.SegmentWidth == 0 {
		cfg.SegmentWidth = DefaultSegmentWidth
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Inflight <= 0 {
		cfg.Inflight = cfg.Workers * DefaultInflightFactor
	}
	return &Sieve{cfg: cfg}
}
