package config

import "runtime"

// Segment width resolution chain (highest priority first):
//  1. CLI flag (--segment-width)
//  2. Environment variable (PRIMEGEN_SEGMENT_WIDTH)
//  3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills in hardware-derived values for any tuning
// field still at its zero default, preserving explicit user overrides.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.SegmentWidth == 0 {
		cfg.SegmentWidth = EstimateSegmentWidth()
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg
}

// EstimateSegmentWidth provides a heuristic segment size without running
// benchmarks. Each odd candidate costs one bit in the segment's mark set,
// so the width targets L2 cache residency rather than total memory.
func EstimateSegmentWidth() uint64 {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return 1 << 18 // 256K candidates, small caches likely
	case numCPU <= 8:
		return 1 << 20 // 1M candidates
	default:
		return 1 << 21 // 2M candidates, server-class parts with large L2
	}
}
