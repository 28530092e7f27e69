package sieve

// DefaultSegmentWidth is the number of candidates per segment window. The
// window's bit array must stay cache-resident while every base prime walks
// it, so the default targets a footprint of 128 KiB (1<<20 bits), well
// inside a contemporary L2 cache.
const DefaultSegmentWidth uint64 = 1 << 20

// DefaultInflightFactor scales the number of segments allowed in flight
// (queued or sieving) per worker. It bounds the dispatch-ahead window so an
// enormous range cannot enqueue millions of task closures at once.
const DefaultInflightFactor = 4

// maxSieveBound caps the base-sieve allocation. The serial base sieve
// allocates one bit per candidate up to isqrt(n); beyond this cap (512 MiB
// of bits) the input is outside sieve-feasible magnitudes and the call is
// rejected rather than attempted.
const maxSieveBound uint64 = 1 << 32
