// Package sieve implements prime generation and counting over
// arbitrary-precision bounds. Two modes are provided: plain trial division,
// and a segmented Sieve of Eratosthenes that sieves base primes up to the
// integer square root of n serially, then partitions the remaining range
// into fixed-width windows sieved concurrently on a dispatch.Queue.
//
// Both modes produce exactly the same output for every n; the trial
// division path exists as the slow, obviously-correct reference and for
// very small inputs where building segments is not worth it. The choice of
// mode is always the caller's: there is no automatic crossover heuristic.
package sieve
