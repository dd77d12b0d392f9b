// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: Deterministic per-trial random streams for Search.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every trial gets its own stream,
//     derived from (seed, trial index) only, so scheduling cannot change it.

package routing

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed == 0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer so neighboring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the stream for trial i under base seed.
func trialRNG(seed int64, trial int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(trial))))
}
