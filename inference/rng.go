// SPDX-License-Identifier: MIT
// Package inference - deterministic RNG streams for replicates.
//
// Replicates run concurrently, so each one derives an independent
// *rand.Rand from (base seed, replicate index) with a SplitMix64-style mix.
// The derivation depends only on those two inputs, never on scheduling, so
// a test is reproducible for any worker count.
package inference

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer constants (Vigna 2014).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// replicateRNG returns the RNG stream of one replicate. Seed 0 maps to the
// deterministic default before derivation.
//
// Complexity: O(1).
func replicateRNG(seed int64, replicate int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, uint64(replicate))))
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
