// Package tsp - random streams shared by the local search and the multi-start driver.
//
// Ownership:
//   - One Stream per sequential run. MultiStart consumes it restart after
//     restart (start tour, then tie-breaks), so a fixed seed reproduces every
//     shuffle and every coin flip.
//   - Parallel runs derive one child Stream per restart up front, in restart
//     order, from the parent; results stay reproducible regardless of
//     goroutine scheduling.
//
// math/rand.Rand is NOT goroutine-safe. Never share a Stream across goroutines.
package tsp

import "math/rand"

// defaultStreamSeed is the seed used when callers pass seed==0.
const defaultStreamSeed int64 = 1

// Stream is the source of randomness consumed by the solvers.
// *rand.Rand satisfies it; tests may substitute a scripted stub.
type Stream interface {
	// Intn returns a uniform value in [0, n). n > 0.
	Intn(n int) int
	// Int63 returns a uniform non-negative 63-bit value.
	Int63() int64
}

// NewStream returns a deterministic Stream.
// Policy: seed==0 ⇒ defaultStreamSeed; otherwise the seed is used verbatim.
func NewStream(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultStreamSeed
	}

	return rand.New(rand.NewSource(seed))
}

// coinFlip is the exhaustive policy's tie-break: when a candidate's delta
// equals the current best, it replaces the selected pair with probability 1/2.
// Exactly one Intn(2) draw per tie.
func coinFlip(s Stream) bool {
	return s.Intn(2) == 0
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer; small input changes spread over all output bits).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveStream creates an independent child stream. base.Int63() is consumed
// once, so repeated derivations with the same id still differ.
func deriveStream(base Stream, id uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultStreamSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, id)))
}

// shuffleInPlace performs a Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, s Stream) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = s.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
