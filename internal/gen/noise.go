package gen

import "math"

// Value-noise hashing. Large odd multiplicative constants so low bits mix,
// one XOR fold of the high bits, then a 24-bit mask so the normalization to
// [0,1) is exact in float64. The output for a given (x, seed) pair is part
// of the save-compatibility contract and must never change.
const (
	noiseMulA uint32 = 0x9E3779B1
	noiseMulB uint32 = 0x85EBCA77
	noiseMulC uint32 = 0xC2B2AE35
	noiseMask uint32 = 1<<24 - 1
)

// Hash maps an integer coordinate and a seed to a deterministic scalar in [0,1).
func Hash(x int, seed uint32) float64 {
	h := uint32(int32(x))*noiseMulA + seed*noiseMulB
	h ^= h >> 13
	h *= noiseMulC
	h &= noiseMask
	return float64(h) / float64(1<<24)
}

// Hash2 folds a second coordinate in before hashing, for per-cell draws.
func Hash2(x, y int, seed uint32) float64 {
	return Hash(x*7919+y*104729, seed)
}

// Octave sums Hash samples at doubling frequencies and halving amplitudes
// and returns the amplitude-weighted average, still in [0,1). Always finite:
// every term is bounded.
func Octave(x float64, seed uint32, baseFreq float64, octaves int) float64 {
	freq := baseFreq
	amp := 1.0
	var sum, weight float64
	for i := 0; i < octaves; i++ {
		sum += Hash(int(math.Floor(x*freq)), seed+31*uint32(i)) * amp
		weight += amp
		amp *= 0.5
		freq *= 2
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}
