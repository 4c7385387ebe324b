package main

import (
	"math"
	"math/rand"
)

// HarmonicTerm holds the selector flags for one sine/cosine pair.
// Flags are always 0 or 1; a 0 removes that harmonic from the sum,
// a 1 enables it with unit amplitude.
type HarmonicTerm struct {
	Sine   int
	Cosine int
}

// TermSet is the per-generation selection of active harmonics,
// indexed from term 1 at position 0. Immutable once drawn.
type TermSet []HarmonicTerm

// WaveFunc maps an angle in radians to a real wave value.
type WaveFunc func(angle float64) float64

// DrawTermSet rolls a fresh set of harmonic selector flags, two independent
// coin flips per term. With n terms there are 2^(2n) reachable wave shapes.
func DrawTermSet(rng *rand.Rand, numTerms int) TermSet {
	ts := make(TermSet, numTerms)
	for i := range ts {
		ts[i] = HarmonicTerm{
			Sine:   rng.Intn(2),
			Cosine: rng.Intn(2),
		}
	}
	return ts
}

// BuildWaveFunction sums the enabled harmonics of ts into a single callable:
//
//	f(a) = sum over i of s_i*sin(i*a) + c_i*cos(i*a)
//
// The returned function is pure and safe to call with any finite angle.
// A NaN result is logged and passed through rather than swallowed, so a
// degenerate wave still produces a best-effort terrain downstream.
func BuildWaveFunction(ts TermSet) WaveFunc {
	terms := make(TermSet, len(ts))
	copy(terms, ts)

	return func(angle float64) float64 {
		var y float64
		for i := len(terms); i >= 1; i-- {
			t := terms[i-1]
			if t.Sine != 0 {
				y += math.Sin(float64(i) * angle)
			}
			if t.Cosine != 0 {
				y += math.Cos(float64(i) * angle)
			}
		}
		if math.IsNaN(y) {
			LogError("wave function evaluated to NaN at angle %f (terms: %v)", angle, terms)
		}
		return y
	}
}
