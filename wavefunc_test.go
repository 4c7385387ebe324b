package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWaveFunction_AllZeroFlagsIsZero(t *testing.T) {
	wave := BuildWaveFunction(TermSet{{0, 0}, {0, 0}, {0, 0}})
	for a := -10.0; a <= 10.0; a += 0.37 {
		if got := wave(a); got != 0 {
			t.Fatalf("wave(%f) = %f; want 0 for all-zero term set", a, got)
		}
	}
}

func TestBuildWaveFunction_ZeroAngleSumsCosineFlags(t *testing.T) {
	cases := []struct {
		name string
		ts   TermSet
		want float64
	}{
		{"NoCosines", TermSet{{1, 0}, {1, 0}}, 0},
		{"OneCosine", TermSet{{0, 1}, {1, 0}}, 1},
		{"AllCosines", TermSet{{1, 1}, {0, 1}, {1, 1}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wave := BuildWaveFunction(tc.ts)
			// Every sine term vanishes at zero, so f(0) counts the
			// enabled cosine flags.
			require.InDelta(t, tc.want, wave(0), 1e-12)
		})
	}
}

func TestBuildWaveFunction_SingleHarmonics(t *testing.T) {
	sine := BuildWaveFunction(TermSet{{1, 0}})
	cosine := BuildWaveFunction(TermSet{{0, 1}})
	second := BuildWaveFunction(TermSet{{0, 0}, {1, 0}})

	for a := 0.0; a < 2*math.Pi; a += 0.1 {
		require.Equal(t, math.Sin(a), sine(a))
		require.Equal(t, math.Cos(a), cosine(a))
		require.Equal(t, math.Sin(2*a), second(a))
	}
}

func TestBuildWaveFunction_FiniteForFiniteAngles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	wave := BuildWaveFunction(DrawTermSet(rng, 8))

	for i := 0; i < 1000; i++ {
		a := (rng.Float64()*2 - 1) * 1e6
		y := wave(a)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("wave(%f) = %f; want finite", a, y)
		}
	}
}

func TestDrawTermSet_FlagsAreBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ts := DrawTermSet(rng, 50)
	require.Len(t, ts, 50)
	for i, term := range ts {
		if term.Sine < 0 || term.Sine > 1 || term.Cosine < 0 || term.Cosine > 1 {
			t.Fatalf("term %d has non-binary flags: %+v", i+1, term)
		}
	}
}

func TestDrawTermSet_DeterministicForSeed(t *testing.T) {
	a := DrawTermSet(rand.New(rand.NewSource(99)), 10)
	b := DrawTermSet(rand.New(rand.NewSource(99)), 10)
	require.Equal(t, a, b)
}
