package main

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseGenerator wraps a seeded simplex field for the smooth-deviation
// sampling mode. Same seed, same field.
type NoiseGenerator struct {
	noise opensimplex.Noise
}

func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		noise: opensimplex.New(seed),
	}
}

// GenerateFBM sums octaves of simplex noise, halving amplitude by
// persistence and doubling frequency per octave. Output stays in [-1, 1].
func (ng *NoiseGenerator) GenerateFBM(x, y float64, octaves int, persistence float64) float64 {
	var total, frequency, amplitude, maxValue float64 = 0, 1, 1, 0

	for i := 0; i < octaves; i++ {
		total += ng.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxValue
}
