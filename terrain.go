package main

import (
	"math/rand"
	"time"
)

// Coordinate is one terrain vertex in output (screen) space.
type Coordinate struct {
	X float64
	Y float64
}

// Terrain is an ordered left-to-right vertex sequence, drawn later as a
// connected polyline in array order.
type Terrain []Coordinate

// Generator produces terrains from one immutable config. Each generation
// call draws its own TermSet and owns its output; the only state carried
// between calls is the RNG stream, so a fixed seed replays exactly.
type Generator struct {
	cfg   TerrainConfig
	rng   *rand.Rand
	noise *NoiseGenerator
}

// NewGenerator validates cfg and prepares a seeded generator.
func NewGenerator(cfg TerrainConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	if cfg.SmoothDeviation {
		g.noise = NewNoiseGenerator(seed)
	}
	return g, nil
}

// Generate rolls a fresh TermSet and samples a full terrain from it.
func (g *Generator) Generate() Terrain {
	ts := DrawTermSet(g.rng, g.cfg.NumTerms)
	LogDebug("generating terrain: %d samples, term set %v", g.cfg.NumSamples, ts)
	return g.generateWithWave(BuildWaveFunction(ts))
}

// generateWithWave walks the angle domain with a randomized step, converts
// each sample to screen space with independent jitter, and splices in flat
// landing zones at pseudo-regular intervals.
//
// The loop is step-counted: with no zones the output always has exactly
// cfg.NumSamples vertices, regardless of where step jitter leaves the final
// angle. Only a zone reset, which jumps the angle cursor forward, can end
// the walk early at the domain boundary.
func (g *Generator) generateWithWave(wave WaveFunc) Terrain {
	cfg := g.cfg

	da := cfg.MaxPhase / float64(cfg.NumSamples)
	dda := 0.4 * da

	var zoneSpacing float64
	if cfg.NumZones > 0 {
		zoneSpacing = cfg.MaxPhase / float64(cfg.NumZones)
	}

	terrain := make(Terrain, 0, cfg.NumSamples+cfg.NumZones)
	zonesPlaced := 0
	a := 0.0

	for i := 0; i < cfg.NumSamples; i++ {
		x := a*cfg.ScaleX + g.deviationX()
		y := cfg.OffsetY - wave(a)*cfg.ScaleY + g.deviationY(a)
		terrain = append(terrain, Coordinate{X: x, Y: y})

		// Landing zones: one equal-width target slot per zone. Once the
		// cursor passes an unfilled slot's start the zone becomes due,
		// but most opportunities are deferred to a later sample so the
		// flats don't land on a rigid grid.
		for cfg.NumZones > 0 && zonesPlaced < cfg.NumZones &&
			a/zoneSpacing-float64(zonesPlaced) > 0 {
			if g.rng.Float64() < cfg.ZoneSkipProb {
				break
			}
			width := cfg.ZoneWidths[g.rng.Intn(len(cfg.ZoneWidths))]
			x += width
			terrain = append(terrain, Coordinate{X: x, Y: y})
			a = x / cfg.ScaleX
			zonesPlaced++
		}
		if cfg.NumZones > 0 && a >= cfg.MaxPhase {
			break
		}

		a += da + (g.rng.Float64()*2-1)*dda
	}

	return terrain
}

func (g *Generator) deviationX() float64 {
	if g.cfg.MaxDeviationX == 0 {
		return 0
	}
	return (g.rng.Float64()*2 - 1) * g.cfg.MaxDeviationX
}

func (g *Generator) deviationY(a float64) float64 {
	if g.cfg.MaxDeviationY == 0 {
		return 0
	}
	if g.noise != nil {
		return g.noise.GenerateFBM(a*0.5, 0, 3, 0.5) * g.cfg.MaxDeviationY
	}
	return (g.rng.Float64()*2 - 1) * g.cfg.MaxDeviationY
}
