package main

import (
	"errors"
	"math"
)

var (
	// ErrNumTerms indicates the wavefunction needs at least one harmonic.
	ErrNumTerms = errors.New("config: NumTerms must be >= 1")
	// ErrNumSamples indicates a non-positive nominal sample count.
	ErrNumSamples = errors.New("config: NumSamples must be >= 1")
	// ErrMaxPhase indicates an empty or inverted angle domain.
	ErrMaxPhase = errors.New("config: MaxPhase must be > 0")
	// ErrNumZones indicates a negative landing-zone count.
	ErrNumZones = errors.New("config: NumZones must be >= 0")
	// ErrZoneWidths indicates a negative landing-zone width.
	ErrZoneWidths = errors.New("config: ZoneWidths entries must be >= 0")
	// ErrSkipProb indicates a zone skip probability outside [0, 1].
	ErrSkipProb = errors.New("config: ZoneSkipProb must be within [0, 1]")
	// ErrScaleX indicates a zero x scale while zones are enabled; the
	// zone reset maps output x back to an angle by dividing by ScaleX.
	ErrScaleX = errors.New("config: ScaleX must be nonzero when NumZones > 0")
)

// Seven out of eight zone opportunities are deferred to a later sample,
// so the flats land off the regular slot grid.
const defaultZoneSkipProb = 7.0 / 8.0

// TerrainConfig bundles every knob for one generation call. Build it with
// DefaultTerrainConfig and override fields as needed; a zero value set by
// the caller is taken at face value, defaults are never re-substituted.
type TerrainConfig struct {
	NumTerms   int     // harmonics in the wavefunction
	MaxPhase   float64 // sampling covers [0, MaxPhase)
	NumSamples int     // nominal sample count over the domain
	ScaleX     float64 // angle -> output x multiplier
	ScaleY     float64 // wave value -> output y multiplier
	OffsetY    float64 // vertical baseline shift

	MaxDeviationX float64 // max symmetric random jitter on each sample's x
	MaxDeviationY float64 // max symmetric random jitter on each sample's y

	NumZones     int        // flat landing-zone segments to attempt to place
	ZoneWidths   [3]float64 // zone width variants: wide, medium, narrow
	ZoneSkipProb float64    // chance to defer a due zone to a later sample

	// SmoothDeviation replaces the uniform y jitter with a coherent
	// simplex-noise field of the same magnitude.
	SmoothDeviation bool

	// Seed for the generator's private RNG; 0 picks a time-based seed.
	Seed int64
}

// DefaultTerrainConfig returns the documented defaults for every option.
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		NumTerms:     3,
		MaxPhase:     2 * math.Pi,
		NumSamples:   100,
		ScaleX:       100,
		ScaleY:       100,
		ZoneSkipProb: defaultZoneSkipProb,
	}
}

// Validate rejects configurations that would produce garbage coordinates.
func (c TerrainConfig) Validate() error {
	if c.NumTerms < 1 {
		return ErrNumTerms
	}
	if c.NumSamples < 1 {
		return ErrNumSamples
	}
	if c.MaxPhase <= 0 {
		return ErrMaxPhase
	}
	if c.NumZones < 0 {
		return ErrNumZones
	}
	for _, w := range c.ZoneWidths {
		if w < 0 {
			return ErrZoneWidths
		}
	}
	if c.ZoneSkipProb < 0 || c.ZoneSkipProb > 1 {
		return ErrSkipProb
	}
	if c.NumZones > 0 && c.ScaleX == 0 {
		return ErrScaleX
	}
	return nil
}
