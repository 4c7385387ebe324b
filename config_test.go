package main

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultTerrainConfig(t *testing.T) {
	cfg := DefaultTerrainConfig()
	if cfg.NumTerms != 3 || cfg.NumSamples != 100 {
		t.Fatalf("unexpected term/sample defaults: %+v", cfg)
	}
	if cfg.MaxPhase != 2*math.Pi {
		t.Errorf("MaxPhase = %f; want 2π", cfg.MaxPhase)
	}
	if cfg.ScaleX != 100 || cfg.ScaleY != 100 || cfg.OffsetY != 0 {
		t.Errorf("unexpected scale defaults: %+v", cfg)
	}
	if cfg.ZoneSkipProb != 7.0/8.0 {
		t.Errorf("ZoneSkipProb = %f; want 7/8", cfg.ZoneSkipProb)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}

// TestValidate_Errors verifies that each malformed field maps to its
// sentinel error.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TerrainConfig)
		err    error
	}{
		{"ZeroTerms", func(c *TerrainConfig) { c.NumTerms = 0 }, ErrNumTerms},
		{"NegativeTerms", func(c *TerrainConfig) { c.NumTerms = -3 }, ErrNumTerms},
		{"ZeroSamples", func(c *TerrainConfig) { c.NumSamples = 0 }, ErrNumSamples},
		{"ZeroPhase", func(c *TerrainConfig) { c.MaxPhase = 0 }, ErrMaxPhase},
		{"NegativePhase", func(c *TerrainConfig) { c.MaxPhase = -1 }, ErrMaxPhase},
		{"NegativeZones", func(c *TerrainConfig) { c.NumZones = -1 }, ErrNumZones},
		{"NegativeWidth", func(c *TerrainConfig) { c.ZoneWidths[1] = -5 }, ErrZoneWidths},
		{"SkipProbTooHigh", func(c *TerrainConfig) { c.ZoneSkipProb = 1.5 }, ErrSkipProb},
		{"SkipProbNegative", func(c *TerrainConfig) { c.ZoneSkipProb = -0.1 }, ErrSkipProb},
		{"ZonesWithoutScaleX", func(c *TerrainConfig) { c.NumZones = 2; c.ScaleX = 0 }, ErrScaleX},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTerrainConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// A literal zero supplied by the caller is a valid explicit value; defaults
// come only from DefaultTerrainConfig, never from re-substitution.
func TestValidate_ExplicitZeroRespected(t *testing.T) {
	cfg := DefaultTerrainConfig()
	cfg.ScaleY = 0
	cfg.OffsetY = 0
	cfg.MaxDeviationX = 0
	cfg.MaxDeviationY = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("explicit zeros must validate, got %v", err)
	}

	cfg.Seed = 123
	gen, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	for _, c := range gen.Generate() {
		if c.Y != 0 {
			t.Fatalf("ScaleY=0 and OffsetY=0 must flatten every y, got %f", c.Y)
		}
	}
}
