package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, AllFormulas, cfg.Formulas)
	assert.Equal(t, 0.2, cfg.RatioStep)
	assert.Equal(t, 1, cfg.Parallel)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no formulas", func(c *Config) { c.Formulas = nil }},
		{"unknown formula", func(c *Config) { c.Formulas = []FormulaName{"Barinel"} }},
		{"negative star", func(c *Config) { c.FormulaOptions.DstarStar = -1 }},
		{"bad guard", func(c *Config) { c.FormulaOptions.TarantulaGuard = "maybe" }},
		{"bad weighting", func(c *Config) { c.Weighting = "random" }},
		{"bad damping", func(c *Config) { c.PageRank.Damping = 1 }},
		{"bad signal", func(c *Config) { c.TestSignal = "coverage" }},
		{"bad kill sets", func(c *Config) { c.KillSets = "partial" }},
		{"bad tie rule", func(c *Config) { c.TieRule = "average" }},
		{"zero parallel", func(c *Config) { c.Parallel = 0 }},
		{"zero step", func(c *Config) { c.RatioStep = 0 }},
		{"step above one", func(c *Config) { c.RatioStep = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
		})
	}
}
