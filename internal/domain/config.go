package domain

import (
	"fmt"
)

// Config holds the pipeline settings shared by every stage.
type Config struct {
	Formulas       []FormulaName
	FormulaOptions FormulaOptions
	Weighting      Weighting
	PageRank       PageRankOptions
	TestSignal     TestSignal
	KillSets       KillSets
	TieRule        TieRule

	// Seed drives the mutant sampling; each project derives its own stream.
	Seed uint64
	// Parallel bounds the number of projects processed at once.
	Parallel int
	// RatioStep is the spacing of the sweep grid in [0, 1].
	RatioStep float64
	// SpillDir holds temporary evaluation spills. Empty uses the system temp dir.
	SpillDir string
}

// DefaultConfig returns the reference settings.
func DefaultConfig() Config {
	return Config{
		Formulas:       append([]FormulaName(nil), AllFormulas...),
		FormulaOptions: DefaultFormulaOptions(),
		Weighting:      WeightSuspicion,
		PageRank:       DefaultPageRankOptions(),
		TestSignal:     SignalPageRank,
		KillSets:       KillSetsComplete,
		TieRule:        TieCompetition,
		Seed:           0,
		Parallel:       1,
		RatioStep:      0.2,
	}
}

// Validate checks every strategy name and numeric range.
func (c Config) Validate() error {
	if len(c.Formulas) == 0 {
		return fmt.Errorf("%w: no formulas selected", ErrInvalidConfig)
	}

	for _, name := range c.Formulas {
		if _, err := NewFormula(name, c.FormulaOptions); err != nil {
			return err
		}
	}

	if c.FormulaOptions.DstarStar < 0 {
		return fmt.Errorf("%w: dstar star %v must be positive", ErrInvalidConfig, c.FormulaOptions.DstarStar)
	}

	if _, err := ParseWeighting(string(c.Weighting)); err != nil {
		return err
	}

	if err := c.PageRank.Validate(); err != nil {
		return err
	}

	if _, err := ParseTestSignal(string(c.TestSignal)); err != nil {
		return err
	}

	if _, err := ParseKillSets(string(c.KillSets)); err != nil {
		return err
	}

	if _, err := ParseTieRule(string(c.TieRule)); err != nil {
		return err
	}

	if c.Parallel < 1 {
		return fmt.Errorf("%w: parallel %d must be at least 1", ErrInvalidConfig, c.Parallel)
	}

	if c.RatioStep <= 0 || c.RatioStep > 1 {
		return fmt.Errorf("%w: ratio step %v not in (0, 1]", ErrInvalidConfig, c.RatioStep)
	}

	return nil
}
