package domain

import (
	"math"
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/require"
)

func rescoreSample(t *testing.T, name FormulaName, k KillSets) m.MBFLResult {
	t.Helper()

	pv := sampleVersion()
	sbfl, _ := NewAggregator(mustFormula(t, Ochiai)).Aggregate(pv)

	sel, err := NewReductionSelector(NewRand(7)).Select(pv, sampleDifference, sampleSignal,
		m.Ratios{Statements: 0.5, TestCases: 0.4, Mutants: 0})
	require.NoError(t, err)

	r, err := NewRescorer(mustFormula(t, name), k)
	require.NoError(t, err)

	return r.Rescore(pv, sbfl.Lines, sel)
}

func TestRescorer_Complete(t *testing.T) {
	result := rescoreSample(t, Ochiai, KillSetsComplete)

	require.Equal(t, "Sample-3", result.Project)
	require.Equal(t, "Ochiai", result.Formula)
	require.Equal(t, 3, result.NumOfMutants)
	require.Equal(t, 3, result.NumOfTestCases)
	require.Equal(t, 25, result.OriginalMTP)
	require.Equal(t, 9, result.CurrentMTP)

	require.Equal(t, m.KillStats{AKP: 0, ANP: 0, AKF: 2, ANF: 0}, result.Mutants[0].Stats)
	require.Equal(t, m.KillStats{AKP: 0, ANP: 0, AKF: 1, ANF: 1}, result.Mutants[1].Stats)
	require.Equal(t, m.KillStats{AKP: 1, ANP: 0, AKF: 0, ANF: 0}, result.Mutants[4].Stats)

	require.InDelta(t, 1.0, result.Mutants[0].Suspicion, 1e-12)
	require.InDelta(t, 1/math.Sqrt2, result.Mutants[1].Suspicion, 1e-12)

	require.Equal(t, []int{0, 1}, result.Lines[0].Mutants)
	require.InDelta(t, 1.0, result.Lines[0].Suspicion, 1e-12)
	require.Equal(t, []int{4}, result.Lines[3].Mutants)
	require.Equal(t, 0.0, result.Lines[3].Suspicion)
}

func TestRescorer_LineWithoutMutantsScoresZero(t *testing.T) {
	result := rescoreSample(t, Ochiai, KillSetsComplete)

	require.Len(t, result.Lines, 4)
	require.Empty(t, result.Lines[1].Mutants)
	require.Equal(t, 0.0, result.Lines[1].Suspicion)
	require.Equal(t, 0.0, result.Lines[2].Suspicion)
}

func TestRescorer_NegativeScoresDoNotLowerLines(t *testing.T) {
	result := rescoreSample(t, OP2, KillSetsComplete)

	require.Less(t, result.Mutants[4].Suspicion, 0.0)
	require.Equal(t, 0.0, result.Lines[3].Suspicion)
}

func TestRescorer_Legacy(t *testing.T) {
	result := rescoreSample(t, Ochiai, KillSetsLegacy)

	require.Equal(t, m.KillStats{AKP: 0, ANP: 0, AKF: 2, ANF: 0}, result.Mutants[0].Stats)
	// no passed test kills it, so the failed side has no non-killed tests
	require.Equal(t, m.KillStats{AKP: 0, ANP: 0, AKF: 1, ANF: 0}, result.Mutants[1].Stats)
	// the passed side is not restricted to retained tests
	require.Equal(t, m.KillStats{AKP: 1, ANP: 2, AKF: 0, ANF: 0}, result.Mutants[4].Stats)

	require.InDelta(t, 1.0, result.Mutants[1].Suspicion, 1e-12)
}

func TestRescorer_LegacySharesTestIndices(t *testing.T) {
	r, err := NewRescorer(mustFormula(t, Ochiai), KillSetsLegacy)
	require.NoError(t, err)

	// passed test 0 and failed test 0 collide in the mixed sets
	stats := r.killStats(
		setOf(2, []int{0, 1}),
		setOf(1, []int{0}),
		setOf(2, []int{1}),
		setOf(1, []int{0}),
		setOf(2, []int{0, 1}),
	)
	require.Equal(t, m.KillStats{AKP: 2, ANP: 1, AKF: 1, ANF: 1}, stats)

	complete, err := NewRescorer(mustFormula(t, Ochiai), KillSetsComplete)
	require.NoError(t, err)

	stats = complete.killStats(
		setOf(2, []int{0, 1}),
		setOf(1, []int{0}),
		setOf(2, []int{1}),
		setOf(1, []int{0}),
		setOf(2, []int{0, 1}),
	)
	require.Equal(t, m.KillStats{AKP: 1, ANP: 1, AKF: 1, ANF: 0}, stats)
}

func TestParseKillSets(t *testing.T) {
	k, err := ParseKillSets("")
	require.NoError(t, err)
	require.Equal(t, KillSetsComplete, k)

	_, err = NewRescorer(mustFormula(t, Ochiai), "partial")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
