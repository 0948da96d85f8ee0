package domain

import (
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/require"
)

var (
	sampleDifference = map[int]float64{0: 0.9, 1: 0.1, 2: 0.5, 3: 0.5}
	sampleSignal     = map[int]float64{0: 0.2, 1: 0.7, 2: 0.7}
)

func TestBudget(t *testing.T) {
	require.Equal(t, 7, Budget(10, 0.7))
	require.Equal(t, 0, Budget(4, 0.2))
	require.Equal(t, 2, Budget(4, 0.5))
	require.Equal(t, 4, Budget(4, 1))
	require.Equal(t, 0, Budget(4, 0))
	require.Equal(t, 3, Budget(10, 0.3))
}

func TestTopN_TiesPreferLargerIndex(t *testing.T) {
	require.Equal(t, []int{0, 3}, TopN(sampleDifference, 4, 2))
	require.Equal(t, []int{2}, TopN(sampleSignal, 3, 1))
	require.Equal(t, []int{1, 0}, TopN(map[int]float64{}, 2, 5))
	require.Empty(t, TopN(sampleDifference, 4, 0))
}

func TestValidateRatios(t *testing.T) {
	require.NoError(t, ValidateRatios(m.Ratios{Statements: 0, TestCases: 1, Mutants: 0.5}))
	require.ErrorIs(t, ValidateRatios(m.Ratios{Statements: 1.1}), ErrInvalidRatio)
	require.ErrorIs(t, ValidateRatios(m.Ratios{Mutants: -0.1}), ErrInvalidRatio)
	require.NoError(t, ValidateRatios(m.Ratios{Statements: 0.30000000000000004, TestCases: 0.7, Mutants: 1}))
	// 0.25 would share the 0.2 artifact key
	require.ErrorIs(t, ValidateRatios(m.Ratios{Statements: 0.25, TestCases: 1, Mutants: 1}), ErrInvalidRatio)
}

func TestReductionSelector_SelectionSizes(t *testing.T) {
	pv := sampleVersion()

	for _, ratio := range []float64{0, 0.2, 0.5, 1.0} {
		s := NewReductionSelector(NewRand(1))

		sel, err := s.Select(pv, sampleDifference, sampleSignal, m.Ratios{Statements: ratio, TestCases: ratio, Mutants: ratio})
		require.NoError(t, err)

		require.Len(t, sel.Statements, Budget(pv.Lines.Len(), ratio), "ratio %v", ratio)
		require.Len(t, sel.PassedTests, Budget(pv.PassedTests.Len(), ratio), "ratio %v", ratio)
		require.Equal(t, []int{0, 1}, sel.FailedTests, "all failed tests are kept")
	}

	sel, err := NewReductionSelector(NewRand(1)).Select(pv, sampleDifference, sampleSignal, m.Ratios{Statements: 1, TestCases: 1, Mutants: 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, sel.Statements)
	require.Equal(t, []int{0, 1, 2, 3, 4}, sel.Mutants)
}

func TestReductionSelector_MutantRetention(t *testing.T) {
	pv := sampleVersion()
	ratios := m.Ratios{Statements: 0.5, TestCases: 0.4, Mutants: 0}

	sel, err := NewReductionSelector(NewRand(7)).Select(pv, sampleDifference, sampleSignal, ratios)
	require.NoError(t, err)

	require.Equal(t, []int{0, 3}, sel.Statements)
	require.Equal(t, []int{2}, sel.PassedTests)
	require.Equal(t, []int{0, 1, 4}, sel.Mutants)
	require.Equal(t, map[int]int{0: 0, 1: 0, 4: 3}, sel.MutantLine)
	require.Equal(t, map[int][]int{4: {2}}, sel.MutantPassed)
	require.Equal(t, map[int][]int{0: {0, 1}, 1: {0}}, sel.MutantFailed)

	ratios.Mutants = 1
	sel, err = NewReductionSelector(NewRand(7)).Select(pv, sampleDifference, sampleSignal, ratios)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, sel.Mutants)
}

func TestReductionSelector_SameSeedSameSelection(t *testing.T) {
	pv := sampleVersion()
	ratios := m.Ratios{Statements: 0.2, TestCases: 0.5, Mutants: 0.5}
	seed := SeedFor(0, pv.Project, "Ochiai", ratios)

	first, err := NewReductionSelector(NewRand(seed)).Select(pv, sampleDifference, sampleSignal, ratios)
	require.NoError(t, err)

	second, err := NewReductionSelector(NewRand(seed)).Select(pv, sampleDifference, sampleSignal, ratios)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NotEqual(t, seed, SeedFor(0, "Other-1", "Ochiai", ratios))
}

func TestReductionSelector_InvalidRatio(t *testing.T) {
	_, err := NewReductionSelector(NewRand(0)).Select(sampleVersion(), nil, nil, m.Ratios{TestCases: 2})
	require.ErrorIs(t, err, ErrInvalidRatio)
}

func TestParseTestSignal(t *testing.T) {
	sig, err := ParseTestSignal("")
	require.NoError(t, err)
	require.Equal(t, SignalPageRank, sig)

	sig, err = ParseTestSignal("Contribution")
	require.NoError(t, err)
	require.Equal(t, SignalContribution, sig)

	_, err = ParseTestSignal("coverage")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
