package domain

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// TestSignal selects the score used to rank passed tests for reduction.
type TestSignal string

const (
	// SignalPageRank ranks passed tests by their PageRank score in the passed view.
	SignalPageRank TestSignal = "pagerank"
	// SignalContribution ranks passed tests by their SBFL contribution.
	SignalContribution TestSignal = "contribution"
)

// ParseTestSignal validates a signal name.
func ParseTestSignal(s string) (TestSignal, error) {
	switch sig := TestSignal(strings.ToLower(strings.TrimSpace(s))); sig {
	case SignalPageRank, SignalContribution:
		return sig, nil
	case "":
		return SignalPageRank, nil
	}

	return "", fmt.Errorf("%w: reduction test signal %q", ErrInvalidConfig, s)
}

// ratioTolerance absorbs float error in ratio arithmetic.
const ratioTolerance = 1e-9

// ValidateRatios rejects any ratio outside [0, 1] or with more than one
// decimal, since artifact keys keep a single decimal.
func ValidateRatios(r m.Ratios) error {
	for name, v := range map[string]float64{
		"selected statements": r.Statements,
		"reduced test cases":  r.TestCases,
		"reduced mutants":     r.Mutants,
	} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s ratio %v not in [0, 1]", ErrInvalidRatio, name, v)
		}

		if math.Abs(v*10-math.Round(v*10)) > ratioTolerance {
			return fmt.Errorf("%w: %s ratio %v has more than one decimal", ErrInvalidRatio, name, v)
		}
	}

	return nil
}

// Budget returns floor(count * ratio). The product is nudged by 1e-9 so that
// ratios such as 0.7 of 10 yield 7 despite binary rounding.
func Budget(count int, ratio float64) int {
	n := int(math.Floor(float64(count)*ratio + ratioTolerance))

	return min(max(n, 0), count)
}

// TopN returns the n indices with the largest scores, highest first. Equal
// scores are ordered by descending index. Indices 0..count-1 missing from
// scores count as 0.
func TopN(scores map[int]float64, count, n int) []int {
	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}

	slices.SortFunc(indices, func(a, b int) int {
		sa, sb := scores[a], scores[b]
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}

		return b - a
	})

	return indices[:min(max(n, 0), count)]
}

// SeedFor derives a per-cell seed so that a project's draws do not depend on
// which other projects run or in which order.
func SeedFor(seed uint64, project, formula string, r m.Ratios) uint64 {
	h := fnv.New64a()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(project))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(formula))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(r.String()))

	return h.Sum64()
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ReducedSelection is the statement, test and mutant subset kept for MBFL.
type ReducedSelection struct {
	Statements   []int // ascending
	PassedTests  []int // ascending
	FailedTests  []int // every failed test, ascending
	Mutants      []int // retained mutants in edge12 order
	MutantLine   map[int]int
	MutantPassed map[int][]int // killing passed tests restricted to PassedTests
	MutantFailed map[int][]int
}

// ReductionSelector picks the reduced subset under a ratio budget.
type ReductionSelector struct {
	rng *rand.Rand
}

// NewReductionSelector returns a selector drawing mutant retention from rng.
func NewReductionSelector(rng *rand.Rand) *ReductionSelector {
	return &ReductionSelector{rng: rng}
}

// Select keeps the floor(|statements|*ratios.Statements) statements with the highest
// difference score and the floor(|passed|*ratios.TestCases) passed tests with the
// highest test signal. Mutants on selected statements are kept; every other
// mutant is kept with probability ratios.Mutants, one draw per mutant in edge12
// order.
func (s *ReductionSelector) Select(
	pv *m.ProgramVersion,
	statementScores map[int]float64,
	testScores map[int]float64,
	ratios m.Ratios,
) (ReducedSelection, error) {
	if err := ValidateRatios(ratios); err != nil {
		return ReducedSelection{}, err
	}

	numLines := pv.Lines.Len()
	numPassed := pv.PassedTests.Len()

	statements := TopN(statementScores, numLines, Budget(numLines, ratios.Statements))
	passed := TopN(testScores, numPassed, Budget(numPassed, ratios.TestCases))

	slices.Sort(statements)
	slices.Sort(passed)

	selected := toSet(statements)
	retainedPassed := toSet(passed)

	sel := ReducedSelection{
		Statements:   statements,
		PassedTests:  passed,
		FailedTests:  pv.FailedTests.Indices(),
		Mutants:      []int{},
		MutantLine:   map[int]int{},
		MutantPassed: map[int][]int{},
		MutantFailed: map[int][]int{},
	}

	seen := make(map[int]bool, pv.Mutants.Len())

	for _, e := range pv.MutantLines {
		mutant, line := e.Source(), e.Target()
		if seen[mutant] {
			continue
		}

		seen[mutant] = true

		if !selected[line] && s.rng.Float64() >= ratios.Mutants {
			continue
		}

		sel.MutantLine[mutant] = line
		sel.Mutants = append(sel.Mutants, mutant)
	}

	for _, e := range pv.MutantPassed {
		mutant, test := e.Source(), e.Target()
		if _, ok := sel.MutantLine[mutant]; ok && retainedPassed[test] && !slices.Contains(sel.MutantPassed[mutant], test) {
			sel.MutantPassed[mutant] = append(sel.MutantPassed[mutant], test)
		}
	}

	for _, e := range pv.MutantFailed {
		mutant, test := e.Source(), e.Target()
		if _, ok := sel.MutantLine[mutant]; ok && !slices.Contains(sel.MutantFailed[mutant], test) {
			sel.MutantFailed[mutant] = append(sel.MutantFailed[mutant], test)
		}
	}

	return sel, nil
}

func toSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}

	return set
}
