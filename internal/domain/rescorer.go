package domain

import (
	"fmt"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/bits-and-blooms/bitset"
)

// KillSets selects the set algebra that turns kills into KillStats.
type KillSets string

const (
	// KillSetsComplete intersects the statement's passed tests with the retained
	// passed tests and counts non-killed tests on both sides.
	KillSetsComplete KillSets = "complete"
	// KillSetsLegacy reproduces the historical scripts: passed and failed test
	// indices share one killed set and one non-killed set, so equal indices on
	// both sides count together. The passed side is only populated when a
	// retained passed test kills the mutant and is not restricted to retained
	// tests. The non-killed set holds only passed tests.
	KillSetsLegacy KillSets = "legacy"
)

// ParseKillSets validates a kill-set variant name.
func ParseKillSets(s string) (KillSets, error) {
	switch k := KillSets(strings.ToLower(strings.TrimSpace(s))); k {
	case KillSetsComplete, KillSetsLegacy:
		return k, nil
	case "":
		return KillSetsComplete, nil
	}

	return "", fmt.Errorf("%w: mbfl kill sets %q", ErrInvalidConfig, s)
}

// Rescorer computes MBFL suspicion over a reduced selection.
type Rescorer struct {
	formula  Formula
	killSets KillSets
}

// NewRescorer returns a Rescorer scoring mutants with f in MBFL mode.
func NewRescorer(f Formula, k KillSets) (*Rescorer, error) {
	k, err := ParseKillSets(string(k))
	if err != nil {
		return nil, err
	}

	return &Rescorer{formula: f, killSets: k}, nil
}

// Rescore scores every retained mutant and assigns each statement the maximum
// score of its retained mutants, or 0 when none survive.
func (r *Rescorer) Rescore(pv *m.ProgramVersion, lines map[int]m.LineRecord, sel ReducedSelection) m.MBFLResult {
	numPassed := pv.PassedTests.Len()
	numFailed := pv.FailedTests.Len()

	retained := bitset.New(uint(numPassed))
	for _, test := range sel.PassedTests {
		retained.Set(uint(test))
	}

	mutants := make(map[int]m.MutantRecord, len(sel.Mutants))

	result := m.MBFLResult{
		Project:        pv.Project,
		Formula:        string(r.formula.Name()),
		NumOfMutants:   len(sel.Mutants),
		NumOfTestCases: len(sel.FailedTests) + len(sel.PassedTests),
		OriginalMTP:    pv.Mutants.Len() * (numFailed + numPassed),
		CurrentMTP:     len(sel.Mutants) * (len(sel.FailedTests) + len(sel.PassedTests)),
		Lines:          make(map[int]m.LineMutants, pv.Lines.Len()),
		Mutants:        mutants,
	}

	for line := range pv.Lines.Len() {
		result.Lines[line] = m.LineMutants{Mutants: []int{}, Suspicion: 0}
	}

	for _, mutant := range sel.Mutants {
		line := sel.MutantLine[mutant]
		record := lines[line]

		stats := r.killStats(
			setOf(numPassed, record.TestCases.Passed),
			setOf(numFailed, record.TestCases.Failed),
			setOf(numPassed, sel.MutantPassed[mutant]),
			setOf(numFailed, sel.MutantFailed[mutant]),
			retained,
		)

		score := r.formula.Score(stats.Confusion(), ModeMBFL)
		mutants[mutant] = m.MutantRecord{Stats: stats, Suspicion: score}

		entry := result.Lines[line]
		entry.Mutants = append(entry.Mutants, mutant)

		if score > entry.Suspicion {
			entry.Suspicion = score
		}

		result.Lines[line] = entry
	}

	return result
}

func (r *Rescorer) killStats(linePassed, lineFailed, killedPassed, killedFailed, retained *bitset.BitSet) m.KillStats {
	if r.killSets == KillSetsLegacy {
		return legacyKillStats(linePassed, lineFailed, killedPassed, killedFailed)
	}

	passed := linePassed.Intersection(retained)

	return m.KillStats{
		AKP: int(killedPassed.IntersectionCardinality(passed)),
		ANP: int(passed.DifferenceCardinality(killedPassed)),
		AKF: int(killedFailed.IntersectionCardinality(lineFailed)),
		ANF: int(lineFailed.DifferenceCardinality(killedFailed)),
	}
}

// legacyKillStats mixes passed and failed test indices in the same sets.
func legacyKillStats(linePassed, lineFailed, killedPassed, killedFailed *bitset.BitSet) m.KillStats {
	killed := killedPassed.Union(killedFailed)
	passed, failed, nonKilled := bitset.New(0), bitset.New(0), bitset.New(0)

	if killedPassed.Any() {
		passed = linePassed
		nonKilled = linePassed.Difference(killedPassed)
	}

	if killedFailed.Any() {
		failed = lineFailed
	}

	return m.KillStats{
		AKP: int(killed.IntersectionCardinality(passed)),
		ANP: int(nonKilled.IntersectionCardinality(passed)),
		AKF: int(killed.IntersectionCardinality(failed)),
		ANF: int(nonKilled.IntersectionCardinality(failed)),
	}
}

func setOf(capacity int, members []int) *bitset.BitSet {
	set := bitset.New(uint(capacity))
	for _, v := range members {
		set.Set(uint(v))
	}

	return set
}
