package domain

import (
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/bits-and-blooms/bitset"
)

// Coverage holds the covering-test sets of every statement and method of a
// program version. Passed and failed tests live in separate index spaces.
type Coverage struct {
	NumPassed int
	NumFailed int

	LineFailed   []*bitset.BitSet
	LinePassed   []*bitset.BitSet
	MethodFailed []*bitset.BitSet
	MethodPassed []*bitset.BitSet

	MethodLines [][]int
}

// BuildCoverage folds the coverage and containment edges of pv into sets.
// Duplicate edges count once.
func BuildCoverage(pv *m.ProgramVersion) *Coverage {
	numLines := pv.Lines.Len()
	numMethods := pv.Methods.Len()

	c := &Coverage{
		NumPassed:    pv.PassedTests.Len(),
		NumFailed:    pv.FailedTests.Len(),
		LineFailed:   newSets(numLines, pv.FailedTests.Len()),
		LinePassed:   newSets(numLines, pv.PassedTests.Len()),
		MethodFailed: newSets(numMethods, pv.FailedTests.Len()),
		MethodPassed: newSets(numMethods, pv.PassedTests.Len()),
		MethodLines:  make([][]int, numMethods),
	}

	for _, e := range pv.LineFailed {
		c.LineFailed[e.Source()].Set(uint(e.Target()))
	}

	for _, e := range pv.LinePassed {
		c.LinePassed[e.Source()].Set(uint(e.Target()))
	}

	seen := make(map[m.Edge]bool, len(pv.MethodLines))

	for _, e := range pv.MethodLines {
		if seen[e] {
			continue
		}

		seen[e] = true
		method, line := e.Source(), e.Target()
		c.MethodLines[method] = append(c.MethodLines[method], line)
		c.MethodFailed[method].InPlaceUnion(c.LineFailed[line])
		c.MethodPassed[method].InPlaceUnion(c.LinePassed[line])
	}

	return c
}

func newSets(n, capacity int) []*bitset.BitSet {
	sets := make([]*bitset.BitSet, n)
	for i := range sets {
		sets[i] = bitset.New(uint(capacity))
	}

	return sets
}

func confusion(failed, passed *bitset.BitSet, numFailed, numPassed int) m.ConfusionStats {
	ef := int(failed.Count())
	ep := int(passed.Count())

	return m.ConfusionStats{
		EF: ef,
		EP: ep,
		NF: numFailed - ef,
		NP: numPassed - ep,
	}
}

// LineStats returns the spectrum counts of every statement.
func (c *Coverage) LineStats() map[int]m.ConfusionStats {
	stats := make(map[int]m.ConfusionStats, len(c.LineFailed))
	for line := range c.LineFailed {
		stats[line] = confusion(c.LineFailed[line], c.LinePassed[line], c.NumFailed, c.NumPassed)
	}

	return stats
}

// MethodStats returns the spectrum counts of every method, computed from the
// union of its statements' covering tests.
func (c *Coverage) MethodStats() map[int]m.ConfusionStats {
	stats := make(map[int]m.ConfusionStats, len(c.MethodFailed))
	for method := range c.MethodFailed {
		stats[method] = confusion(c.MethodFailed[method], c.MethodPassed[method], c.NumFailed, c.NumPassed)
	}

	return stats
}

// TestCases returns the covering tests of a statement in ascending order.
func (c *Coverage) TestCases(line int) m.TestCases {
	return m.TestCases{
		Passed: members(c.LinePassed[line]),
		Failed: members(c.LineFailed[line]),
	}
}

func members(set *bitset.BitSet) []int {
	out := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

// Aggregator computes SBFL suspicion and test contribution for one program version.
type Aggregator struct {
	formula Formula
}

// NewAggregator returns an Aggregator scoring with f in SBFL mode.
func NewAggregator(f Formula) *Aggregator {
	return &Aggregator{formula: f}
}

// Aggregate scores every statement and method of pv.
func (a *Aggregator) Aggregate(pv *m.ProgramVersion) (m.SBFLResult, m.Contribution) {
	coverage := BuildCoverage(pv)

	methods := ScoreAll(a.formula, ModeSBFL, coverage.MethodStats())
	scored := ScoreAll(a.formula, ModeSBFL, coverage.LineStats())

	lines := make(map[int]m.LineRecord, len(scored))
	for line, record := range scored {
		lines[line] = m.LineRecord{
			Stats:     record.Stats,
			Suspicion: record.Suspicion,
			TestCases: coverage.TestCases(line),
		}
	}

	result := m.SBFLResult{
		Project: pv.Project,
		Formula: string(a.formula.Name()),
		Methods: methods,
		Lines:   lines,
	}

	return result, coverage.Contribution(result.LineScores())
}

// Contribution sums, for every test, the suspicion of the distinct statements it covers.
func (c *Coverage) Contribution(lineScores map[int]float64) m.Contribution {
	contribution := m.Contribution{
		Failed: make(map[int]float64, c.NumFailed),
		Passed: make(map[int]float64, c.NumPassed),
	}

	for test := range c.NumFailed {
		contribution.Failed[test] = 0
	}

	for test := range c.NumPassed {
		contribution.Passed[test] = 0
	}

	for line := range c.LineFailed {
		score := lineScores[line]

		for _, test := range members(c.LineFailed[line]) {
			contribution.Failed[test] += score
		}

		for _, test := range members(c.LinePassed[line]) {
			contribution.Passed[test] += score
		}
	}

	return contribution
}
