package domain

import (
	m "flreduce.dev/pkg/flreduce/internal/model"
)

func indexMap(prefix string, n int) m.IndexMap {
	im := make(m.IndexMap, n)
	for i := range n {
		im[prefix+string(rune('a'+i))] = i
	}

	return im
}

// twoLineVersion: one failed test covering line 0, one passed test covering line 1.
func twoLineVersion() *m.ProgramVersion {
	return &m.ProgramVersion{
		Project:     "Toy-1",
		Methods:     indexMap("m", 1),
		Lines:       indexMap("l", 2),
		Mutants:     m.IndexMap{},
		FailedTests: indexMap("f", 1),
		PassedTests: indexMap("p", 1),
		LineFailed:  []m.Edge{{0, 0}},
		LinePassed:  []m.Edge{{1, 0}},
		MethodLines: []m.Edge{{0, 0}, {0, 1}},
		Faults:      m.FaultSet{0: {0}},
	}
}

// sampleVersion has two methods of two lines each, two failed and three passed
// tests and five mutants.
func sampleVersion() *m.ProgramVersion {
	return &m.ProgramVersion{
		Project:      "Sample-3",
		Methods:      indexMap("m", 2),
		Lines:        indexMap("l", 4),
		Mutants:      indexMap("u", 5),
		FailedTests:  indexMap("f", 2),
		PassedTests:  indexMap("p", 3),
		LineFailed:   []m.Edge{{0, 0}, {0, 1}, {1, 0}, {2, 1}, {0, 0}},
		LinePassed:   []m.Edge{{1, 0}, {2, 1}, {3, 0}, {3, 1}, {3, 2}},
		MethodLines:  []m.Edge{{0, 0}, {0, 1}, {1, 2}, {1, 3}},
		MutantLines:  []m.Edge{{0, 0}, {1, 0}, {2, 1}, {3, 2}, {4, 3}},
		MutantPassed: []m.Edge{{2, 0}, {3, 1}, {4, 2}},
		MutantFailed: []m.Edge{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {3, 1}},
		Faults:       m.FaultSet{0: {0}},
		Calls:        []m.CallEdges{{Method: 0, Targets: []int{1}}},
	}
}
