package model

// ConfusionStats holds the spectrum counts of one statement or method.
//
//	EF: failed tests covering the entity
//	EP: passed tests covering the entity
//	NF: failed tests not covering the entity
//	NP: passed tests not covering the entity
type ConfusionStats struct {
	EF int `json:"ef"`
	EP int `json:"ep"`
	NF int `json:"nf"`
	NP int `json:"np"`
}

// KillStats holds the mutant-kill counts of one mutant.
type KillStats struct {
	AKP int `json:"akp"` // killed by passed tests
	ANP int `json:"anp"` // passed tests that did not kill
	AKF int `json:"akf"` // killed by failed tests
	ANF int `json:"anf"` // failed tests that did not kill
}

// Confusion maps the killed analogues onto formula inputs (kf, kp, nf, np).
func (k KillStats) Confusion() ConfusionStats {
	return ConfusionStats{
		EF: k.AKF,
		EP: k.AKP,
		NF: k.ANF,
		NP: k.ANP,
	}
}

// SuspicionRecord is the result of scoring one entity with a formula.
type SuspicionRecord struct {
	Stats     ConfusionStats `json:"stats"`
	Suspicion float64        `json:"suspicion"`
}

// TestCases lists the tests covering a statement.
type TestCases struct {
	Passed []int `json:"passed_test_cases"`
	Failed []int `json:"failed_test_cases"`
}

// LineRecord is a statement-level SBFL record together with its covering tests.
type LineRecord struct {
	Stats     ConfusionStats `json:"stats"`
	Suspicion float64        `json:"suspicion"`
	TestCases TestCases      `json:"test_cases"`
}

// MutantRecord is the MBFL score of one retained mutant.
type MutantRecord struct {
	Stats     KillStats `json:"stats"`
	Suspicion float64   `json:"suspicion"`
}

// LineMutants is the statement-level MBFL record: the retained mutants of the
// statement and the maximum of their suspicion.
type LineMutants struct {
	Mutants   []int   `json:"mutants"`
	Suspicion float64 `json:"suspicion"`
}
