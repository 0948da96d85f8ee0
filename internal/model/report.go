package model

import (
	"encoding/json"
	"fmt"
)

// SBFLResult is the persisted SBFL artifact of one project and formula.
type SBFLResult struct {
	Project string                  `json:"proj"`
	Formula string                  `json:"formula"`
	Methods map[int]SuspicionRecord `json:"method suspicion"`
	Lines   map[int]LineRecord      `json:"line suspicion"`
}

// LineScores returns the statement suspicion map.
func (r SBFLResult) LineScores() map[int]float64 {
	scores := make(map[int]float64, len(r.Lines))
	for line, record := range r.Lines {
		scores[line] = record.Suspicion
	}

	return scores
}

// Contribution holds the suspicion-weighted value of every test case.
type Contribution struct {
	Failed map[int]float64 `json:"ftest"`
	Passed map[int]float64 `json:"rtest"`
}

// RankLengths records the node counts of a PageRank artifact.
type RankLengths struct {
	Methods     int `json:"methods"`
	Statements  int `json:"statements"`
	PassedTests int `json:"rtest"`
	FailedTests int `json:"ftest"`
}

// RankArtifact is a persisted PageRank vector. Its JSON keys carry the prefix:
// {"<prefix>_lengths": {...}, "<prefix>_results": [...]}.
type RankArtifact struct {
	Prefix  string
	Lengths RankLengths
	Results []float64
}

// MarshalJSON implements json.Marshaler.
func (r RankArtifact) MarshalJSON() ([]byte, error) {
	results := r.Results
	if results == nil {
		results = []float64{}
	}

	return json.Marshal(map[string]any{
		r.Prefix + "_lengths": r.Lengths,
		r.Prefix + "_results": results,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Prefix must be set beforehand.
func (r *RankArtifact) UnmarshalJSON(data []byte) error {
	if r.Prefix == "" {
		return fmt.Errorf("decode rank artifact: prefix not set")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode rank artifact: %w", err)
	}

	lengths, ok := raw[r.Prefix+"_lengths"]
	if !ok {
		return fmt.Errorf("decode rank artifact: missing %s_lengths", r.Prefix)
	}

	if err := json.Unmarshal(lengths, &r.Lengths); err != nil {
		return fmt.Errorf("decode rank artifact lengths: %w", err)
	}

	results, ok := raw[r.Prefix+"_results"]
	if !ok {
		return fmt.Errorf("decode rank artifact: missing %s_results", r.Prefix)
	}

	if err := json.Unmarshal(results, &r.Results); err != nil {
		return fmt.Errorf("decode rank artifact results: %w", err)
	}

	return nil
}

// MBFLResult is the persisted MBFL artifact of one project, formula and ratio triple.
type MBFLResult struct {
	Project        string               `json:"proj"`
	Formula        string               `json:"formula"`
	NumOfMutants   int                  `json:"num_of_mutants"`
	NumOfTestCases int                  `json:"num_of_test_cases"`
	OriginalMTP    int                  `json:"original_MTP"`
	CurrentMTP     int                  `json:"current_MTP"`
	Lines          map[int]LineMutants  `json:"line suspicion"`
	Mutants        map[int]MutantRecord `json:"mutant suspicion"`
}

// LineScores returns the statement suspicion map.
func (r MBFLResult) LineScores() map[int]float64 {
	scores := make(map[int]float64, len(r.Lines))
	for line, record := range r.Lines {
		scores[line] = record.Suspicion
	}

	return scores
}

// Technique names a fault localization family.
type Technique string

const (
	// TechniqueSBFL ranks statements by spectrum formulas.
	TechniqueSBFL Technique = "sbfl"
	// TechniqueMBFL ranks statements by reduced mutant-kill formulas.
	TechniqueMBFL Technique = "mbfl"
)

// FaultEvaluation is the ranking quality of one faulty method.
type FaultEvaluation struct {
	Method      int     `json:"method"`
	Candidates  int     `json:"candidates"`
	Ranked      int     `json:"ranked"`
	Top1        bool    `json:"top1"`
	Top3        bool    `json:"top3"`
	Top5        bool    `json:"top5"`
	Top10       bool    `json:"top10"`
	FirstRank   *int    `json:"first_rank,omitempty"`
	AverageRank float64 `json:"average_rank"`
}

// ProjectEvaluation is the ranking quality of one project.
type ProjectEvaluation struct {
	Project    string            `json:"project_name"`
	Technique  Technique         `json:"technique"`
	Formula    string            `json:"formula"`
	Ratios     *Ratios           `json:"ratios,omitempty"`
	Top1       int               `json:"top1"`
	Top3       int               `json:"top3"`
	Top5       int               `json:"top5"`
	Top10      int               `json:"top10"`
	FR         float64           `json:"FR"`
	AR         float64           `json:"AR"`
	FaultCount int               `json:"fault_count"`
	Located    int               `json:"located"`
	Faults     []FaultEvaluation `json:"faults"`
}

// EvaluationSummary aggregates project evaluations of one technique, formula
// and ratio triple.
type EvaluationSummary struct {
	Technique  Technique `json:"technique"`
	Formula    string    `json:"formula"`
	Ratios     *Ratios   `json:"ratios,omitempty"`
	Top1       int       `json:"top1"`
	Top3       int       `json:"top3"`
	Top5       int       `json:"top5"`
	Top10      int       `json:"top10"`
	FR         float64   `json:"FR"`
	AR         float64   `json:"AR"`
	FaultCount int       `json:"fault_count"`
	Projects   int       `json:"projects"`
	Ranked     int       `json:"ranked_projects"` // projects with at least one ranked fault
}

// EvaluationCell is the persisted evaluation of one technique, formula and
// ratio triple.
type EvaluationCell struct {
	Summary  EvaluationSummary   `json:"summary"`
	Projects []ProjectEvaluation `json:"projects"`
}

// EvaluationReport collects the evaluation cells of one dataset run.
type EvaluationReport struct {
	Summaries []EvaluationSummary `json:"summaries"`
	Details   []ProjectEvaluation `json:"details"`
}

// StageProgress announces a stage starting on one dataset cell.
type StageProgress struct {
	Stage    Stage
	Dataset  string
	Formula  string
	Ratios   *Ratios
	Projects int
}

// ProjectProgress reports one finished project of a stage.
type ProjectProgress struct {
	Stage   Stage
	Project string
	Formula string
	Ratios  *Ratios
}

// RunInfo describes a sweep before it starts.
type RunInfo struct {
	RunID      string
	Dataset    string
	Cells      int
	Skipped    int
	Parallel   int
	ShardIndex int
	ShardCount int
}

// RankingDiff is a unified diff between two statement rankings of one project.
type RankingDiff struct {
	Project string
	Left    string
	Right   string
	Diff    string
}
