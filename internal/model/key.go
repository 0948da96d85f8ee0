package model

import (
	"fmt"
	"path"
)

// Ratios is the reduction budget triple.
type Ratios struct {
	Statements float64 `json:"selected_statements_ratio" yaml:"statements"`
	TestCases  float64 `json:"reduced_test_cases_ratio" yaml:"test_cases"`
	Mutants    float64 `json:"reduced_mutant_ratio" yaml:"mutants"`
}

// Segments returns the ratios formatted as path segments.
func (r Ratios) Segments() []string {
	return []string{
		fmt.Sprintf("%.1f", r.Statements),
		fmt.Sprintf("%.1f", r.TestCases),
		fmt.Sprintf("%.1f", r.Mutants),
	}
}

func (r Ratios) String() string {
	s := r.Segments()
	return s[0] + "/" + s[1] + "/" + s[2]
}

// Stage names a pipeline stage and the artifact family it produces.
type Stage string

// Pipeline stages.
const (
	StageSBFL         Stage = "sbfl"
	StageContribution Stage = "contribution"
	StageGraph        Stage = "graph"
	StagePageRank     Stage = "page_rank"
	StageMBFL         Stage = "mbfl"
	StageEvaluation   Stage = "evaluation"
)

// View selects the test view of a graph or PageRank artifact.
type View string

// Graph and PageRank views.
const (
	ViewPassed     View = "passed_test_cases"
	ViewFailed     View = "failed_test_cases"
	ViewDifference View = "difference"
)

// FormatMermaid selects the Mermaid rendering of a graph artifact.
const FormatMermaid = "mermaid"

// ArtifactKey identifies one stored artifact:
// (stage, view, dataset, formula, ratios, project).
type ArtifactKey struct {
	Stage   Stage
	View    View
	Dataset string
	Formula string
	Ratios  *Ratios
	Project string

	// Technique names the evaluated technique of an evaluation cell.
	Technique Technique
	// Format selects an alternate rendering; only graphs have one.
	Format string
}

// RelPath returns the slash-separated location of the artifact relative to
// the artifact root.
func (k ArtifactKey) RelPath() string {
	switch k.Stage {
	case StageGraph:
		name := k.Project + "_matrix.bin"
		if k.Format == FormatMermaid {
			name = k.Project + ".mmd"
		}

		return path.Join(string(k.Stage), string(k.View), k.Dataset, k.Formula, name)
	case StagePageRank:
		return path.Join(string(k.Stage), string(k.View), k.Dataset, k.Formula, k.Project+".json")
	case StageMBFL:
		elems := []string{string(k.Stage), k.Dataset}
		if k.Ratios != nil {
			elems = append(elems, k.Ratios.Segments()...)
		}

		elems = append(elems, k.Formula, k.Project+".json")

		return path.Join(elems...)
	case StageEvaluation:
		elems := []string{string(k.Stage), k.Dataset, string(k.Technique)}
		if k.Ratios != nil {
			elems = append(elems, k.Ratios.Segments()...)
		}

		elems = append(elems, k.Formula+".json")

		return path.Join(elems...)
	case StageSBFL, StageContribution:
		return path.Join(string(k.Stage), k.Dataset, k.Formula, k.Project+".json")
	}

	return path.Join(string(k.Stage), k.Dataset, k.Formula, k.Project)
}

func (k ArtifactKey) String() string {
	return k.RelPath()
}
