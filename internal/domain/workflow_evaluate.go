package domain

import (
	"context"
	"fmt"
	"path"
	"slices"

	"flreduce.dev/pkg/flreduce/internal/adapter"
	m "flreduce.dev/pkg/flreduce/internal/model"
	pkg "flreduce.dev/pkg/flreduce/pkg"
)

// Evaluate ranks the stored statement scores of one technique against the
// known faults and writes the evaluation report of the dataset.
func (w *workflowPipeline) Evaluate(ctx context.Context, args EvaluateArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	ratios, err := checkTechnique(args.Technique, args.Ratios)
	if err != nil {
		return err
	}

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	var report m.EvaluationReport

	for _, name := range w.config.Formulas {
		cellInfo := CellInfo{Technique: args.Technique, Formula: string(name), Ratios: ratios}

		cell, err := w.evaluateCell(ctx, args.Dataset, versions, cellInfo)
		if err != nil {
			return err
		}

		report.Summaries = append(report.Summaries, cell.Summary)
		report.Details = append(report.Details, cell.Projects...)
	}

	dir := reportDir(args.Output, args.Dataset, 0, 1)
	if err := w.reports.SaveReport(dir, report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	return w.DisplaySummaries(ctx, report.Summaries)
}

func checkTechnique(technique m.Technique, ratios *m.Ratios) (*m.Ratios, error) {
	switch technique {
	case m.TechniqueSBFL:
		return nil, nil
	case m.TechniqueMBFL:
		if ratios == nil {
			return nil, fmt.Errorf("%w: mbfl evaluation needs a ratio triple", ErrInvalidRatio)
		}

		if err := ValidateRatios(*ratios); err != nil {
			return nil, err
		}

		return ratios, nil
	}

	return nil, fmt.Errorf("%w: technique %q", ErrInvalidConfig, technique)
}

// evaluateCell evaluates every version for one technique, formula and ratio
// triple and stores the resulting cell. Project evaluations are spilled to
// disk while the projects run and read back in dataset order.
func (w *workflowPipeline) evaluateCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, info CellInfo) (m.EvaluationCell, error) {
	var cell m.EvaluationCell

	evaluator, err := NewEvaluator(w.config.TieRule)
	if err != nil {
		return cell, err
	}

	spill, err := pkg.NewFileSpill[m.ProjectEvaluation](w.config.SpillDir)
	if err != nil {
		return cell, fmt.Errorf("create evaluation spill: %w", err)
	}

	defer func() {
		_ = spill.Remove()
	}()

	w.DisplayStage(ctx, m.StageProgress{Stage: m.StageEvaluation, Dataset: dataset, Formula: info.Formula, Ratios: info.Ratios, Projects: len(versions)})

	err = w.forEachProject(ctx, versions, func(ctx context.Context, pv *m.ProgramVersion) error {
		scores, err := w.statementScores(dataset, pv.Project, info)
		if err != nil {
			return stageError(m.StageEvaluation, dataset, pv, info.Formula, info.Ratios, err)
		}

		if err := spill.Append(evaluator.Evaluate(pv, scores, info)); err != nil {
			return stageError(m.StageEvaluation, dataset, pv, info.Formula, info.Ratios, fmt.Errorf("spill evaluation: %w", err))
		}

		w.DisplayProject(ctx, m.ProjectProgress{Stage: m.StageEvaluation, Project: pv.Project, Formula: info.Formula, Ratios: info.Ratios})

		return nil
	})
	if err != nil {
		return cell, err
	}

	evals, err := collectEvaluations(spill, versions)
	if err != nil {
		return cell, err
	}

	cell = m.EvaluationCell{Summary: Summarize(info, evals), Projects: evals}

	key := m.ArtifactKey{Stage: m.StageEvaluation, Dataset: dataset, Technique: info.Technique, Formula: info.Formula, Ratios: info.Ratios}
	if err := adapter.SaveJSON(w.artifacts, key, cell); err != nil {
		return cell, stageError(m.StageEvaluation, dataset, nil, info.Formula, info.Ratios, fmt.Errorf("save evaluation: %w", err))
	}

	return cell, nil
}

// statementScores loads the statement suspicion of one project for a technique.
func (w *workflowPipeline) statementScores(dataset, project string, info CellInfo) (map[int]float64, error) {
	if info.Technique == m.TechniqueMBFL {
		result, err := loadArtifact[m.MBFLResult](w.artifacts,
			m.ArtifactKey{Stage: m.StageMBFL, Dataset: dataset, Formula: info.Formula, Ratios: info.Ratios, Project: project})
		if err != nil {
			return nil, err
		}

		return result.LineScores(), nil
	}

	result, err := loadArtifact[m.SBFLResult](w.artifacts,
		m.ArtifactKey{Stage: m.StageSBFL, Dataset: dataset, Formula: info.Formula, Project: project})
	if err != nil {
		return nil, err
	}

	return result.LineScores(), nil
}

// collectEvaluations reads the spilled evaluations back in version order.
func collectEvaluations(spill pkg.FileSpill[m.ProjectEvaluation], versions []*m.ProgramVersion) ([]m.ProjectEvaluation, error) {
	order := make(map[string]int, len(versions))
	for i, pv := range versions {
		order[pv.Project] = i
	}

	evals := make([]m.ProjectEvaluation, 0, spill.Len())

	err := spill.Range(func(_ uint64, eval m.ProjectEvaluation) error {
		evals = append(evals, eval)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read evaluation spill: %w", err)
	}

	slices.SortFunc(evals, func(a, b m.ProjectEvaluation) int {
		return order[a.Project] - order[b.Project]
	})

	return evals, nil
}

// reportDir returns the report directory of a dataset run under output.
func reportDir(output m.Path, dataset string, shardIndex, shardCount int) m.Path {
	dir := path.Join(string(output), string(m.StageEvaluation), dataset)
	if shardCount > 1 {
		dir = path.Join(dir, shardName(shardIndex, shardCount))
	}

	return m.Path(dir)
}

func shardName(shardIndex, shardCount int) string {
	return fmt.Sprintf("shard-%d-of-%d", shardIndex, shardCount)
}
