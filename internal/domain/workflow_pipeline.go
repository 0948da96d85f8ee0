package domain

import (
	"context"
	"fmt"
	"log/slog"

	"flreduce.dev/pkg/flreduce/internal/adapter"
	m "flreduce.dev/pkg/flreduce/internal/model"
)

// SBFL scores every statement and method of the dataset with each configured
// formula and stores the SBFL and contribution artifacts.
func (w *workflowPipeline) SBFL(ctx context.Context, args StageArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	formulas, err := w.formulas()
	if err != nil {
		return err
	}

	for _, f := range formulas {
		if err := w.sbflCell(ctx, args.Dataset, versions, f, false); err != nil {
			return err
		}
	}

	return nil
}

// sbflCell runs the SBFL stage of one formula. With skipExisting, projects
// whose artifacts are already stored are left alone.
func (w *workflowPipeline) sbflCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, f Formula, skipExisting bool) error {
	formula := string(f.Name())
	aggregator := NewAggregator(f)

	w.DisplayStage(ctx, m.StageProgress{Stage: m.StageSBFL, Dataset: dataset, Formula: formula, Projects: len(versions)})

	return w.forEachProject(ctx, versions, func(ctx context.Context, pv *m.ProgramVersion) error {
		sbflKey := m.ArtifactKey{Stage: m.StageSBFL, Dataset: dataset, Formula: formula, Project: pv.Project}
		contributionKey := m.ArtifactKey{Stage: m.StageContribution, Dataset: dataset, Formula: formula, Project: pv.Project}

		if skipExisting && w.allExist(sbflKey, contributionKey) {
			return nil
		}

		result, contribution := aggregator.Aggregate(pv)

		if err := adapter.SaveJSON(w.artifacts, sbflKey, result); err != nil {
			return stageError(m.StageSBFL, dataset, pv, formula, nil, fmt.Errorf("save sbfl: %w", err))
		}

		if err := adapter.SaveJSON(w.artifacts, contributionKey, contribution); err != nil {
			return stageError(m.StageContribution, dataset, pv, formula, nil, fmt.Errorf("save contribution: %w", err))
		}

		w.DisplayProject(ctx, m.ProjectProgress{Stage: m.StageSBFL, Project: pv.Project, Formula: formula})

		return nil
	})
}

// Graph builds the passed and failed heterogeneous graphs of every project
// from the stored SBFL artifacts.
func (w *workflowPipeline) Graph(ctx context.Context, args GraphArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	for _, name := range w.config.Formulas {
		if err := w.graphCell(ctx, args.Dataset, versions, string(name), args.Mermaid, false); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflowPipeline) graphCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, formula string, mermaid, skipExisting bool) error {
	builder, err := NewGraphBuilder(w.config.Weighting)
	if err != nil {
		return err
	}

	w.DisplayStage(ctx, m.StageProgress{Stage: m.StageGraph, Dataset: dataset, Formula: formula, Projects: len(versions)})

	return w.forEachProject(ctx, versions, func(ctx context.Context, pv *m.ProgramVersion) error {
		keys := map[m.View]m.ArtifactKey{}
		for _, view := range []m.View{m.ViewPassed, m.ViewFailed} {
			keys[view] = m.ArtifactKey{Stage: m.StageGraph, View: view, Dataset: dataset, Formula: formula, Project: pv.Project}
		}

		if skipExisting && w.allExist(keys[m.ViewPassed], keys[m.ViewFailed]) {
			return nil
		}

		sbfl, err := loadArtifact[m.SBFLResult](w.artifacts,
			m.ArtifactKey{Stage: m.StageSBFL, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return stageError(m.StageGraph, dataset, pv, formula, nil, err)
		}

		contribution, err := loadArtifact[m.Contribution](w.artifacts,
			m.ArtifactKey{Stage: m.StageContribution, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return stageError(m.StageGraph, dataset, pv, formula, nil, err)
		}

		pair := builder.Build(pv, sbfl, contribution)

		for view, key := range keys {
			g := pair.View(view)

			data, err := g.MarshalBinary()
			if err != nil {
				return stageError(m.StageGraph, dataset, pv, formula, nil, fmt.Errorf("encode %s graph: %w", view, err))
			}

			if err := w.artifacts.Save(key, data); err != nil {
				return stageError(m.StageGraph, dataset, pv, formula, nil, fmt.Errorf("save graph: %w", err))
			}

			if mermaid {
				key.Format = m.FormatMermaid
				if err := w.artifacts.Save(key, []byte(MermaidGraph(g))); err != nil {
					return stageError(m.StageGraph, dataset, pv, formula, nil, fmt.Errorf("save mermaid graph: %w", err))
				}
			}
		}

		w.DisplayProject(ctx, m.ProjectProgress{Stage: m.StageGraph, Project: pv.Project, Formula: formula})

		return nil
	})
}

// PageRank ranks both graph views of every project and stores the passed,
// failed and difference vectors.
func (w *workflowPipeline) PageRank(ctx context.Context, args StageArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	for _, name := range w.config.Formulas {
		if err := w.pageRankCell(ctx, args.Dataset, versions, string(name), false); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflowPipeline) pageRankCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, formula string, skipExisting bool) error {
	propagator, err := NewPropagator(w.config.PageRank)
	if err != nil {
		return err
	}

	w.DisplayStage(ctx, m.StageProgress{Stage: m.StagePageRank, Dataset: dataset, Formula: formula, Projects: len(versions)})

	return w.forEachProject(ctx, versions, func(ctx context.Context, pv *m.ProgramVersion) error {
		key := func(view m.View) m.ArtifactKey {
			return m.ArtifactKey{Stage: m.StagePageRank, View: view, Dataset: dataset, Formula: formula, Project: pv.Project}
		}

		if skipExisting && w.allExist(key(m.ViewPassed), key(m.ViewFailed), key(m.ViewDifference)) {
			return nil
		}

		pair, err := w.loadGraphs(dataset, formula, pv)
		if err != nil {
			return stageError(m.StagePageRank, dataset, pv, formula, nil, err)
		}

		result, err := propagator.Propagate(ctx, pair)
		if err != nil {
			return stageError(m.StagePageRank, dataset, pv, formula, nil, err)
		}

		if !result.Passed.Converged || !result.Failed.Converged {
			slog.Warn("PageRank reached the iteration cap", "project", pv.Project, "formula", formula,
				"passed_iterations", result.Passed.Iterations, "failed_iterations", result.Failed.Iterations)
		}

		for view, artifact := range result.Artifacts() {
			if err := adapter.SaveJSON(w.artifacts, key(view), artifact); err != nil {
				return stageError(m.StagePageRank, dataset, pv, formula, nil, fmt.Errorf("save rank: %w", err))
			}
		}

		w.DisplayProject(ctx, m.ProjectProgress{Stage: m.StagePageRank, Project: pv.Project, Formula: formula})

		return nil
	})
}

func (w *workflowPipeline) loadGraphs(dataset, formula string, pv *m.ProgramVersion) (GraphPair, error) {
	var pair GraphPair

	tests := map[m.View]int{m.ViewPassed: pv.PassedTests.Len(), m.ViewFailed: pv.FailedTests.Len()}

	for view, numTests := range tests {
		data, err := loadBytes(w.artifacts, m.ArtifactKey{Stage: m.StageGraph, View: view, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return pair, err
		}

		g, err := DecodeGraph(view, NewBlockLayout(pv.Methods.Len(), pv.Lines.Len(), numTests), data)
		if err != nil {
			return pair, err
		}

		if view == m.ViewPassed {
			pair.Passed = g
		} else {
			pair.Failed = g
		}
	}

	return pair, nil
}

// MBFL reduces statements, passed tests and mutants of every project and
// re-scores the surviving mutants with each configured formula.
func (w *workflowPipeline) MBFL(ctx context.Context, args MBFLArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	if err := ValidateRatios(args.Ratios); err != nil {
		return err
	}

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	formulas, err := w.formulas()
	if err != nil {
		return err
	}

	for _, f := range formulas {
		if err := w.mbflCell(ctx, args.Dataset, versions, f, args.Ratios); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflowPipeline) mbflCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, f Formula, ratios m.Ratios) error {
	formula := string(f.Name())

	rescorer, err := NewRescorer(f, w.config.KillSets)
	if err != nil {
		return err
	}

	w.DisplayStage(ctx, m.StageProgress{Stage: m.StageMBFL, Dataset: dataset, Formula: formula, Ratios: &ratios, Projects: len(versions)})

	return w.forEachProject(ctx, versions, func(ctx context.Context, pv *m.ProgramVersion) error {
		fail := func(err error) error {
			return stageError(m.StageMBFL, dataset, pv, formula, &ratios, err)
		}

		sbfl, err := loadArtifact[m.SBFLResult](w.artifacts,
			m.ArtifactKey{Stage: m.StageSBFL, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return fail(err)
		}

		difference, err := loadRankArtifact(w.artifacts,
			m.ArtifactKey{Stage: m.StagePageRank, View: m.ViewDifference, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return fail(err)
		}

		statementScores, err := StatementDifference(difference.Lengths, difference.Results)
		if err != nil {
			return fail(err)
		}

		testScores, err := w.testSignal(dataset, formula, pv)
		if err != nil {
			return fail(err)
		}

		rng := NewRand(SeedFor(w.config.Seed, pv.Project, formula, ratios))

		sel, err := NewReductionSelector(rng).Select(pv, statementScores, testScores, ratios)
		if err != nil {
			return fail(err)
		}

		result := rescorer.Rescore(pv, sbfl.Lines, sel)

		key := m.ArtifactKey{Stage: m.StageMBFL, Dataset: dataset, Formula: formula, Ratios: &ratios, Project: pv.Project}
		if err := adapter.SaveJSON(w.artifacts, key, result); err != nil {
			return fail(fmt.Errorf("save mbfl: %w", err))
		}

		slog.Debug("Reduced project", "project", pv.Project, "formula", formula, "ratios", ratios.String(),
			"statements", len(sel.Statements), "passed", len(sel.PassedTests), "mutants", len(sel.Mutants),
			"original_mtp", result.OriginalMTP, "current_mtp", result.CurrentMTP)

		w.DisplayProject(ctx, m.ProjectProgress{Stage: m.StageMBFL, Project: pv.Project, Formula: formula, Ratios: &ratios})

		return nil
	})
}

// testSignal returns the score used to rank passed tests for reduction.
func (w *workflowPipeline) testSignal(dataset, formula string, pv *m.ProgramVersion) (map[int]float64, error) {
	if w.config.TestSignal == SignalContribution {
		contribution, err := loadArtifact[m.Contribution](w.artifacts,
			m.ArtifactKey{Stage: m.StageContribution, Dataset: dataset, Formula: formula, Project: pv.Project})
		if err != nil {
			return nil, err
		}

		return contribution.Passed, nil
	}

	passed, err := loadRankArtifact(w.artifacts,
		m.ArtifactKey{Stage: m.StagePageRank, View: m.ViewPassed, Dataset: dataset, Formula: formula, Project: pv.Project})
	if err != nil {
		return nil, err
	}

	return PassedTestScores(passed.Lengths, passed.Results)
}

func (w *workflowPipeline) allExist(keys ...m.ArtifactKey) bool {
	for _, key := range keys {
		ok, err := w.artifacts.Exists(key)
		if err != nil || !ok {
			return false
		}
	}

	return true
}
