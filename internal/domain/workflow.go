package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"flreduce.dev/pkg/flreduce/internal/adapter"
	"flreduce.dev/pkg/flreduce/internal/controller"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"golang.org/x/sync/errgroup"
)

// StageArgs selects the dataset and projects a stage runs on.
type StageArgs struct {
	Dataset  string
	Projects []string // empty means every program version
}

// GraphArgs contains the arguments of the graph stage.
type GraphArgs struct {
	StageArgs
	Mermaid bool // also write a Mermaid rendering of each view
}

// MBFLArgs contains the arguments of one reduced MBFL cell.
type MBFLArgs struct {
	StageArgs
	Ratios m.Ratios
}

// EvaluateArgs contains the arguments for scoring one technique.
type EvaluateArgs struct {
	StageArgs
	Technique m.Technique
	Ratios    *m.Ratios // required for MBFL
	Output    m.Path
}

// RunArgs contains the arguments of a full sweep.
type RunArgs struct {
	StageArgs
	Output          m.Path
	ShardIndex      int
	TotalShardCount int
	Resume          bool
}

// ListArgs selects the datasets to describe.
type ListArgs struct {
	Datasets []string // empty means every dataset in the data directory
}

// ViewArgs selects a saved evaluation report.
type ViewArgs struct {
	Dataset         string
	Output          m.Path
	ShardIndex      int
	TotalShardCount int
	Technique       m.Technique // empty keeps every technique
	Formula         string      // empty keeps every formula
}

// MergeArgs contains the arguments for merging shard reports.
type MergeArgs struct {
	Dataset string
	Output  m.Path
	Inputs  []m.Path // empty discovers shard directories under Output
}

// RankingSource names one stored statement ranking.
type RankingSource struct {
	Technique m.Technique
	Ratios    *m.Ratios
}

// RankDiffArgs contains the arguments for comparing two rankings.
type RankDiffArgs struct {
	Dataset string
	Project string
	Formula string
	Left    RankingSource
	Right   RankingSource
	Top     int // rows compared; 0 compares the full ranking
}

// Workflow runs the fault localization pipeline.
type Workflow interface {
	SBFL(ctx context.Context, args StageArgs) error
	Graph(ctx context.Context, args GraphArgs) error
	PageRank(ctx context.Context, args StageArgs) error
	MBFL(ctx context.Context, args MBFLArgs) error
	Evaluate(ctx context.Context, args EvaluateArgs) error
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	RankDiff(ctx context.Context, args RankDiffArgs) error
}

type workflowPipeline struct {
	controller.UI

	datasets    adapter.DatasetStore
	artifacts   adapter.ArtifactStore
	reports     adapter.ReportStore
	checkpoints adapter.CheckpointStore
	config      Config
}

// NewWorkflow creates a new Workflow with the provided dependencies.
func NewWorkflow(
	datasets adapter.DatasetStore,
	artifacts adapter.ArtifactStore,
	reports adapter.ReportStore,
	checkpoints adapter.CheckpointStore,
	ui controller.UI,
	config Config,
) (Workflow, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &workflowPipeline{
		UI:          ui,
		datasets:    datasets,
		artifacts:   artifacts,
		reports:     reports,
		checkpoints: checkpoints,
		config:      config,
	}, nil
}

// begin starts the UI for one operation; callers defer Close.
func (w *workflowPipeline) begin(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	return nil
}

// loadVersions loads and validates the program versions of a dataset,
// restricted to the requested projects.
func (w *workflowPipeline) loadVersions(dataset string, projects []string) ([]*m.ProgramVersion, error) {
	all, err := w.datasets.LoadDataset(dataset)
	if err != nil {
		slog.Error("Failed to load dataset", "dataset", dataset, "error", err)
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	known := make(map[string]bool, len(all))
	for i := range all {
		known[all[i].Project] = true
	}

	for _, project := range projects {
		if !known[project] {
			return nil, fmt.Errorf("%w: dataset %s has no project %q", ErrInvalidDataset, dataset, project)
		}
	}

	versions := make([]*m.ProgramVersion, 0, len(all))

	for i := range all {
		pv := &all[i]
		if len(projects) > 0 && !slices.Contains(projects, pv.Project) {
			continue
		}

		if err := pv.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDataset, pv.Project, err)
		}

		versions = append(versions, pv)
	}

	slog.Debug("Loaded dataset", "dataset", dataset, "versions", len(versions))

	return versions, nil
}

// forEachProject runs fn for every version with at most config.Parallel
// projects in flight. The first failure cancels the remaining projects.
func (w *workflowPipeline) forEachProject(
	ctx context.Context,
	versions []*m.ProgramVersion,
	fn func(ctx context.Context, pv *m.ProgramVersion) error,
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.config.Parallel)

	for _, pv := range versions {
		if err := groupCtx.Err(); err != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			return fn(groupCtx, pv)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (w *workflowPipeline) formulas() ([]Formula, error) {
	formulas := make([]Formula, 0, len(w.config.Formulas))

	for _, name := range w.config.Formulas {
		f, err := NewFormula(name, w.config.FormulaOptions)
		if err != nil {
			return nil, err
		}

		formulas = append(formulas, f)
	}

	return formulas, nil
}

func stageError(stage m.Stage, dataset string, pv *m.ProgramVersion, formula string, ratios *m.Ratios, err error) error {
	project := ""
	if pv != nil {
		project = pv.Project
	}

	slog.Error("Stage failed", "stage", stage, "dataset", dataset, "project", project, "formula", formula, "error", err)

	return &StageError{
		Stage:   stage,
		Dataset: dataset,
		Project: project,
		Formula: formula,
		Ratios:  ratios,
		Err:     err,
	}
}

// loadArtifact decodes a JSON artifact, mapping a missing key to ErrMissingArtifact.
func loadArtifact[T any](store adapter.ArtifactStore, key m.ArtifactKey) (T, error) {
	value, err := adapter.LoadJSON[T](store, key)
	if errors.Is(err, adapter.ErrNotFound) {
		return value, fmt.Errorf("%w: %s", ErrMissingArtifact, key)
	}

	return value, err
}

func loadBytes(store adapter.ArtifactStore, key m.ArtifactKey) ([]byte, error) {
	data, err := store.Load(key)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrMissingArtifact, key)
	}

	return data, err
}

func loadRankArtifact(store adapter.ArtifactStore, key m.ArtifactKey) (m.RankArtifact, error) {
	artifact := m.RankArtifact{Prefix: PrefixFor(key.View)}

	data, err := loadBytes(store, key)
	if err != nil {
		return artifact, err
	}

	if err := json.Unmarshal(data, &artifact); err != nil {
		return artifact, fmt.Errorf("decode %s: %w", key, err)
	}

	return artifact, nil
}
