package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path"

	"flreduce.dev/pkg/flreduce/internal/adapter"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/google/uuid"
)

// SweepCell is one evaluated (technique, formula, ratio triple) combination
// of a sweep.
type SweepCell struct {
	Technique m.Technique
	Formula   FormulaName
	Ratios    *m.Ratios
}

// ID returns the checkpoint identifier of the cell.
func (c SweepCell) ID() string {
	id := string(c.Technique) + "/" + string(c.Formula)
	if c.Ratios != nil {
		id += "/" + c.Ratios.String()
	}

	return id
}

// RatioGrid returns the values 0, step, 2*step, ... up to 1, rounded to one
// decimal and deduplicated. 1 is always included.
func RatioGrid(step float64) []float64 {
	if step <= 0 || step > 1 {
		return []float64{1}
	}

	var grid []float64

	for i := 0; ; i++ {
		value := math.Round(float64(i)*step*10) / 10
		if value > 1 {
			break
		}

		if len(grid) == 0 || grid[len(grid)-1] != value {
			grid = append(grid, value)
		}
	}

	if grid[len(grid)-1] != 1 {
		grid = append(grid, 1)
	}

	return grid
}

// SweepCells lists the SBFL cell and every MBFL ratio cell of each formula.
func SweepCells(formulas []FormulaName, step float64) []SweepCell {
	grid := RatioGrid(step)
	cells := make([]SweepCell, 0, len(formulas)*(1+len(grid)*len(grid)*len(grid)))

	for _, formula := range formulas {
		cells = append(cells, SweepCell{Technique: m.TechniqueSBFL, Formula: formula})

		for _, ss := range grid {
			for _, tc := range grid {
				for _, mr := range grid {
					cells = append(cells, SweepCell{
						Technique: m.TechniqueMBFL,
						Formula:   formula,
						Ratios:    &m.Ratios{Statements: ss, TestCases: tc, Mutants: mr},
					})
				}
			}
		}
	}

	return cells
}

// shardCells keeps the cells whose position modulo total equals index.
func shardCells(cells []SweepCell, index, total int) []SweepCell {
	if total <= 1 {
		return cells
	}

	var kept []SweepCell

	for i, cell := range cells {
		if i%total == index {
			kept = append(kept, cell)
		}
	}

	return kept
}

func checkpointPath(output m.Path, dataset string, shardIndex, shardCount int) m.Path {
	name := "checkpoint.yaml"
	if shardCount > 1 {
		name = "checkpoint-" + shardName(shardIndex, shardCount) + ".yaml"
	}

	return m.Path(path.Join(string(output), string(m.StageEvaluation), dataset, name))
}

// Run sweeps every formula over SBFL and the MBFL ratio grid, evaluating each
// cell and recording progress in a checkpoint so an interrupted run can resume.
func (w *workflowPipeline) Run(ctx context.Context, args RunArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	shardCount := max(args.TotalShardCount, 1)
	if args.ShardIndex < 0 || args.ShardIndex >= shardCount {
		return fmt.Errorf("%w: shard %d/%d", ErrInvalidConfig, args.ShardIndex, shardCount)
	}

	versions, err := w.loadVersions(args.Dataset, args.Projects)
	if err != nil {
		return err
	}

	hash, err := w.datasets.DatasetHash(args.Dataset)
	if err != nil {
		return fmt.Errorf("hash dataset: %w", err)
	}

	cells := shardCells(SweepCells(w.config.Formulas, w.config.RatioStep), args.ShardIndex, shardCount)
	cpPath := checkpointPath(args.Output, args.Dataset, args.ShardIndex, shardCount)

	checkpoint, resumed, err := w.startCheckpoint(cpPath, args, hash, shardCount)
	if err != nil {
		return err
	}

	pending := make([]SweepCell, 0, len(cells))
	for _, cell := range cells {
		if !checkpoint.IsCompleted(cell.ID()) {
			pending = append(pending, cell)
		}
	}

	w.DisplayRunInfo(ctx, m.RunInfo{
		RunID:      checkpoint.RunID,
		Dataset:    args.Dataset,
		Cells:      len(cells),
		Skipped:    len(cells) - len(pending),
		Parallel:   w.config.Parallel,
		ShardIndex: args.ShardIndex,
		ShardCount: shardCount,
	})

	if err := w.prepareUpstream(ctx, args.Dataset, versions, pending, resumed); err != nil {
		return err
	}

	for _, cell := range pending {
		if err := w.runCell(ctx, args.Dataset, versions, cell); err != nil {
			return err
		}

		checkpoint.MarkCompleted(cell.ID())

		if err := w.checkpoints.SaveCheckpoint(cpPath, checkpoint); err != nil {
			return fmt.Errorf("save checkpoint: %w", err)
		}
	}

	report, err := w.collectReport(args.Dataset, cells)
	if err != nil {
		return err
	}

	if err := w.reports.SaveReport(reportDir(args.Output, args.Dataset, args.ShardIndex, shardCount), report); err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("Sweep finished", "run_id", checkpoint.RunID, "dataset", args.Dataset, "cells", len(cells), "evaluated", len(pending))

	return w.DisplaySummaries(ctx, report.Summaries)
}

// startCheckpoint resumes the stored checkpoint when it belongs to the same
// dataset contents, or starts a new run. The flag reports whether artifacts of
// the earlier run are still valid.
func (w *workflowPipeline) startCheckpoint(cpPath m.Path, args RunArgs, hash string, shardCount int) (*adapter.Checkpoint, bool, error) {
	if args.Resume {
		checkpoint, err := w.checkpoints.LoadCheckpoint(cpPath)

		switch {
		case err == nil && checkpoint.DatasetHash == hash:
			slog.Info("Resuming sweep", "run_id", checkpoint.RunID, "completed", len(checkpoint.Completed))
			return checkpoint, true, nil
		case err == nil:
			slog.Warn("Dataset changed since checkpoint, starting over", "run_id", checkpoint.RunID)
		case errors.Is(err, adapter.ErrNotFound):
			slog.Debug("No checkpoint to resume", "path", cpPath)
		default:
			return nil, false, fmt.Errorf("load checkpoint: %w", err)
		}
	}

	return &adapter.Checkpoint{
		RunID:       uuid.NewString(),
		Dataset:     args.Dataset,
		DatasetHash: hash,
		ShardIndex:  args.ShardIndex,
		ShardCount:  shardCount,
	}, false, nil
}

// prepareUpstream runs SBFL for every formula with pending cells, and graph
// and PageRank for every formula with pending MBFL cells.
func (w *workflowPipeline) prepareUpstream(ctx context.Context, dataset string, versions []*m.ProgramVersion, pending []SweepCell, skipExisting bool) error {
	needsSBFL := map[FormulaName]bool{}
	needsGraph := map[FormulaName]bool{}

	for _, cell := range pending {
		needsSBFL[cell.Formula] = true
		if cell.Technique == m.TechniqueMBFL {
			needsGraph[cell.Formula] = true
		}
	}

	for _, name := range w.config.Formulas {
		if !needsSBFL[name] {
			continue
		}

		f, err := NewFormula(name, w.config.FormulaOptions)
		if err != nil {
			return err
		}

		if err := w.sbflCell(ctx, dataset, versions, f, skipExisting); err != nil {
			return err
		}

		if !needsGraph[name] {
			continue
		}

		if err := w.graphCell(ctx, dataset, versions, string(name), false, skipExisting); err != nil {
			return err
		}

		if err := w.pageRankCell(ctx, dataset, versions, string(name), skipExisting); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflowPipeline) runCell(ctx context.Context, dataset string, versions []*m.ProgramVersion, cell SweepCell) error {
	if cell.Technique == m.TechniqueMBFL {
		f, err := NewFormula(cell.Formula, w.config.FormulaOptions)
		if err != nil {
			return err
		}

		if err := w.mbflCell(ctx, dataset, versions, f, *cell.Ratios); err != nil {
			return err
		}
	}

	_, err := w.evaluateCell(ctx, dataset, versions, CellInfo{
		Technique: cell.Technique,
		Formula:   string(cell.Formula),
		Ratios:    cell.Ratios,
	})

	return err
}

// collectReport loads the stored evaluation of every cell, including cells
// completed by an earlier run.
func (w *workflowPipeline) collectReport(dataset string, cells []SweepCell) (m.EvaluationReport, error) {
	var report m.EvaluationReport

	for _, cell := range cells {
		key := m.ArtifactKey{
			Stage:     m.StageEvaluation,
			Dataset:   dataset,
			Technique: cell.Technique,
			Formula:   string(cell.Formula),
			Ratios:    cell.Ratios,
		}

		stored, err := loadArtifact[m.EvaluationCell](w.artifacts, key)
		if err != nil {
			return report, fmt.Errorf("load cell %s: %w", cell.ID(), err)
		}

		report.Summaries = append(report.Summaries, stored.Summary)
		report.Details = append(report.Details, stored.Projects...)
	}

	return report, nil
}
