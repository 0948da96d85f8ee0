package domain

import (
	"context"
	"fmt"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/pmezard/go-difflib/difflib"
)

// List displays the size of every program version of the requested datasets.
func (w *workflowPipeline) List(ctx context.Context, args ListArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	datasets := args.Datasets
	if len(datasets) == 0 {
		found, err := w.datasets.ListDatasets()
		if err != nil {
			return fmt.Errorf("list datasets: %w", err)
		}

		datasets = found
	}

	var stats []m.DatasetStat

	for _, dataset := range datasets {
		versions, err := w.datasets.LoadDataset(dataset)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		for i := range versions {
			stats = append(stats, versions[i].Stat())
		}
	}

	return w.DisplayDatasets(ctx, stats)
}

// View displays a saved evaluation report, optionally filtered by technique
// and formula.
func (w *workflowPipeline) View(ctx context.Context, args ViewArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	report, err := w.reports.LoadReport(reportDir(args.Output, args.Dataset, args.ShardIndex, args.TotalShardCount))
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	summaries := make([]m.EvaluationSummary, 0, len(report.Summaries))

	for _, summary := range report.Summaries {
		if args.Technique != "" && summary.Technique != args.Technique {
			continue
		}

		if args.Formula != "" && !strings.EqualFold(summary.Formula, args.Formula) {
			continue
		}

		summaries = append(summaries, summary)
	}

	return w.DisplaySummaries(ctx, summaries)
}

// Merge combines shard reports into the report of the whole dataset. A cell
// present in more than one input is taken from the first.
func (w *workflowPipeline) Merge(ctx context.Context, args MergeArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	target := reportDir(args.Output, args.Dataset, 0, 1)

	inputs := args.Inputs
	if len(inputs) == 0 {
		found, err := w.reports.ShardDirs(target)
		if err != nil {
			return err
		}

		inputs = found
	}

	if len(inputs) == 0 {
		return fmt.Errorf("merge reports: no shard reports under %s", target)
	}

	var merged m.EvaluationReport

	seen := map[string]bool{}
	seenDetails := map[string]bool{}

	for _, input := range inputs {
		report, err := w.reports.LoadReport(input)
		if err != nil {
			return fmt.Errorf("load shard report: %w", err)
		}

		for _, summary := range report.Summaries {
			id := cellID(summary.Technique, summary.Formula, summary.Ratios)
			if seen[id] {
				continue
			}

			seen[id] = true
			merged.Summaries = append(merged.Summaries, summary)
		}

		for _, detail := range report.Details {
			id := cellID(detail.Technique, detail.Formula, detail.Ratios) + "/" + detail.Project
			if seenDetails[id] {
				continue
			}

			seenDetails[id] = true
			merged.Details = append(merged.Details, detail)
		}
	}

	if err := w.reports.SaveReport(target, merged); err != nil {
		return fmt.Errorf("save merged report: %w", err)
	}

	return w.DisplaySummaries(ctx, merged.Summaries)
}

func cellID(technique m.Technique, formula string, ratios *m.Ratios) string {
	return SweepCell{Technique: technique, Formula: FormulaName(formula), Ratios: ratios}.ID()
}

// RankDiff prints a unified diff between two stored statement rankings of
// one project.
func (w *workflowPipeline) RankDiff(ctx context.Context, args RankDiffArgs) error {
	if err := w.begin(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	versions, err := w.loadVersions(args.Dataset, []string{args.Project})
	if err != nil {
		return err
	}

	pv := versions[0]
	names := make(map[int]string, pv.Lines.Len())

	for name, index := range pv.Lines {
		names[index] = name
	}

	sides := make([]string, 2)
	labels := make([]string, 2)

	for i, source := range []RankingSource{args.Left, args.Right} {
		ratios, err := checkTechnique(source.Technique, source.Ratios)
		if err != nil {
			return err
		}

		info := CellInfo{Technique: source.Technique, Formula: args.Formula, Ratios: ratios}

		scores, err := w.statementScores(args.Dataset, args.Project, info)
		if err != nil {
			return fmt.Errorf("load %s ranking: %w", source.Technique, err)
		}

		labels[i] = cellID(info.Technique, info.Formula, info.Ratios)
		sides[i] = renderRanking(Ranking(scores, w.config.TieRule), names, args.Top)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(sides[0]),
		B:        difflib.SplitLines(sides[1]),
		FromFile: labels[0],
		ToFile:   labels[1],
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("diff rankings: %w", err)
	}

	return w.DisplayRankingDiff(ctx, m.RankingDiff{
		Project: args.Project,
		Left:    labels[0],
		Right:   labels[1],
		Diff:    diff,
	})
}

// renderRanking writes one "rank statement score" line per entry, limited to
// the first top entries when top is positive.
func renderRanking(ranking []Ranked, names map[int]string, top int) string {
	if top > 0 && top < len(ranking) {
		ranking = ranking[:top]
	}

	var b strings.Builder

	for _, entry := range ranking {
		name, ok := names[entry.Index]
		if !ok {
			name = fmt.Sprintf("#%d", entry.Index)
		}

		fmt.Fprintf(&b, "%d %s %.6g\n", entry.Rank, name, entry.Score)
	}

	return b.String()
}
