package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayRunInfo prints the sweep plan.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info m.RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Run %s: dataset %s, %d cell(s), %d already completed, %d worker(s) (Shard %d/%d)\n",
		info.RunID, info.Dataset, info.Cells, info.Skipped, info.Parallel, info.ShardIndex, info.ShardCount)
}

// DisplayStage announces a stage on one cell.
func (s *SimpleUI) DisplayStage(ctx context.Context, progress m.StageProgress) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%s] %s formula=%s ratios=%s projects=%d\n",
		progress.Stage, progress.Dataset, progress.Formula, ratiosLabel(progress.Ratios), progress.Projects)
}

// DisplayProject reports a finished project.
func (s *SimpleUI) DisplayProject(ctx context.Context, progress m.ProjectProgress) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s %s done\n", progress.Stage, progress.Project)
}

// DisplayDatasets prints one row per program version.
func (s *SimpleUI) DisplayDatasets(ctx context.Context, stats []m.DatasetStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderDatasetTable(stats))

	return nil
}

// DisplaySummaries prints the evaluation summary table.
func (s *SimpleUI) DisplaySummaries(ctx context.Context, summaries []m.EvaluationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		s.printf("No evaluation results\n")
		return nil
	}

	s.printf("\n%s", renderSummaryTable(summaries))

	return nil
}

// DisplayRankingDiff prints a unified diff of two rankings.
func (s *SimpleUI) DisplayRankingDiff(ctx context.Context, diff m.RankingDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff.Diff == "" {
		s.printf("%s: rankings %s and %s are identical\n", diff.Project, diff.Left, diff.Right)
		return nil
	}

	s.printf("%s", diff.Diff)

	return nil
}

func renderDatasetTable(stats []m.DatasetStat) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Methods", "Lines", "Mutants", "Failed", "Passed", "Faults"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	totalMutants := 0

	for _, stat := range stats {
		table.Append([]string{
			stat.Project,
			strconv.Itoa(stat.Methods),
			strconv.Itoa(stat.Lines),
			strconv.Itoa(stat.Mutants),
			strconv.Itoa(stat.FailedTests),
			strconv.Itoa(stat.PassedTests),
			strconv.Itoa(stat.Faults),
		})

		totalMutants += stat.Mutants
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Projects %d", len(stats)), "", "", strconv.Itoa(totalMutants), "", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

func summaryRow(s m.EvaluationSummary) []string {
	return []string{
		string(s.Technique),
		s.Formula,
		ratiosLabel(s.Ratios),
		strconv.Itoa(s.Top1),
		strconv.Itoa(s.Top3),
		strconv.Itoa(s.Top5),
		strconv.Itoa(s.Top10),
		fmt.Sprintf("%.2f", s.FR),
		fmt.Sprintf("%.2f", s.AR),
		fmt.Sprintf("%d/%d", s.Ranked, s.Projects),
	}
}

var summaryHeader = []string{"Technique", "Formula", "Ratios", "Top-1", "Top-3", "Top-5", "Top-10", "MFR", "MAR", "Ranked"}

func renderSummaryTable(summaries []m.EvaluationSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(summaryHeader)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER,
	})

	for _, s := range summaries {
		table.Append(summaryRow(s))
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
