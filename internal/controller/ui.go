// Package controller renders pipeline progress and evaluation results.
package controller

import (
	"context"
	"os"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayRunInfo(ctx context.Context, info m.RunInfo)
	DisplayStage(ctx context.Context, progress m.StageProgress)
	DisplayProject(ctx context.Context, progress m.ProjectProgress)
	DisplayDatasets(ctx context.Context, stats []m.DatasetStat) error
	DisplaySummaries(ctx context.Context, summaries []m.EvaluationSummary) error
	DisplayRankingDiff(ctx context.Context, diff m.RankingDiff) error
}

// NewUI returns the interactive TUI when stdout is a terminal and the plain
// table UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func ratiosLabel(r *m.Ratios) string {
	if r == nil {
		return "-"
	}

	return r.String()
}
