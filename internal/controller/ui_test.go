package controller

import (
	"bytes"
	"context"
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestIsTTY_Nil(t *testing.T) {
	assert.False(t, IsTTY(nil))
}

func TestRatiosLabel(t *testing.T) {
	assert.Equal(t, "-", ratiosLabel(nil))
	assert.Equal(t, "0.2/0.4/1.0", ratiosLabel(&m.Ratios{Statements: 0.2, TestCases: 0.4, Mutants: 1}))
}

func TestUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	for name, ui := range map[string]UI{"simple": NewSimpleUI(cmd), "tui": NewTUI(&buf)} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ui.Start(ctx))
			ui.DisplayStage(ctx, m.StageProgress{Stage: m.StageSBFL})
			ui.DisplayProject(ctx, m.ProjectProgress{Stage: m.StageSBFL, Project: "Lang-1"})
			assert.Error(t, ui.DisplaySummaries(ctx, nil))
			assert.Error(t, ui.DisplayDatasets(ctx, nil))
			assert.Error(t, ui.DisplayRankingDiff(ctx, m.RankingDiff{}))
		})
	}

	assert.Empty(t, buf.String())
}
