package cmd

import (
	"errors"
	"testing"

	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSBFLCmd_PassesDatasetAndProjects(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("SBFL", mock.Anything, mock.MatchedBy(func(args domain.StageArgs) bool {
		return args.Dataset == "Lang" &&
			len(args.Projects) == 2 &&
			args.Projects[0] == "Lang-1" &&
			args.Projects[1] == "Lang-3"
	})).Return(nil)

	cmd, _ := newTestRootCmd(newSBFLCmd())
	cmd.SetArgs([]string{"sbfl", "Lang", "--projects", "Lang-1,Lang-3"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestSBFLCmd_RequiresDataset(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRootCmd(newSBFLCmd())
	cmd.SetArgs([]string{"sbfl"})
	require.Error(t, cmd.Execute())
}

func TestGraphCmd_MermaidFlag(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Graph", mock.Anything, mock.MatchedBy(func(args domain.GraphArgs) bool {
		return args.Dataset == "Chart" && args.Mermaid
	})).Return(nil)

	cmd, _ := newTestRootCmd(newGraphCmd())
	cmd.SetArgs([]string{"graph", "Chart", "--mermaid"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestPageRankCmd_PropagatesError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	stageErr := errors.New("graph missing")

	mockWorkflow.On("PageRank", mock.Anything, mock.MatchedBy(func(args domain.StageArgs) bool {
		return args.Dataset == "Math" && len(args.Projects) == 0
	})).Return(stageErr)

	cmd, _ := newTestRootCmd(newPageRankCmd())
	cmd.SetArgs([]string{"pagerank", "Math"})
	assert.ErrorIs(t, cmd.Execute(), stageErr)
}

func TestMBFLCmd_RatioFlags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("MBFL", mock.Anything, mock.MatchedBy(func(args domain.MBFLArgs) bool {
		return args.Dataset == "Time" &&
			args.Ratios == m.Ratios{Statements: 0.2, TestCases: 0.4, Mutants: 0.6}
	})).Return(nil)

	cmd, _ := newTestRootCmd(newMBFLCmd())
	cmd.SetArgs([]string{"mbfl", "Time", "--statements", "0.2", "--test-cases", "0.4", "--mutants", "0.6"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestEvaluateCmd_SBFLHasNoRatios(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Evaluate", mock.Anything, mock.MatchedBy(func(args domain.EvaluateArgs) bool {
		return args.Technique == m.TechniqueSBFL &&
			args.Ratios == nil &&
			args.Output == m.Path(defaultOutputDir)
	})).Return(nil)

	cmd, _ := newTestRootCmd(newEvaluateCmd())
	cmd.SetArgs([]string{"evaluate", "Lang"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestEvaluateCmd_MBFLRatios(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Evaluate", mock.Anything, mock.MatchedBy(func(args domain.EvaluateArgs) bool {
		return args.Technique == m.TechniqueMBFL &&
			args.Ratios != nil &&
			*args.Ratios == m.Ratios{Statements: 0.8, TestCases: 1, Mutants: 0.2} &&
			args.Output == m.Path("./out")
	})).Return(nil)

	cmd, _ := newTestRootCmd(newEvaluateCmd())
	cmd.SetArgs([]string{"evaluate", "Lang", "-t", "mbfl", "--statements", "0.8", "--mutants", "0.2", "-o", "./out"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_Datasets(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Datasets) == 2 && args.Datasets[0] == "Lang" && args.Datasets[1] == "Chart"
	})).Return(nil)

	cmd, _ := newTestRootCmd(newListCmd())
	cmd.SetArgs([]string{"list", "Lang", "Chart"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_AllDatasets(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Datasets) == 0
	})).Return(nil)

	cmd, _ := newTestRootCmd(newListCmd())
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}
