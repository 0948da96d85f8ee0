package cmd

import (
	"testing"

	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunCmd_Defaults(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Dataset == "Lang" &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			!args.Resume &&
			args.Output == m.Path(defaultOutputDir)
	})).Return(nil)

	cmd, _ := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "Lang"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRunCmd_WithSharding(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.ShardIndex == 1 && args.TotalShardCount == 3
	})).Return(nil)

	cmd, _ := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "Lang", "--shard", "1/3"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRunCmd_ResumeAndOutput(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Resume && args.Output == m.Path("./sweep")
	})).Return(nil)

	cmd, _ := newTestRootCmd(newRunCmd())
	cmd.SetArgs([]string{"run", "Lang", "--resume", "--output", "./sweep"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRunCmd_ParallelFlagIsRegistered(t *testing.T) {
	cmd := newRunCmd()

	flag := cmd.Flags().Lookup(runParallelFlagName)
	require.NotNil(t, flag)
	require.Equal(t, "p", flag.Shorthand)
	require.NotNil(t, cmd.Flags().Lookup("shard"))
	require.NotNil(t, cmd.Flags().Lookup("resume"))
	require.NotNil(t, cmd.Flags().Lookup("ratio-step"))
}
