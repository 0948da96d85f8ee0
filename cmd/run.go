package cmd

import (
	"fmt"

	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

var runParallelFlag int
var runShardFlag string
var runResumeFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <dataset>",
		Short: "Run the full pipeline and the ratio sweep",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(runShardFlag)

			return workflow.Run(cmd.Context(), domain.RunArgs{
				StageArgs:       stageArgs(args[0]),
				Output:          outputPath(),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				Resume:          runResumeFlag,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of program versions processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().BoolVar(&runResumeFlag, "resume", false, "skip cells recorded in the checkpoint of an earlier run")
	cmd.Flags().Float64("ratio-step", domain.DefaultConfig().RatioStep, "spacing of the ratio grid")
	bindFlagToConfig(cmd.Flags().Lookup("ratio-step"), reductionRatioStepKey)
	cmd.Flags().Uint64("seed", 0, "seed of the mutant sampling")
	bindFlagToConfig(cmd.Flags().Lookup("seed"), reductionSeedKey)
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
