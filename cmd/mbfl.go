package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

var mbflRatios ratioFlags

// mbflCmd represents the mbfl command.
var mbflCmd = newMBFLCmd()

func newMBFLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mbfl <dataset>",
		Short: "Reduce the test suite and re-score statements from mutant kills",
		Long: `Keep the statements with the highest PageRank difference, the passed tests
with the highest test signal and a sampled share of the remaining mutants,
then score every statement by the best of its retained mutants.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.MBFL(cmd.Context(), domain.MBFLArgs{
				StageArgs: stageArgs(args[0]),
				Ratios:    mbflRatios.ratios(),
			})
		},
	}

	mbflRatios.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mbflCmd)
}
