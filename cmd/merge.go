package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
)

var mergeInputsFlag []string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <dataset>",
		Short: "Merge sharded reports into a single report",
		Long:  "Merge reports from shard-* subdirectories of the dataset's evaluation directory into one report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]m.Path, 0, len(mergeInputsFlag))
			for _, input := range mergeInputsFlag {
				inputs = append(inputs, m.Path(input))
			}

			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Dataset: args[0],
				Output:  outputPath(),
				Inputs:  inputs,
			})
		},
	}

	cmd.Flags().StringSliceVarP(&mergeInputsFlag, "input", "i", nil, "shard report directories to merge (default: discover shard-* directories)")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
