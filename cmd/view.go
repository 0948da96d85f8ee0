package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
)

var viewShardFlag string
var viewTechniqueFlag string
var viewFormulaFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <dataset>",
		Short: "View a saved evaluation report",
		Long: `View the evaluation summaries of a dataset from the output directory.
On a terminal the table can be browsed and sorted interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(viewShardFlag)

			return workflow.View(cmd.Context(), domain.ViewArgs{
				Dataset:         args[0],
				Output:          outputPath(),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				Technique:       m.Technique(viewTechniqueFlag),
				Formula:         viewFormulaFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&viewShardFlag, "shard", "s", "", "view the report of one shard, INDEX/TOTAL")
	cmd.Flags().StringVarP(&viewTechniqueFlag, "technique", "t", "", "only show this technique (sbfl or mbfl)")
	cmd.Flags().StringVar(&viewFormulaFlag, "formula", "", "only show this formula")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
