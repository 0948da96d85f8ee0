package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

const (
	dampingFlagName       = "damping"
	maxIterationsFlagName = "max-iterations"
)

// pageRankCmd represents the pagerank command.
var pageRankCmd = newPageRankCmd()

func newPageRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagerank <dataset>",
		Short: "Rank graph nodes with PageRank",
		Long: `Run PageRank on both graph views of each program version and store the
passed, failed and failed-minus-passed vectors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.PageRank(cmd.Context(), stageArgs(args[0]))
		},
	}

	defaults := domain.DefaultPageRankOptions()

	cmd.Flags().Float64(dampingFlagName, defaults.Damping, "damping factor in (0, 1)")
	bindFlagToConfig(cmd.Flags().Lookup(dampingFlagName), pageRankDampingKey)

	cmd.Flags().Int(maxIterationsFlagName, defaults.MaxIterations, "power iteration cap")
	bindFlagToConfig(cmd.Flags().Lookup(maxIterationsFlagName), pageRankMaxIterKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(pageRankCmd)
}
