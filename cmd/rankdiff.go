package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

var rankDiffLeftFlag string
var rankDiffRightFlag string
var rankDiffTopFlag int

// rankDiffCmd represents the rankdiff command.
var rankDiffCmd = newRankDiffCmd()

func newRankDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rankdiff <dataset> <project> <formula>",
		Short: "Diff two statement rankings of one program version",
		Long: `Print a unified diff between two stored statement rankings of a program
version. Rankings are named sbfl or mbfl/<statements>/<test-cases>/<mutants>.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseRankingSource(rankDiffLeftFlag)
			if err != nil {
				return err
			}

			right, err := parseRankingSource(rankDiffRightFlag)
			if err != nil {
				return err
			}

			return workflow.RankDiff(cmd.Context(), domain.RankDiffArgs{
				Dataset: args[0],
				Project: args[1],
				Formula: args[2],
				Left:    left,
				Right:   right,
				Top:     rankDiffTopFlag,
			})
		},
	}

	cmd.Flags().StringVar(&rankDiffLeftFlag, "left", "sbfl", "left ranking")
	cmd.Flags().StringVar(&rankDiffRightFlag, "right", "mbfl/1.0/1.0/1.0", "right ranking")
	cmd.Flags().IntVarP(&rankDiffTopFlag, "top", "n", 20, "compare the first N rows (0 compares everything)")

	return cmd
}

func init() {
	rootCmd.AddCommand(rankDiffCmd)
}
