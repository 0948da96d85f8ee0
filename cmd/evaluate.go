package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/spf13/cobra"
)

var evaluateTechniqueFlag string

var evaluateRatios ratioFlags

// evaluateCmd represents the evaluate command.
var evaluateCmd = newEvaluateCmd()

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <dataset>",
		Short: "Evaluate stored rankings against the known faults",
		Long: `Rank the statements of every program version by their stored SBFL or MBFL
suspicion and report top-1/3/5/10 hits, first rank and average rank of the
faulty methods.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evalArgs := domain.EvaluateArgs{
				StageArgs: stageArgs(args[0]),
				Technique: m.Technique(evaluateTechniqueFlag),
				Output:    outputPath(),
			}

			if evalArgs.Technique == m.TechniqueMBFL {
				ratios := evaluateRatios.ratios()
				evalArgs.Ratios = &ratios
			}

			return workflow.Evaluate(cmd.Context(), evalArgs)
		},
	}

	cmd.Flags().StringVarP(&evaluateTechniqueFlag, "technique", "t", string(m.TechniqueSBFL), "technique to evaluate (sbfl or mbfl)")
	evaluateRatios.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}
