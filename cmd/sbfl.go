package cmd

import "github.com/spf13/cobra"

// sbflCmd represents the sbfl command.
var sbflCmd = newSBFLCmd()

func newSBFLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sbfl <dataset>",
		Short: "Score statements and methods with spectrum formulas",
		Long: `Compute the SBFL suspicion of every statement and method of each program
version, plus the contribution of every test case, for each selected formula.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.SBFL(cmd.Context(), stageArgs(args[0]))
		},
	}
}

func init() {
	rootCmd.AddCommand(sbflCmd)
}
