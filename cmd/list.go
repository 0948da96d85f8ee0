package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [datasets...]",
		Short: "List datasets and the size of their program versions",
		Long: `List the program versions of the given datasets (default: every dataset
under <data-dir>/pkl_data) with their method, statement, mutant, test and
fault counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Datasets: args})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
