package cmd

import (
	"flreduce.dev/pkg/flreduce/internal/domain"
	"github.com/spf13/cobra"
)

var graphMermaidFlag bool

// graphCmd represents the graph command.
var graphCmd = newGraphCmd()

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <dataset>",
		Short: "Build the passed and failed heterogeneous graphs",
		Long: `Build the method/statement/test adjacency matrix of each program version
for the passed and the failed test view from the stored SBFL results.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Graph(cmd.Context(), domain.GraphArgs{
				StageArgs: stageArgs(args[0]),
				Mermaid:   graphMermaidFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&graphMermaidFlag, "mermaid", false, "also write a Mermaid flowchart of each graph")

	return cmd
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
