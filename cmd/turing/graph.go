package main

import (
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the machine as a Mermaid state diagram",
	Long: `Outputs a Mermaid diagram (stateDiagram-v2) of the transition table.
With --word, the states visited while simulating that word are highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		word, _ := cmd.Flags().GetString("word")

		err := cli.Graph(cmd.Context(), cli.GraphOptions{
			EngineOptions: engineOptions(cmd),
			Word:          word,
			Trace:         cmd.Flags().Changed("word"),
		}, os.Stdout)
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("word", "", "Highlight the path of this word")
}
