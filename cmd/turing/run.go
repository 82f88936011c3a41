package main

import (
	"fmt"
	"os"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Decide every word of a word list",
	Long: `Simulates the machine on every line of the words file and writes
"<word> - Accepted" or "<word> - Rejected" lines to the output file.`,
	Run: func(cmd *cobra.Command, args []string) {
		words, _ := cmd.Flags().GetString("words")
		output, _ := cmd.Flags().GetString("output")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		opts := cli.RunOptions{
			EngineOptions: engineOptions(cmd),
			WordsPath:     words,
			OutputPath:    output,
			Concurrency:   concurrency,
		}

		quiet := output == cli.StdoutPath || !cli.IsTerminal(os.Stderr)
		if !quiet {
			tui.PrintBanner(os.Stderr, turing.Version)
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		summary, err := cli.RunBatch(sigCtx, opts, os.Stdout)
		exitOnError(err)

		if !quiet {
			fmt.Fprintf(os.Stderr, "%d words: %d accepted, %d rejected -> %s\n",
				summary.Total, summary.Accepted, summary.Rejected, output)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("words", "w", "words.txt", "Word list, one word per line")
	runCmd.Flags().StringP("output", "o", "results.txt", "Results file ('-' for stdout)")
	runCmd.Flags().IntP("concurrency", "c", 1, "Words simulated in parallel")
	addCacheFlags(runCmd)

	// Running the batch is the default action.
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
