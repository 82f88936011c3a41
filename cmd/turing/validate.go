package main

import (
	"os"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the machine description for consistency",
	Long: `Reports every malformed field of the description, then warns about rules
that can never fire and final states the machine can never reach.`,
	Run: func(cmd *cobra.Command, args []string) {
		machine, _ := cmd.Flags().GetString("machine")
		if len(args) > 0 {
			machine = args[0]
		}

		_, err := cli.Validate(cmd.Context(), machine, os.Stdout)
		exitOnError(err)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
