package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a deterministic single-tape Turing machine simulator",
	Long: `Turing loads a machine description (JSON or YAML) and decides, for every
input word, whether the machine accepts or rejects it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("machine", "m", "specifications.json", "Machine description file (.json, .yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every simulation step to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
}

// engineOptions collects the flags shared by every command.
func engineOptions(cmd *cobra.Command) cli.EngineOptions {
	flags := cmd.Flags()
	machine, _ := flags.GetString("machine")
	debug, _ := flags.GetBool("debug")
	logFile, _ := flags.GetString("log-file")

	opts := cli.EngineOptions{
		MachinePath: machine,
		Debug:       debug,
		LogFile:     logFile,
	}
	if flags.Lookup("redis") != nil {
		opts.RedisAddr, _ = flags.GetString("redis")
	}
	if flags.Lookup("cache-ttl") != nil {
		opts.CacheTTL, _ = flags.GetDuration("cache-ttl")
	}
	return opts
}

func addCacheFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis", "", "Redis address (host:port) for the verdict cache")
	cmd.Flags().Duration("cache-ttl", 24*time.Hour, "Expiration of cached verdicts (0 keeps them forever)")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
