// Package commands provides the CLI commands for the minihm tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minihm",
	Short: "Hindley-Milner type inference for a small expression language",
	Long: `minihm infers the principal type of expressions written in a small
ML-family language: integers, booleans, strings, variables, lambdas,
applications, if/then/else, and let (always potentially recursive,
never generalized).

Usage:
  minihm infer '\x -> x'
  minihm infer --env env.txt 'sum 3'
  minihm version`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(versionCmd)
}
