// Package main provides the entry point for the numlit CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Andlon/numeric-literals/cmd/numlit/commands"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlit",
		Short: "numlit - numeric literal replacement preprocessor",
		Long: `numlit rewrites integer and float literals inside annotated functions,
traits and impl blocks into user-supplied template expressions, so
hard-coded constants can be lifted into generic numeric code.

Commands:
  expand    Rewrite annotated files and write the expanded source
  check     Verify that annotated files parse and expand cleanly`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewExpandCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "numlit %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
