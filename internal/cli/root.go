// Package cli provides the command-line interface for csvproc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvproc/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1 // Usage or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvproc",
		Short: "Validate and convert CSV records",
		Long: `csvproc is a CSV processing tool that validates rows against a fixed schema.

Each row must carry:
  - id     an integer
  - name   a non-empty string (surrounding whitespace is trimmed)
  - value  a non-negative number

Rows that pass every check are written to the output file; every rejected
row is reported as a diagnostic with its source row number.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewProcessCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
