package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvproc/pkg/output"
	"csvproc/pkg/processor"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "check <input-file>",
		Short: "Validate a CSV file without writing output",
		Long: `Run the full validation pipeline against a CSV file without writing an
output file.

Reports the same diagnostics and exit codes as process. Useful for vetting
a file before committing to a destination.

Example:
  csvproc check input.csv
  csvproc check -f yaml input.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Report format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include run metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *ProcessOptions) error {
	inputFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := createFormatter(opts.Format, opts)
	if err != nil {
		return err
	}

	p := processor.New(inputFile, "", processor.WithDryRun(true))
	ok := p.Run(ctx)

	report := output.NewReport(p.Summary())
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if !ok {
		ExitCode = 1
	}

	return nil
}
