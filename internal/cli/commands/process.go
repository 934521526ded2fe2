package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvproc/pkg/output"
	"csvproc/pkg/processor"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ProcessOptions holds command-line options for the process command.
type ProcessOptions struct {
	Format  string
	Verbose bool
	Quiet   bool
}

// NewProcessCommand creates the process command.
func NewProcessCommand() *cobra.Command {
	opts := &ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "process <input-file> <output-file>",
		Short: "Validate a CSV file and write accepted rows",
		Long: `Read a CSV file, validate each row against the fixed schema, and write
the rows that pass to the output file.

Rows that fail validation are skipped and reported as diagnostics; a single
bad row never aborts the run. The output file keeps the full source header
row, and accepted rows appear in their original order.

Exit codes:
  0 - All rows accepted
  1 - Usage error, or the run recorded any diagnostic

Example:
  csvproc process input.csv output.csv
  csvproc process -f json input.csv output.csv
  csvproc process -q input.csv output.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Report format (text|json|yaml)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include run metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string, opts *ProcessOptions) error {
	inputFile, outputFile := args[0], args[1]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Reject an unknown format before any file is touched
	formatter, err := createFormatter(opts.Format, opts)
	if err != nil {
		return err
	}

	p := processor.New(inputFile, outputFile)
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

func createFormatter(format string, opts *ProcessOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	case "yaml":
		return output.NewYAMLFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown report format %q (use text, json, or yaml)", format)
	}
}
