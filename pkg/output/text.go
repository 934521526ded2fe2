package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "csvproc: %d rows accepted, %d diagnostics, %s\n",
		report.Summary.RowsAccepted,
		report.Summary.DiagnosticCount,
		resultWord(report.Summary.Succeeded))
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== CSV Processing Report ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Input:  %s\n", report.Metadata.InputFile)
	fmt.Fprintf(w, "Output: %s\n", report.Metadata.OutputFile)
	fmt.Fprintf(w, "Rows accepted: %d\n", report.Summary.RowsAccepted)
	fmt.Fprintln(w)

	if report.HasDiagnostics() {
		fmt.Fprintf(w, "Diagnostics: %d\n", report.Summary.DiagnosticCount)
		for _, diag := range report.Diagnostics {
			fmt.Fprintf(w, "  - %s\n", diag)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No diagnostics")
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d rows accepted, %d diagnostics\n",
		report.Summary.RowsAccepted,
		report.Summary.DiagnosticCount)
	fmt.Fprintf(w, "Result: %s\n", resultWord(report.Summary.Succeeded))

	if f.opts.Verbose {
		fmt.Fprintf(w, "Run ID: %s\n", report.Metadata.RunID)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func resultWord(succeeded bool) string {
	if succeeded {
		return "OK"
	}
	return "FAILED"
}
