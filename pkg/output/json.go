package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders reports as machine-readable JSON, one document
// per run.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as indented JSON. Quiet mode emits a single
// compact line carrying only the run summary (accepted rows, diagnostic
// count, success flag), mirroring the text formatter's quiet line.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)

	if f.opts.Quiet {
		return encoder.Encode(report.Summary)
	}

	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
