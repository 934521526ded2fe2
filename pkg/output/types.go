// Package output provides report building and formatting for pipeline runs.
package output

import (
	"time"

	"github.com/google/uuid"

	"csvproc/pkg/processor"
)

// Report is the complete output of one pipeline run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Diagnostics lists every recorded problem, in the order encountered.
	Diagnostics []processor.Diagnostic `json:"diagnostics" yaml:"diagnostics"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// RowsAccepted is the number of rows that passed validation.
	RowsAccepted int `json:"rows_accepted" yaml:"rows_accepted"`

	// DiagnosticCount is the total number of recorded diagnostics.
	DiagnosticCount int `json:"diagnostic_count" yaml:"diagnostic_count"`

	// Succeeded is true iff the run recorded no diagnostics.
	Succeeded bool `json:"succeeded" yaml:"succeeded"`
}

// Metadata provides context about the run.
type Metadata struct {
	// InputFile is the source path.
	InputFile string `json:"input_file" yaml:"input_file"`

	// OutputFile is the destination path.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// RunID uniquely identifies this run.
	RunID string `json:"run_id" yaml:"run_id"`

	// ProcessedAt is when the run completed.
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`

	// Duration is how long the run took.
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// NewReport creates a Report from a pipeline summary.
func NewReport(sum processor.Summary) *Report {
	return &Report{
		Summary: Summary{
			RowsAccepted:    sum.RowsAccepted,
			DiagnosticCount: len(sum.Diagnostics),
			Succeeded:       sum.Succeeded,
		},
		Diagnostics: sum.Diagnostics,
		Metadata: Metadata{
			InputFile:   sum.InputFile,
			OutputFile:  sum.OutputFile,
			RunID:       uuid.NewString(),
			ProcessedAt: sum.EndTime,
			Duration:    sum.EndTime.Sub(sum.StartTime),
		},
	}
}

// HasDiagnostics returns true if any diagnostics were recorded.
func (r *Report) HasDiagnostics() bool {
	return r.Summary.DiagnosticCount > 0
}
