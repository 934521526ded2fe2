// Package processor provides the CSV record validation and conversion pipeline.
package processor

import (
	"fmt"
	"time"
)

// RawRow is one input line as parsed from the CSV, keyed by header name.
// It is a transient parse artifact: created per line, discarded after transform.
type RawRow struct {
	// Num is the 1-based row number in the source file (the header is row 1).
	Num int

	// Fields maps column name to the raw string value.
	Fields map[string]string
}

// Record is a fully validated, typed row. Only rows that pass every
// validation step become Records.
type Record struct {
	ID    int
	Name  string
	Value float64
}

// Diagnostic describes a rejected row or a fatal file-level condition.
type Diagnostic struct {
	// Row is the 1-based source row number, or 0 for file-level conditions.
	Row int `json:"row" yaml:"row"`

	// Message is a human-readable description of the problem.
	Message string `json:"message" yaml:"message"`
}

// String renders the diagnostic with its row prefix when row-scoped.
func (d Diagnostic) String() string {
	if d.Row > 0 {
		return fmt.Sprintf("Row %d: %s", d.Row, d.Message)
	}
	return d.Message
}

// Summary is a point-in-time projection of a pipeline run.
type Summary struct {
	// InputFile is the source path.
	InputFile string

	// OutputFile is the destination path.
	OutputFile string

	// RowsAccepted is the number of rows that passed validation.
	RowsAccepted int

	// Diagnostics contains every recorded problem, in the order encountered.
	Diagnostics []Diagnostic

	// Succeeded is true iff no diagnostics were recorded. This is stricter
	// than "some rows processed": a run with any row error is not a success.
	Succeeded bool

	// StartTime is when the run began (zero before Run is called).
	StartTime time.Time

	// EndTime is when the run completed (zero before Run completes).
	EndTime time.Time
}
