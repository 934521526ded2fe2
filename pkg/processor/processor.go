package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Sentinel errors returned by ValidateInput.
var (
	// ErrInputNotFound indicates the input path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputNotFile indicates the input path exists but is not a regular file.
	ErrInputNotFile = errors.New("input path is not a file")
)

// Processor reads a CSV file, validates each row against the fixed schema,
// and writes accepted rows to the output file. It accumulates one diagnostic
// per rejected row and is strictly single-pass: rows are processed in file
// order, one at a time.
type Processor struct {
	inputFile  string
	outputFile string
	dryRun     bool

	accepted []Record
	diags    []Diagnostic

	startTime time.Time
	endTime   time.Time
}

// Option configures processor behavior.
type Option func(*Processor)

// WithDryRun disables the destination write. Validation and diagnostics
// behave exactly as in a normal run.
func WithDryRun(dry bool) Option {
	return func(p *Processor) {
		p.dryRun = dry
	}
}

// New creates a processor for the given input and output paths.
func New(inputFile, outputFile string, opts ...Option) *Processor {
	p := &Processor{
		inputFile:  inputFile,
		outputFile: outputFile,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ValidateInput checks that the input path exists and is a regular file.
// It has no side effects: no diagnostic is recorded and no file is opened.
func (p *Processor) ValidateInput() error {
	info, err := os.Stat(p.inputFile)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, p.inputFile)
	}
	if err != nil {
		return fmt.Errorf("stat input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrInputNotFile, p.inputFile)
	}
	return nil
}

// Run executes the full pipeline: validate input, parse the header, transform
// each row, and write accepted rows to the output file.
//
// Row-level faults never abort the run; each one becomes a single diagnostic
// and processing continues with the next row. File-level faults (missing
// input, unreadable file, no header, write failure) are terminal and recorded
// as one diagnostic each. Nothing escapes this boundary as an error or panic.
//
// Returns true iff at least one row was accepted and no diagnostics were
// recorded. The output file is written whenever at least one row was
// accepted, even if the run as a whole fails.
func (p *Processor) Run(ctx context.Context) bool {
	p.startTime = time.Now()
	defer func() {
		p.endTime = time.Now()
	}()

	if err := p.ValidateInput(); err != nil {
		p.appendDiag(0, err.Error())
		return false
	}

	f, err := os.Open(p.inputFile) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		p.appendDiag(0, fmt.Sprintf("File processing error: %v", err))
		return false
	}

	headers, ok := p.readRows(ctx, f)

	// The input handle is released before any output is written.
	if cerr := f.Close(); cerr != nil {
		p.appendDiag(0, fmt.Sprintf("File processing error: %v", cerr))
		ok = false
	}
	if !ok {
		return false
	}

	if len(p.accepted) == 0 {
		p.appendDiag(0, "No valid rows to process")
		return false
	}

	if !p.dryRun {
		if err := writeRecords(p.outputFile, headers, p.accepted); err != nil {
			p.appendDiag(0, fmt.Sprintf("Writing output failed: %v", err))
			return false
		}
	}

	return len(p.diags) == 0
}

// readRows parses the header and transforms every data row, accumulating
// diagnostics. It returns false when a terminal file-level fault occurred.
func (p *Processor) readRows(ctx context.Context, r io.Reader) ([]string, bool) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err == io.EOF {
		p.appendDiag(0, "CSV file has no headers")
		return nil, false
	}
	if err != nil {
		p.appendDiag(0, fmt.Sprintf("File processing error: %v", err))
		return nil, false
	}

	rowNum := 1 // the header is row 1
	for {
		if err := ctx.Err(); err != nil {
			p.appendDiag(0, fmt.Sprintf("File processing error: %v", err))
			return nil, false
		}

		fields, err := reader.Read()
		if err == io.EOF {
			return headers, true
		}
		rowNum++
		if err != nil {
			// Malformed row (field count, quoting). Skip it and continue.
			p.appendDiag(rowNum, fmt.Sprintf("%v", err))
			continue
		}

		raw := RawRow{Num: rowNum, Fields: make(map[string]string, len(headers))}
		for i, h := range headers {
			if i < len(fields) {
				raw.Fields[h] = fields[i]
			}
		}

		record, diag := p.transformRow(raw)
		if diag != nil {
			p.diags = append(p.diags, *diag)
			continue
		}
		p.accepted = append(p.accepted, *record)
	}
}

// transformRow evaluates one row, converting any panic into a diagnostic so
// that no single row can abort the run.
func (p *Processor) transformRow(raw RawRow) (record *Record, diag *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			diag = &Diagnostic{Row: raw.Num, Message: fmt.Sprintf("%v", r)}
		}
	}()
	return TransformRow(raw)
}

// Summary returns a projection of the processor state. It is safe to call at
// any time, including before Run and repeatedly after it.
func (p *Processor) Summary() Summary {
	diags := make([]Diagnostic, len(p.diags))
	copy(diags, p.diags)

	return Summary{
		InputFile:    p.inputFile,
		OutputFile:   p.outputFile,
		RowsAccepted: len(p.accepted),
		Diagnostics:  diags,
		Succeeded:    len(p.diags) == 0,
		StartTime:    p.startTime,
		EndTime:      p.endTime,
	}
}

func (p *Processor) appendDiag(row int, message string) {
	p.diags = append(p.diags, Diagnostic{Row: row, Message: message})
}
