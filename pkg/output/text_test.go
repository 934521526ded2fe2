package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"csvproc/pkg/processor"
)

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format_Clean(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	report := createTestReport(t, nil)

	var buf bytes.Buffer
	err := f.Format(context.Background(), report, &buf)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "CSV Processing Report") {
		t.Error("Output missing header")
	}
	if !strings.Contains(out, "No diagnostics") {
		t.Error("Output missing 'No diagnostics' message")
	}
	if !strings.Contains(out, "Result: OK") {
		t.Error("Output missing OK result")
	}
}

func TestTextFormatter_Format_WithDiagnostics(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	report := createTestReport(t, []processor.Diagnostic{
		{Row: 3, Message: "Missing required field 'name'"},
		{Row: 0, Message: "No valid rows to process"},
	})

	var buf bytes.Buffer
	err := f.Format(context.Background(), report, &buf)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Row 3: Missing required field 'name'") {
		t.Error("Output missing row-scoped diagnostic")
	}
	if !strings.Contains(out, "No valid rows to process") {
		t.Error("Output missing file-level diagnostic")
	}
	if !strings.Contains(out, "Result: FAILED") {
		t.Error("Output missing FAILED result")
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})
	report := createTestReport(t, []processor.Diagnostic{
		{Row: 4, Message: "Negative value not allowed"},
	})

	var buf bytes.Buffer
	err := f.Format(context.Background(), report, &buf)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()

	// Quiet mode should be a single line
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Errorf("Quiet output has %d lines, want 1", len(lines))
	}

	if !strings.Contains(out, "csvproc:") {
		t.Error("Quiet output missing prefix")
	}
	if !strings.Contains(out, "1 diagnostics") {
		t.Error("Quiet output missing diagnostic count")
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})
	report := createTestReport(t, nil)

	var buf bytes.Buffer
	err := f.Format(context.Background(), report, &buf)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Run ID:") {
		t.Error("Verbose output missing run ID")
	}
	if !strings.Contains(out, "Duration:") {
		t.Error("Verbose output missing duration")
	}
}

func createTestReport(t *testing.T, diags []processor.Diagnostic) *Report {
	t.Helper()

	baseTime := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	sum := processor.Summary{
		InputFile:    "input.csv",
		OutputFile:   "output.csv",
		RowsAccepted: 1,
		Diagnostics:  diags,
		Succeeded:    len(diags) == 0,
		StartTime:    baseTime,
		EndTime:      baseTime.Add(100 * time.Millisecond),
	}
	return NewReport(sum)
}
