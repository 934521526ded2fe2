package processor

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// writeRecords persists accepted records to the output file. The header row
// preserves the full source header sequence; data rows carry the three typed
// fields rendered back to text, with any pass-through columns left empty.
func writeRecords(path string, headers []string, records []Record) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w := csv.NewWriter(f)

	writeErr := w.Write(headers)
	for _, rec := range records {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(recordFields(headers, rec))
	}
	w.Flush()
	if writeErr == nil {
		writeErr = w.Error()
	}

	if cerr := f.Close(); writeErr == nil {
		writeErr = cerr
	}
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	return nil
}

// recordFields renders one record in the original column order.
func recordFields(headers []string, rec Record) []string {
	fields := make([]string, len(headers))
	for i, h := range headers {
		switch h {
		case "id":
			fields[i] = strconv.Itoa(rec.ID)
		case "name":
			fields[i] = rec.Name
		case "value":
			fields[i] = strconv.FormatFloat(rec.Value, 'g', -1, 64)
		}
	}
	return fields
}
