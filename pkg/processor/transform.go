package processor

import (
	"fmt"
	"strconv"
	"strings"
)

// requiredFields are the columns every row must provide, checked in order.
var requiredFields = []string{"id", "name", "value"}

// TransformRow validates and type-converts a single raw row. Exactly one of
// the return values is non-nil: the typed record on acceptance, or a
// diagnostic describing the first failed check on rejection.
//
// The checks run in a fixed order and short-circuit: required fields present
// and non-blank, then type conversion, then the non-negative value rule.
// A rejected row produces exactly one diagnostic.
func TransformRow(row RawRow) (*Record, *Diagnostic) {
	for _, field := range requiredFields {
		raw, ok := row.Fields[field]
		if !ok || strings.TrimSpace(raw) == "" {
			return nil, &Diagnostic{
				Row:     row.Num,
				Message: fmt.Sprintf("Missing required field '%s'", field),
			}
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(row.Fields["id"]))
	if err != nil {
		return nil, conversionDiagnostic(row.Num, err)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(row.Fields["value"]), 64)
	if err != nil {
		return nil, conversionDiagnostic(row.Num, err)
	}

	if value < 0 {
		return nil, &Diagnostic{Row: row.Num, Message: "Negative value not allowed"}
	}

	return &Record{
		ID:    id,
		Name:  strings.TrimSpace(row.Fields["name"]),
		Value: value,
	}, nil
}

func conversionDiagnostic(rowNum int, err error) *Diagnostic {
	return &Diagnostic{
		Row:     rowNum,
		Message: fmt.Sprintf("Data conversion error - %v", err),
	}
}
