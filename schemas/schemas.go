// Package schemas validates raw request payloads and turns them into typed
// records. Each endpoint has one parse function that returns either the
// typed data or the first failing field, in declaration order.
package schemas

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	CodeInvalidData = "INVALID_DATA"
	CodeInvalidType = "INVALID_TYPE"

	// FallbackMessage is used when a body cannot even be decoded into the
	// raw input shape.
	FallbackMessage = "Os dados fornecidos no corpo da requisição são inválidos."
)

// FieldError is the first validation failure for a request.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidData(field, message string) *FieldError {
	return &FieldError{Field: field, Code: CodeInvalidData, Message: message}
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDatetime(raw string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", raw)
}

// coerceNumber accepts a JSON number or a numeric string.
func coerceNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
