package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrMalformedRecord  = errors.New("malformed session record")
	ErrInsufficientData = errors.New("not enough paired observations")
	ErrZeroVariance     = errors.New("metric has zero variance")
	ErrUnknownMetric    = errors.New("unknown metric name")
	ErrInvalidInput     = errors.New("invalid input")
)

// MalformedRecordError describes a dataset row that violates the session
// invariants. It unwraps to ErrMalformedRecord so callers can match the
// class with errors.Is while still reporting the offending row.
type MalformedRecordError struct {
	Line   int    // 1-based line in the source file, 0 when unknown
	Column string // offending column, empty when the row as a whole is bad
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("malformed session record at line %d: %s: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("malformed session record at line %d: %s", e.Line, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
