package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure taxonomy. Callers distinguish them with
// errors.Is.
var (
	// ErrIncompleteSubmission: one or more required fields missing or empty.
	ErrIncompleteSubmission = errors.New("incomplete submission")

	// ErrInvalidCoordinate: latitude/longitude outside valid Earth bounds.
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	// ErrInvalidFilter: a search filter naming an unknown area or crime type.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidDateRange: a date-range filter with exactly one bound, or
	// a lower bound after the upper bound.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrStoreUnavailable: the report store cannot be reached. Operations
	// fail fast; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("report store unavailable")

	// ErrEvidenceStorage: the evidence upload failed. The submission is
	// aborted before any row is written.
	ErrEvidenceStorage = errors.New("evidence storage failed")
)

// ValidationError carries the sentinel reason plus the offending fields.
type ValidationError struct {
	Reason error
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}

// Unwrap exposes the sentinel so errors.Is(err, ErrIncompleteSubmission)
// and friends work through the wrapper.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}
