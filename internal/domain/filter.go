package domain

import "time"

// Filter selects a subset of reports. Zero values mean "no constraint";
// provided constraints combine with logical AND.
type Filter struct {
	Area      Area
	CrimeType CrimeType
	DateFrom  time.Time // inclusive, compared against occurred_date only
	DateTo    time.Time // inclusive
}

// HasDateRange reports whether both date bounds are set.
func (f Filter) HasDateRange() bool {
	return !f.DateFrom.IsZero() && !f.DateTo.IsZero()
}

// Validate enforces the filter contract: enumeration values must be known,
// and a date range needs both bounds or neither — a half-open range is a
// client construction error, not a supported filter state. A lower bound
// after the upper bound is likewise rejected here, at the boundary, so the
// query engine can assume validated input.
func (f Filter) Validate() error {
	if f.Area != "" && !f.Area.Valid() {
		return &ValidationError{Reason: ErrInvalidFilter, Fields: []string{"area"}}
	}
	if f.CrimeType != "" && !f.CrimeType.Valid() {
		return &ValidationError{Reason: ErrInvalidFilter, Fields: []string{"crime_type"}}
	}

	if f.DateFrom.IsZero() != f.DateTo.IsZero() {
		return &ValidationError{Reason: ErrInvalidDateRange, Fields: []string{"date_range"}}
	}
	if f.HasDateRange() && f.DateFrom.After(f.DateTo) {
		return &ValidationError{Reason: ErrInvalidDateRange, Fields: []string{"date_range"}}
	}
	return nil
}
