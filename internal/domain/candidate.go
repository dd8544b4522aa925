package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var candidateValidator = validator.New()

// EvidenceFile is an optional media attachment on a submission. The core
// records a storage reference only; payload contents are never inspected.
type EvidenceFile struct {
	Name string
	Data []byte
}

// Candidate is an unvalidated, caller-provided submission that becomes a
// Report if validation passes.
type Candidate struct {
	OccurredDate time.Time     `json:"occurred_date" validate:"required"`
	OccurredTime TimeOfDay     `json:"occurred_time"`
	CrimeType    CrimeType     `json:"crime_type" validate:"required"`
	Area         Area          `json:"area" validate:"required"`
	Description  string        `json:"description" validate:"required"`
	Latitude     *float64      `json:"latitude" validate:"required,latitude"`
	Longitude    *float64      `json:"longitude" validate:"required,longitude"`
	Evidence     *EvidenceFile `json:"-"`
}

// Validate checks the candidate against the submission contract. It returns
// a *ValidationError wrapping ErrIncompleteSubmission when required fields
// are missing or carry unknown enumeration values, or ErrInvalidCoordinate
// when the point lies outside valid Earth bounds. A nil latitude or
// longitude means no geographic point was resolved and counts as missing,
// not as (0, 0). Completeness failures are reported before coordinate
// failures.
func (c Candidate) Validate() error {
	var missing, invalidCoord []string

	if err := candidateValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "latitude", "longitude":
				invalidCoord = append(invalidCoord, fe.Tag())
			default:
				missing = append(missing, fieldName(fe.Field()))
			}
		}
	}

	if strings.TrimSpace(c.Description) == "" {
		missing = appendUnique(missing, "description")
	}
	if c.CrimeType != "" && !c.CrimeType.Valid() {
		missing = appendUnique(missing, "crime_type")
	}
	if c.Area != "" && !c.Area.Valid() {
		missing = appendUnique(missing, "area")
	}

	if len(missing) > 0 {
		return &ValidationError{Reason: ErrIncompleteSubmission, Fields: missing}
	}
	if len(invalidCoord) > 0 {
		return &ValidationError{Reason: ErrInvalidCoordinate, Fields: invalidCoord}
	}
	return nil
}

// BuildReport assembles a Report from a validated candidate. DayOfWeek and
// Month are computed here, once, from the occurred date; CreatedAt comes
// from the injected clock. The ID is assigned by the store on insert.
// Callers must Validate first; the coordinate pointers are dereferenced.
func BuildReport(c Candidate) Report {
	return Report{
		OccurredDate: c.OccurredDate,
		OccurredTime: c.OccurredTime,
		CrimeType:    c.CrimeType,
		Description:  strings.TrimSpace(c.Description),
		Area:         c.Area,
		Latitude:     *c.Latitude,
		Longitude:    *c.Longitude,
		DayOfWeek:    c.OccurredDate.Weekday().String(),
		Month:        int(c.OccurredDate.Month()),
		CreatedAt:    clock.Now().UTC(),
	}
}

// fieldName maps struct field names from validator errors to their wire names.
func fieldName(structField string) string {
	switch structField {
	case "OccurredDate":
		return "occurred_date"
	case "CrimeType":
		return "crime_type"
	case "Area":
		return "area"
	case "Description":
		return "description"
	default:
		return strings.ToLower(structField)
	}
}

func appendUnique(fields []string, field string) []string {
	for _, f := range fields {
		if f == field {
			return fields
		}
	}
	return append(fields, field)
}
