package model

import (
	"errors"
	"fmt"
)

// ErrorKind tags the closed set of validation failures a query can produce.
type ErrorKind int

const (
	KindInvalidZone ErrorKind = iota + 1
	KindAmbiguousAbbreviation
	KindOffsetLiteral
	KindInvalidTimeFormat
	KindNonexistentCivilTime
)

// ValidationError is a user-facing input failure. It names the offending
// input verbatim and states the expected valid form. Validation errors are
// surfaced inside the response payload with is_error set, never as
// protocol-level faults.
type ValidationError struct {
	Kind    ErrorKind
	Input   string
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// InvalidZone reports input that is not a canonical IANA zone name.
func InvalidZone(input string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidZone,
		Input:   input,
		message: fmt.Sprintf("Invalid timezone: '%s'. Please use a valid IANA timezone name (e.g., 'America/New_York').", input),
	}
}

// AmbiguousAbbreviation reports a short all-uppercase input such as "EST"
// that could name more than one zone.
func AmbiguousAbbreviation(input string) *ValidationError {
	return &ValidationError{
		Kind:    KindAmbiguousAbbreviation,
		Input:   input,
		message: fmt.Sprintf("Timezone abbreviation '%s' is ambiguous. Please use a valid IANA timezone name (e.g., 'America/New_York' instead of 'EST').", input),
	}
}

// OffsetLiteral reports a raw UTC offset such as "+05:30" or "UTC+5:30".
// The example mirrors the shape of the rejected literal.
func OffsetLiteral(input, example string) *ValidationError {
	return &ValidationError{
		Kind:    KindOffsetLiteral,
		Input:   input,
		message: fmt.Sprintf("Timezone offset '%s' is not supported. Please use a valid IANA timezone name (e.g., 'Asia/Kolkata' instead of '%s').", input, example),
	}
}

// InvalidTimeFormat reports input that is not a strict HH:MM time.
func InvalidTimeFormat(input string) *ValidationError {
	return &ValidationError{
		Kind:    KindInvalidTimeFormat,
		Input:   input,
		message: fmt.Sprintf("Invalid time format: '%s'. Expected HH:MM in 24-hour format (e.g., '14:30').", input),
	}
}

// NonexistentCivilTime reports a civil time skipped by a spring-forward DST
// transition in the source zone.
func NonexistentCivilTime(timeInput, zone string) *ValidationError {
	return &ValidationError{
		Kind:  KindNonexistentCivilTime,
		Input: timeInput,
		message: fmt.Sprintf("The time %s does not exist in timezone '%s' due to a DST transition (spring forward). Please choose a different time.",
			timeInput, zone),
	}
}

// AsValidation unwraps err as a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}
