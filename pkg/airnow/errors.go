package airnow

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat indicates a value does not have the expected shape.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrParseFailure indicates a date string could not be parsed.
	ErrParseFailure = errors.New("unable to parse date")
	// ErrTimezonePresent indicates a date carried a zone designator. The API
	// only accepts naive UTC dates.
	ErrTimezonePresent = errors.New("date includes timezone info, must be UTC")
	// ErrOutOfRange indicates a numeric value is outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrMissingLocation is returned when neither a ZIP code nor a complete
	// latitude/longitude pair was supplied.
	ErrMissingLocation = errors.New("airnow: location is required: provide a ZIP code or latitude and longitude")
	// ErrMissingCredential is returned when no API key is available.
	ErrMissingCredential = errors.New("airnow: an API key is required")
)

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Field == "" {
		return fmt.Sprintf("airnow: invalid value %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("airnow: invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
