package schedule

import (
	"errors"
	"fmt"

	"github.com/kilianp07/pmrs/core/band"
)

// Sentinel errors matched with errors.Is against the typed errors below.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedBand = errors.New("unsupported band")
	ErrInvalidRange    = errors.New("invalid range")
)

// InvalidInputError reports a date that does not parse as YYYY-MM-DD.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected YYYY-MM-DD", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// UnsupportedBandError reports an unknown band name.
type UnsupportedBandError struct {
	Name band.Name
	Err  error
}

func (e *UnsupportedBandError) Error() string {
	return fmt.Sprintf("unsupported band %q", e.Name)
}

func (e *UnsupportedBandError) Unwrap() error { return e.Err }

func (e *UnsupportedBandError) Is(target error) bool { return target == ErrUnsupportedBand }

// InvalidRangeError reports a rotation length below one day.
type InvalidRangeError struct {
	Field string
	Value int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be at least 1", e.Field, e.Value)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// ErrorKind classifies err for metrics labels.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUnsupportedBand):
		return "unsupported_band"
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	default:
		return "other"
	}
}
