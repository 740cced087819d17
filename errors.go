package gochart

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates a series whose length differs from the labels.
var ErrShapeMismatch = errors.New("series length does not match labels")

// ErrDuplicateSeries indicates two series sharing one id.
var ErrDuplicateSeries = errors.New("duplicate series id")

// ErrMissingData indicates a kind whose required payload is absent or empty.
var ErrMissingData = errors.New("missing chart data")

// ErrUnsupportedKind indicates an unrecognized chart kind tag.
var ErrUnsupportedKind = errors.New("unsupported chart type")

// ErrDegenerate indicates a derived metric with a zero or missing baseline.
var ErrDegenerate = errors.New("degenerate data")

// SpecError describes a problem with one chart spec.
type SpecError struct {
	Kind   Kind
	Series string // series id, empty when the error is not series-specific
	Err    error
}

func (e *SpecError) Error() string {
	if e.Series != "" {
		return fmt.Sprintf("chart %q series %q: %v", e.Kind, e.Series, e.Err)
	}
	return fmt.Sprintf("chart %q: %v", e.Kind, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// NewSpecError creates a new SpecError.
func NewSpecError(kind Kind, series string, err error) *SpecError {
	return &SpecError{
		Kind:   kind,
		Series: series,
		Err:    err,
	}
}
