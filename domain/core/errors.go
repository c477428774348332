package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrEmptyColumn      = errors.New("column has no values")
	ErrInvalidPrecision = errors.New("invalid rounding precision")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrInvalidBins      = errors.New("invalid bin count")
	ErrInvalidRange     = errors.New("invalid truncation range")

	// Computation errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewEmptyColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrEmptyColumn, name)
}

func NewInvalidPrecisionError(precision int) error {
	return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidPrecision, precision)
}

func NewUnknownColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

func NewInvalidBinsError(value string) error {
	return fmt.Errorf("%w: %s", ErrInvalidBins, value)
}

// Error checking helpers

// IsInputError reports whether err was caused by caller-supplied input
// rather than a failure while computing.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyColumn) ||
		errors.Is(err, ErrInvalidPrecision) ||
		errors.Is(err, ErrUnknownColumn) ||
		errors.Is(err, ErrInvalidBins) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInsufficientData)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUnknownColumn)
}
