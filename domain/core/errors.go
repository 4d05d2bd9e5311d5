package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Data errors
	ErrMissingColumn    = errors.New("required column missing")
	ErrSchemaValidation = errors.New("schema validation failed")
	ErrEmptyDataset     = errors.New("dataset has no header row")

	// Configuration errors
	ErrConfigInvalid = errors.New("invalid configuration")

	// Plan errors
	ErrUnknownPlanStep = errors.New("unknown plan step")
)

// NewMissingColumnError reports one or more required columns absent from a table.
func NewMissingColumnError(columns ...string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(columns, ", "))
}

// NewConfigError reports an invalid configuration field.
func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfigInvalid, field, reason)
}

// Error checking helpers
func IsMissingColumnError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsSchemaValidationError(err error) bool {
	return errors.Is(err, ErrSchemaValidation)
}
