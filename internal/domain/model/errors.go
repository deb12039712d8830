package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error classes surfaced to callers. Concrete errors match one of these via errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// SettlementConflictError reports a settlement larger than the outstanding balance.
type SettlementConflictError struct {
	Outstanding decimal.Decimal
	Requested   decimal.Decimal
}

func (e *SettlementConflictError) Error() string {
	return fmt.Sprintf("settlement amount %s exceeds outstanding balance %s",
		e.Requested.StringFixed(2), e.Outstanding.StringFixed(2))
}

// Is makes SettlementConflictError match ErrConflict.
func (e *SettlementConflictError) Is(target error) bool { return target == ErrConflict }
