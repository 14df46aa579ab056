package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation           = 4001
	CodeInputRange           = 4002
	CodeInvalidTransactionID = 4003
	CodeTransactionNotFound  = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when one or more payload fields violate their rules
	ErrValidation = errors.New("validation failed")

	// ErrInputRange is returned when an analytics parameter is outside its allowed range
	ErrInputRange = errors.New("parameter out of range")

	// ErrInvalidTransactionID is returned when a path id is not a positive integer
	ErrInvalidTransactionID = errors.New("transaction ID must be a positive integer")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInputRange):
		return CodeInputRange
	case errors.Is(err, ErrInvalidTransactionID):
		return CodeInvalidTransactionID
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	default:
		return CodeInternalServer
	}
}

// ValidationError carries every rule a payload violated, in field order
type ValidationError struct {
	Violations []string
}

// NewValidationError creates a validation error from the collected violations
func NewValidationError(violations []string) error {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Violations, "; "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"violations": e.Violations,
		"error_code": CodeValidation,
	}
}

// InputRangeError reports an analytics parameter outside its allowed range
type InputRangeError struct {
	Parameter string
	Message   string
}

// NewInputRangeError creates a new input range error for the named parameter
func NewInputRangeError(parameter, message string) error {
	return &InputRangeError{Parameter: parameter, Message: message}
}

// Error implements the error interface
func (e *InputRangeError) Error() string {
	return e.Message
}

// Is checks if the target error is an ErrInputRange
func (e *InputRangeError) Is(target error) bool {
	return target == ErrInputRange
}

// LogFields returns a map of fields for structured logging
func (e *InputRangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "input_range",
		"parameter":  e.Parameter,
		"message":    e.Message,
		"error_code": CodeInputRange,
	}
}

// TransactionNotFoundError identifies the missing record
type TransactionNotFoundError struct {
	ID int64
}

// NewTransactionNotFoundError creates a not-found error for the given id
func NewTransactionNotFoundError(id int64) error {
	return &TransactionNotFoundError{ID: id}
}

// Error implements the error interface
func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

// Is matches both ErrTransactionNotFound and the generic ErrNotFound
func (e *TransactionNotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound || target == ErrNotFound
}

// LogFields returns a map of fields for structured logging
func (e *TransactionNotFoundError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "transaction_not_found",
		"transaction_id": e.ID,
		"error_code":     CodeTransactionNotFound,
	}
}

// loggable is implemented by errors that carry their own structured log fields
type loggable interface {
	LogFields() map[string]any
}

// LogFields returns the structured fields of the first error in err's chain
// that provides them, or nil
func LogFields(err error) map[string]any {
	var l loggable
	if errors.As(err, &l) {
		return l.LogFields()
	}
	return nil
}

// Violations extracts the violation list from err, or nil if err is not a validation error
func Violations(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Violations
	}
	return nil
}

// IsValidationError checks if the error is a payload validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInputRangeError checks if the error is an analytics parameter range error
func IsInputRangeError(err error) bool {
	return errors.Is(err, ErrInputRange)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
