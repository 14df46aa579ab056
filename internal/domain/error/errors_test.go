package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
	if ErrValidation.Error() != "validation failed" {
		t.Errorf("ErrValidation has unexpected message: %s", ErrValidation.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError([]string{"price is required"}), 4001},
		{"InputRange", NewInputRangeError("limit", "limit must be positive"), 4002},
		{"InvalidTransactionID", ErrInvalidTransactionID, 4003},
		{"TransactionNotFound", NewTransactionNotFoundError(7), 4040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", NewTransactionNotFoundError(3)), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError([]string{"product_id is required", "quantity must be a positive integer"})

	expectedErrMsg := "validation failed: product_id is required; quantity must be a positive integer"
	if err.Error() != expectedErrMsg {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsValidationError(err) {
		t.Errorf("IsValidationError(err) = false, want true")
	}

	wrapped := fmt.Errorf("create transaction: %w", err)
	violations := Violations(wrapped)
	if len(violations) != 2 {
		t.Fatalf("Violations(wrapped) returned %d entries, want 2", len(violations))
	}
	if violations[1] != "quantity must be a positive integer" {
		t.Errorf("Violations(wrapped)[1] = %s", violations[1])
	}

	if Violations(ErrTransactionNotFound) != nil {
		t.Errorf("Violations(ErrTransactionNotFound) should be nil")
	}
}

func TestInputRangeError(t *testing.T) {
	err := NewInputRangeError("records", "records must be positive")

	if err.Error() != "records must be positive" {
		t.Errorf("InputRangeError.Error() = %s", err.Error())
	}
	if !IsInputRangeError(err) {
		t.Errorf("IsInputRangeError(err) = false, want true")
	}
	if IsValidationError(err) {
		t.Errorf("IsValidationError(err) = true, want false")
	}

	var rangeErr *InputRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("errors.As failed: not an *InputRangeError")
	}
	if rangeErr.LogFields()["parameter"] != "records" {
		t.Errorf("LogFields parameter = %v, want records", rangeErr.LogFields()["parameter"])
	}
}

func TestTransactionNotFoundError(t *testing.T) {
	err := NewTransactionNotFoundError(42)

	if err.Error() != "transaction 42 not found" {
		t.Errorf("TransactionNotFoundError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("errors.Is(err, ErrTransactionNotFound) = false, want true")
	}
	if !IsNotFoundError(err) {
		t.Errorf("IsNotFoundError(err) = false, want true")
	}
	if IsNotFoundError(ErrInputRange) {
		t.Errorf("IsNotFoundError(ErrInputRange) = true, want false")
	}
}

func TestLogFields(t *testing.T) {
	wrapped := fmt.Errorf("delete transaction: %w", NewTransactionNotFoundError(12))

	fields := LogFields(wrapped)
	if fields["error_type"] != "transaction_not_found" {
		t.Errorf("LogFields(wrapped)[error_type] = %v", fields["error_type"])
	}
	if fields["transaction_id"] != int64(12) {
		t.Errorf("LogFields(wrapped)[transaction_id] = %v", fields["transaction_id"])
	}

	fields = LogFields(NewInputRangeError("limit", "limit must be positive"))
	if fields["parameter"] != "limit" || fields["error_code"] != CodeInputRange {
		t.Errorf("LogFields(InputRangeError) = %v", fields)
	}

	if LogFields(errors.New("plain")) != nil {
		t.Errorf("LogFields(plain) should be nil")
	}
}
