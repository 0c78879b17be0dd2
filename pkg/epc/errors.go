// Package epc builds and validates the payload string embedded in an EPC QR
// code (EPC069-12, "Quick Response Code: Guidelines to Enable Data Capture for
// the Initiation of a SEPA Credit Transfer").
//
// The package is a pure validation and serialization core: callers feed raw
// strings into a Builder, Build runs every rule at once, and the resulting
// Payload renders the newline-delimited text a QR encoder turns into an image.
// All exported value types are immutable after construction and safe to share.
package epc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation pipeline.
// Each kind maps to one actionable user-facing message, so callers can
// surface them directly (form validation UIs, API error codes).
var (
	// ErrInvalidFormat - structural violation: wrong length, disallowed
	// characters, missing required prefix or segment.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidChecksum - structurally well-formed input that fails the
	// mod-97 check (IBAN or ISO 11649 creditor reference).
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrInvalidAmount - malformed amount text or value outside the
	// EPC-permitted bound.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPurposeCode - purpose code outside the known table that also
	// fails the four-character code rule.
	ErrInvalidPurposeCode = errors.New("invalid purpose code")

	// ErrTextTooLong - a free-text field exceeds its EPC069-12 maximum.
	ErrTextTooLong = errors.New("text too long")

	// ErrMissingRequiredField - Build called without a mandatory field.
	ErrMissingRequiredField = errors.New("missing required field")
)

// ValidationError wraps a sentinel error with the payload field it belongs
// to. Build returns these so API layers can point at the offending field
// while errors.Is still matches the underlying kind.
type ValidationError struct {
	Field   string // Payload field that failed (e.g. "iban", "beneficiary_name")
	Message string // Human-readable detail
	Err     error  // Underlying sentinel (ErrInvalidFormat, ...)
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Err, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap exposes the sentinel for errors.Is / errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field string, err error, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
