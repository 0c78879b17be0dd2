package epc

import "strings"

// ISO 11649 bounds: "RF" + 2 check digits + 1..21 reference characters.
const (
	creditorReferenceMinLength = 5
	creditorReferenceMaxLength = 25
)

// CreditorReference is a checksum-validated ISO 11649 structured creditor
// reference ("RF" reference), used as the structured remittance line of an
// EPC payload.
//
// Same construction rules as IBAN: immutable, only obtainable through
// ParseCreditorReference, stored without spaces.
type CreditorReference struct {
	value string
}

// ParseCreditorReference validates raw input and returns the normalized
// reference.
//
// Interior spaces are explicitly supported ("RF18 5390 0754 7034" is a common
// human-entry convention) and stripped before validation. The checksum is the
// same mod-97 scheme as IBAN: moving "RF" + check digits behind the body must
// leave a remainder of 1.
func ParseCreditorReference(raw string) (CreditorReference, error) {
	normalized := strings.ToUpper(stripSpaces(raw))

	if len(normalized) < creditorReferenceMinLength || len(normalized) > creditorReferenceMaxLength {
		return CreditorReference{}, newValidationError("creditor_reference", ErrInvalidFormat,
			"length must be between 5 and 25 characters")
	}
	if !strings.HasPrefix(normalized, "RF") {
		return CreditorReference{}, newValidationError("creditor_reference", ErrInvalidFormat,
			"must start with RF")
	}
	if !isDigits(normalized[2:4]) {
		return CreditorReference{}, newValidationError("creditor_reference", ErrInvalidFormat,
			"check digits must be numeric")
	}
	if !isUpperAlphanumeric(normalized[4:]) {
		return CreditorReference{}, newValidationError("creditor_reference", ErrInvalidFormat,
			"reference body must be alphanumeric")
	}
	if mod97(rearrange(normalized)) != 1 {
		return CreditorReference{}, newValidationError("creditor_reference", ErrInvalidChecksum, "")
	}

	return CreditorReference{value: normalized}, nil
}

// CheckDigits returns the two check digits following the RF prefix.
func (r CreditorReference) CheckDigits() string {
	return r.value[2:4]
}

// Body returns the creditor-assigned reference part after RF and the check
// digits.
func (r CreditorReference) Body() string {
	return r.value[4:]
}

// IsZero reports whether the reference is the zero value (not parsed).
func (r CreditorReference) IsZero() bool {
	return r.value == ""
}

// String returns the canonical form: uppercase, no spaces.
func (r CreditorReference) String() string {
	return r.value
}
