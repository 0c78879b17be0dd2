package epc

import "strings"

// IBAN length bounds per ISO 13616. Country-specific lengths inside that
// range are not tracked; the checksum catches truncated or padded bodies.
const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

// IBAN is a checksum-validated International Bank Account Number.
//
// Value object: immutable, self-validating, constructed only through
// ParseIBAN. Stored normalized - uppercase, no spaces - so String output is
// always the canonical machine form.
type IBAN struct {
	value string
}

// ParseIBAN validates raw input and returns the normalized IBAN.
//
// Whitespace is stripped and lowercase letters are folded before validation,
// since IBANs are commonly entered grouped in blocks of four. Returns
// ErrInvalidFormat for structural violations and ErrInvalidChecksum when the
// rearranged numeric form is not congruent to 1 modulo 97.
func ParseIBAN(raw string) (IBAN, error) {
	normalized := strings.ToUpper(stripSpaces(raw))

	if len(normalized) < ibanMinLength || len(normalized) > ibanMaxLength {
		return IBAN{}, newValidationError("iban", ErrInvalidFormat,
			"length must be between 15 and 34 characters")
	}
	if !isUpperAlpha(normalized[:2]) {
		return IBAN{}, newValidationError("iban", ErrInvalidFormat,
			"must start with a two-letter country code")
	}
	if !isDigits(normalized[2:4]) {
		return IBAN{}, newValidationError("iban", ErrInvalidFormat,
			"check digits must be numeric")
	}
	if !isUpperAlphanumeric(normalized) {
		return IBAN{}, newValidationError("iban", ErrInvalidFormat,
			"only letters and digits are allowed")
	}
	if mod97(rearrange(normalized)) != 1 {
		return IBAN{}, newValidationError("iban", ErrInvalidChecksum, "")
	}

	return IBAN{value: normalized}, nil
}

// CountryCode returns the ISO 3166-1 alpha-2 country prefix.
func (i IBAN) CountryCode() string {
	return i.value[:2]
}

// CheckDigits returns the two mod-97 check digits.
func (i IBAN) CheckDigits() string {
	return i.value[2:4]
}

// BBAN returns the country-specific basic bank account number body.
func (i IBAN) BBAN() string {
	return i.value[4:]
}

// IsZero reports whether the IBAN is the zero value (not parsed).
func (i IBAN) IsZero() bool {
	return i.value == ""
}

// String returns the canonical form: uppercase, no spaces.
func (i IBAN) String() string {
	return i.value
}

// stripSpaces removes all whitespace commonly found in human-entered account
// identifiers (spaces, tabs).
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isUpperAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
