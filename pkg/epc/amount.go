package epc

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// EPC069-12 bounds the amount field to 0.01 ... 999999999.99 EUR.
var (
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	amountMax     = decimal.RequireFromString("999999999.99")
)

// Amount is a validated SEPA Credit Transfer amount in euro.
//
// The original text is preserved so serialization emits exactly what the
// caller validated ("25.00" stays "25.00", never "25"). Comparison and the
// bounds check run on exact decimal arithmetic - no float in the pipeline.
type Amount struct {
	raw   string
	cents int64
}

// ParseAmount validates a decimal amount string.
//
// Accepted pattern: digits with an optional decimal point followed by one or
// two digits. The empty string is rejected - a caller who wants the "payer
// decides" empty amount field omits the field entirely. Returns
// ErrInvalidAmount for both malformed text and out-of-bounds values.
func ParseAmount(raw string) (Amount, error) {
	if raw == "" {
		return Amount{}, newValidationError("amount", ErrInvalidAmount,
			"empty string (omit the field instead)")
	}
	if !amountPattern.MatchString(raw) {
		return Amount{}, newValidationError("amount", ErrInvalidAmount,
			"must be digits with at most two decimal places")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, newValidationError("amount", ErrInvalidAmount, err.Error())
	}
	if !value.IsPositive() {
		return Amount{}, newValidationError("amount", ErrInvalidAmount,
			"must be greater than zero")
	}
	if value.GreaterThan(amountMax) {
		return Amount{}, newValidationError("amount", ErrInvalidAmount,
			"exceeds the maximum of 999999999.99")
	}

	// Shift(2) is exact on a two-decimal value; IntPart cannot truncate here.
	return Amount{raw: raw, cents: value.Shift(2).IntPart()}, nil
}

// Cents returns the amount in minor units (euro cents).
func (a Amount) Cents() int64 {
	return a.cents
}

// IsZero reports whether the amount is the zero value (not parsed).
func (a Amount) IsZero() bool {
	return a.raw == ""
}

// String returns the amount exactly as it was validated.
func (a Amount) String() string {
	return a.raw
}
