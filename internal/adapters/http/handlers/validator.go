// Package handlers contains the REST handlers. Each handler binds the
// request, hands it to a use case and maps the result onto the response
// envelope - no business logic lives here.
package handlers

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Haleralex/epcqr/pkg/epc"
)

var setupOnce sync.Once

// SetupValidator registers the payload-specific binding validators with
// gin's validator engine. Binding validation is a cheap first gate; the epc
// builder remains the authority and re-checks everything.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Report field names from the json tag, matching the envelope's
		// FieldError.Field values.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("iban", validateIBAN)
		_ = v.RegisterValidation("rf_reference", validateRFReference)
		_ = v.RegisterValidation("money_amount", validateMoneyAmount)
		_ = v.RegisterValidation("purpose_code", validatePurposeCode)
	})
}

// validateIBAN delegates to the domain parse - checksum included.
func validateIBAN(fl validator.FieldLevel) bool {
	_, err := epc.ParseIBAN(fl.Field().String())
	return err == nil
}

// validateRFReference delegates to the domain parse.
func validateRFReference(fl validator.FieldLevel) bool {
	_, err := epc.ParseCreditorReference(fl.Field().String())
	return err == nil
}

// validateMoneyAmount accepts a positive decimal string within the EPC
// bound.
func validateMoneyAmount(fl validator.FieldLevel) bool {
	_, err := epc.ParseAmount(fl.Field().String())
	return err == nil
}

// validatePurposeCode accepts known codes and well-formed raw codes.
func validatePurposeCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	if len(code) != 4 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
