package epc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// White-box check of the chunked remainder against known-good account
// numbers: a valid rearranged IBAN or RF reference leaves remainder 1.
func TestMod97_RearrangedForms(t *testing.T) {
	valid := []string{
		"DE90830654080004104242",
		"DE02120300000000202051",
		"GB82WEST12345698765432",
		"RF18539007547034",
		"RF45G72UUR",
	}
	for _, s := range valid {
		assert.Equal(t, 1, mod97(rearrange(s)), s)
	}

	invalid := []string{
		"DE90830654080004104243",
		"RF55G72UUR",
	}
	for _, s := range invalid {
		assert.NotEqual(t, 1, mod97(rearrange(s)), s)
	}
}

func TestMod97_DigitAndLetterMapping(t *testing.T) {
	// "A" maps to 10, so "A0" is 100 and 100 mod 97 = 3.
	assert.Equal(t, 3, mod97("A0"))
	// Pure digits behave like integer parsing.
	assert.Equal(t, 96, mod97("193"))
	assert.Equal(t, 0, mod97("97"))
}

func TestRearrange(t *testing.T) {
	assert.Equal(t, "WEST12345698765432GB82", rearrange("GB82WEST12345698765432"))
	assert.Equal(t, "G72UURRF45", rearrange("RF45G72UUR"))
}
