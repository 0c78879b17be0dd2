package epc

// mod97 computes the ISO 7064 mod-97-10 remainder of a rearranged account or
// reference string. Letters map to their numeric values (A=10 ... Z=35).
//
// The numeric form of a 34-character IBAN can be 60+ decimal digits, so the
// remainder is carried digit by digit instead of going through a big integer.
// Only [0-9A-Z] input reaches this point; callers validate the character set
// first.
func mod97(s string) int {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			rem = (rem*10 + int(c-'0')) % 97
		} else {
			// Two-digit letter value: shift by 100, not 10.
			rem = (rem*100 + int(c-'A') + 10) % 97
		}
	}
	return rem
}

// rearrange moves the leading four characters (country/prefix + check digits)
// behind the body, per ISO 13616 and ISO 11649.
func rearrange(s string) string {
	return s[4:] + s[:4]
}
