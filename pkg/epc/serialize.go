package epc

import "strings"

// payloadLineCount is fixed by EPC069-12: twelve lines, positions
// significant, absent optionals rendered as empty lines.
const payloadLineCount = 12

// String renders the payload in the exact line order EPC069-12 mandates:
//
//	1. service tag            "BCD"
//	2. version                "001" / "002"
//	3. character set          "1".."8"
//	4. identification         "SCT" / "INST"
//	5. BIC                    (may be empty)
//	6. beneficiary name
//	7. IBAN
//	8. amount                 "EUR" + value (may be empty: payer decides)
//	9. purpose code           (may be empty)
//	10. structured reference  (may be empty)
//	11. unstructured text     (may be empty)
//	12. information           (may be empty)
//
// Lines are joined with "\n" and there is no trailing newline. The result is
// the complete hand-off artifact for a QR encoder.
func (p Payload) String() string {
	return strings.Join(p.Lines(), "\n")
}

// Lines returns the twelve payload lines in order. Useful for callers that
// inspect or log individual fields without re-splitting the payload.
func (p Payload) Lines() []string {
	lines := make([]string, 0, payloadLineCount)

	lines = append(lines,
		p.serviceTag.String(),
		p.version.String(),
		p.characterSet.String(),
		p.identification.String(),
		p.bic,
		p.beneficiary,
		p.iban.String(),
	)

	if p.amount.IsZero() {
		lines = append(lines, "")
	} else {
		lines = append(lines, "EUR"+p.amount.String())
	}

	lines = append(lines, p.purpose.String())

	switch {
	case p.remittance.IsStructured():
		lines = append(lines, p.remittance.Reference().String(), "")
	default:
		lines = append(lines, "", p.remittance.Text())
	}

	return append(lines, p.information)
}
