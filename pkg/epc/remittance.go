package epc

// MaxUnstructuredRemittanceLength bounds the free-text remittance line.
// The structured line needs no bound of its own: ISO 11649 references are at
// most 25 characters, inside the 35 the field allows.
const MaxUnstructuredRemittanceLength = 140

type remittanceKind int

const (
	remittanceNone remittanceKind = iota
	remittanceUnstructured
	remittanceStructured
)

// Remittance is the mutually exclusive choice between free-text remittance
// information and a structured creditor reference. Exactly one branch is
// populated; the payload serializes it on the matching line and leaves the
// other line empty.
//
// There is no coercion between the branches - the caller picks one through
// the constructors below.
type Remittance struct {
	kind      remittanceKind
	text      string
	reference CreditorReference
}

// UnstructuredRemittance creates a free-text remittance.
// Fails with ErrTextTooLong beyond 140 characters; 140 exactly is valid.
func UnstructuredRemittance(text string) (Remittance, error) {
	if len(text) > MaxUnstructuredRemittanceLength {
		return Remittance{}, newValidationError("remittance", ErrTextTooLong,
			"unstructured remittance exceeds 140 characters")
	}
	return Remittance{kind: remittanceUnstructured, text: text}, nil
}

// StructuredRemittance creates a structured remittance from an already
// validated creditor reference. Cannot fail: the reference's own parse
// guarantees every constraint the line has.
func StructuredRemittance(reference CreditorReference) Remittance {
	return Remittance{kind: remittanceStructured, reference: reference}
}

// IsZero reports whether no remittance was set.
func (r Remittance) IsZero() bool {
	return r.kind == remittanceNone
}

// IsStructured reports whether the structured branch is populated.
func (r Remittance) IsStructured() bool {
	return r.kind == remittanceStructured
}

// Text returns the free text of an unstructured remittance, or "".
func (r Remittance) Text() string {
	return r.text
}

// Reference returns the creditor reference of a structured remittance.
// Zero value when the remittance is unstructured.
func (r Remittance) Reference() CreditorReference {
	return r.reference
}
