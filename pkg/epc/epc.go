package epc

import "fmt"

// EPC069-12 field limits for the free-text payload lines.
const (
	// MaxBeneficiaryNameLength bounds the creditor name line.
	MaxBeneficiaryNameLength = 70
	// MaxInformationLength bounds the originator-to-beneficiary line.
	MaxInformationLength = 70
)

// ServiceTag identifies the payload format. BCD is the only tag the
// guideline defines.
type ServiceTag int

// BCD is the EPC069-12 service tag.
const BCD ServiceTag = iota

// String returns the payload rendering of the tag.
func (t ServiceTag) String() string {
	return "BCD"
}

// Version of the EPC069-12 payload format.
type Version int

const (
	// Version001 - BIC is mandatory (EEA plus non-EEA payments).
	Version001 Version = iota + 1
	// Version002 - BIC is optional (EEA only). Default.
	Version002
)

// String returns the payload rendering of the version.
func (v Version) String() string {
	if v == Version001 {
		return "001"
	}
	return "002"
}

// CharacterSet declares the encoding of the payload text, as a one-digit
// identifier on the third line.
type CharacterSet int

// Character set identifiers per EPC069-12.
const (
	CharacterSetUTF8 CharacterSet = iota + 1
	CharacterSetISO8859_1
	CharacterSetISO8859_2
	CharacterSetISO8859_4
	CharacterSetISO8859_5
	CharacterSetISO8859_7
	CharacterSetISO8859_10
	CharacterSetISO8859_15
)

// String returns the payload rendering of the character set identifier.
func (cs CharacterSet) String() string {
	return fmt.Sprintf("%d", int(cs))
}

// Identification selects the SEPA scheme the payload initiates.
type Identification int

const (
	// SCT - SEPA Credit Transfer. Default.
	SCT Identification = iota
	// INST - SEPA Instant Credit Transfer.
	INST
)

// String returns the payload rendering of the identification code.
func (id Identification) String() string {
	if id == INST {
		return "INST"
	}
	return "SCT"
}

// Payload is a fully validated EPC QR payload.
//
// Aggregate root over the validated value types: constructed only by
// Builder.Build, immutable afterwards, and side-effect free to serialize any
// number of times. Optional fields answer IsZero on their accessor types.
type Payload struct {
	serviceTag     ServiceTag
	version        Version
	characterSet   CharacterSet
	identification Identification
	bic            string
	beneficiary    string
	iban           IBAN
	amount         Amount
	purpose        PurposeCode
	remittance     Remittance
	information    string
}

// Version returns the payload format version.
func (p Payload) Version() Version { return p.version }

// CharacterSet returns the declared text encoding.
func (p Payload) CharacterSet() CharacterSet { return p.characterSet }

// Identification returns the SEPA scheme code.
func (p Payload) Identification() Identification { return p.identification }

// BIC returns the beneficiary PSP's BIC, or "" when omitted.
func (p Payload) BIC() string { return p.bic }

// BeneficiaryName returns the creditor name line.
func (p Payload) BeneficiaryName() string { return p.beneficiary }

// IBAN returns the creditor account.
func (p Payload) IBAN() IBAN { return p.iban }

// Amount returns the transfer amount; zero value means "payer decides".
func (p Payload) Amount() Amount { return p.amount }

// Purpose returns the purpose code; zero value when omitted.
func (p Payload) Purpose() PurposeCode { return p.purpose }

// Remittance returns the remittance choice; zero value when omitted.
func (p Payload) Remittance() Remittance { return p.remittance }

// Information returns the originator-to-beneficiary line, or "".
func (p Payload) Information() string { return p.information }
