package epc

// Builder stages raw payload fields for deferred validation.
//
// Setters only record input - they never validate - so fields can arrive in
// any order (form bindings, flag parsing) and the caller gets one combined
// verdict from Build. A Builder is a staging area, deliberately a different
// type from Payload: a half-filled Builder can never be mistaken for a valid
// payload.
//
// Pattern: Builder with terminal validation (factory does all the checking).
type Builder struct {
	version        Version
	characterSet   CharacterSet
	identification Identification
	bic            string
	bicSet         bool
	beneficiary    string
	ibanRaw        string
	amountRaw      string
	amountSet      bool
	purposeRaw     string
	remittanceText string
	remittanceSet  bool
	referenceRaw   string
	referenceSet   bool
	information    string
}

// NewBuilder returns a Builder with the guideline defaults: version 002
// (BIC optional), UTF-8, SEPA Credit Transfer. The minimal valid payload
// needs only BeneficiaryName and IBAN on top of these.
func NewBuilder() *Builder {
	return &Builder{
		version:        Version002,
		characterSet:   CharacterSetUTF8,
		identification: SCT,
	}
}

// Version overrides the payload format version. Version001 makes BIC
// mandatory at Build.
func (b *Builder) Version(v Version) *Builder {
	b.version = v
	return b
}

// CharacterSet overrides the declared text encoding.
func (b *Builder) CharacterSet(cs CharacterSet) *Builder {
	b.characterSet = cs
	return b
}

// Identification selects SCT or INST.
func (b *Builder) Identification(id Identification) *Builder {
	b.identification = id
	return b
}

// BIC sets the beneficiary PSP's BIC.
func (b *Builder) BIC(bic string) *Builder {
	b.bic = bic
	b.bicSet = true
	return b
}

// BeneficiaryName sets the creditor name (required).
func (b *Builder) BeneficiaryName(name string) *Builder {
	b.beneficiary = name
	return b
}

// IBAN sets the creditor account (required). Validated at Build via
// ParseIBAN, so grouped input with spaces is fine here.
func (b *Builder) IBAN(raw string) *Builder {
	b.ibanRaw = raw
	return b
}

// Amount sets the transfer amount as a decimal string ("25.00").
// Omit the call entirely for a "payer decides" payload.
func (b *Builder) Amount(raw string) *Builder {
	b.amountRaw = raw
	b.amountSet = true
	return b
}

// Purpose sets the four-character purpose code.
func (b *Builder) Purpose(code string) *Builder {
	b.purposeRaw = code
	return b
}

// UnstructuredRemittance sets the free-text remittance line.
// Mutually exclusive with StructuredRemittance.
func (b *Builder) UnstructuredRemittance(text string) *Builder {
	b.remittanceText = text
	b.remittanceSet = true
	return b
}

// StructuredRemittance sets the structured reference line from a raw ISO
// 11649 reference. Mutually exclusive with UnstructuredRemittance.
func (b *Builder) StructuredRemittance(raw string) *Builder {
	b.referenceRaw = raw
	b.referenceSet = true
	return b
}

// Information sets the originator-to-beneficiary text line.
func (b *Builder) Information(text string) *Builder {
	b.information = text
	return b
}

// Build validates every staged field and assembles the immutable Payload.
//
// Fails fast on the first violation; nothing partial ever escapes. The error
// is always a *ValidationError wrapping one of the sentinel kinds, so
// callers can branch on errors.Is and point at the failing field.
func (b *Builder) Build() (Payload, error) {
	if b.beneficiary == "" {
		return Payload{}, newValidationError("beneficiary_name", ErrMissingRequiredField, "")
	}
	if len(b.beneficiary) > MaxBeneficiaryNameLength {
		return Payload{}, newValidationError("beneficiary_name", ErrTextTooLong,
			"beneficiary name exceeds 70 characters")
	}

	if b.ibanRaw == "" {
		return Payload{}, newValidationError("iban", ErrMissingRequiredField, "")
	}
	iban, err := ParseIBAN(b.ibanRaw)
	if err != nil {
		return Payload{}, err
	}

	if b.version == Version001 && !b.bicSet {
		return Payload{}, newValidationError("bic", ErrMissingRequiredField,
			"BIC is mandatory for version 001")
	}
	if b.bicSet {
		if err := validateBIC(b.bic); err != nil {
			return Payload{}, err
		}
	}

	var amount Amount
	if b.amountSet {
		amount, err = ParseAmount(b.amountRaw)
		if err != nil {
			return Payload{}, err
		}
	}

	var purpose PurposeCode
	if b.purposeRaw != "" {
		purpose = PurposeFromCode(b.purposeRaw)
		if err := purpose.validate(); err != nil {
			return Payload{}, err
		}
	}

	if b.remittanceSet && b.referenceSet {
		return Payload{}, newValidationError("remittance", ErrInvalidFormat,
			"structured and unstructured remittance are mutually exclusive")
	}
	var remittance Remittance
	switch {
	case b.remittanceSet:
		remittance, err = UnstructuredRemittance(b.remittanceText)
		if err != nil {
			return Payload{}, err
		}
	case b.referenceSet:
		reference, err := ParseCreditorReference(b.referenceRaw)
		if err != nil {
			return Payload{}, err
		}
		remittance = StructuredRemittance(reference)
	}

	if len(b.information) > MaxInformationLength {
		return Payload{}, newValidationError("information", ErrTextTooLong,
			"originator-to-beneficiary information exceeds 70 characters")
	}

	return Payload{
		serviceTag:     BCD,
		version:        b.version,
		characterSet:   b.characterSet,
		identification: b.identification,
		bic:            b.bic,
		beneficiary:    b.beneficiary,
		iban:           iban,
		amount:         amount,
		purpose:        purpose,
		remittance:     remittance,
		information:    b.information,
	}, nil
}

// validateBIC checks ISO 9362 structure: 8 or 11 characters, alphanumeric,
// with a letters-only institution and country part.
func validateBIC(bic string) error {
	if len(bic) != 8 && len(bic) != 11 {
		return newValidationError("bic", ErrInvalidFormat,
			"must be 8 or 11 characters")
	}
	if !isUpperAlpha(bic[:6]) || !isUpperAlphanumeric(bic[6:]) {
		return newValidationError("bic", ErrInvalidFormat,
			"must be uppercase letters and digits (ISO 9362)")
	}
	return nil
}
