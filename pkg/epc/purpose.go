package epc

import "strings"

// PurposeCode classifies the reason for the transfer (ISO 20022 external
// purpose code, four characters).
//
// Closed-but-extensible enumeration: codes in the known table are the named
// variants; anything else rides along as a raw code so new official codes
// work without a library update. Raw codes are format-checked at Build time.
type PurposeCode struct {
	code string
}

// Commonly used SEPA purpose codes.
var (
	PurposeAccountManagement = PurposeCode{code: "ACCT"}
	PurposeBeneficiary       = PurposeCode{code: "BENE"}
	PurposeBonus             = PurposeCode{code: "BONU"}
	PurposeCapitalBuilding   = PurposeCode{code: "CBFF"}
	PurposeCharity           = PurposeCode{code: "CHAR"}
	PurposeCommercialCredit  = PurposeCode{code: "COMC"}
	PurposeDebtRepayment     = PurposeCode{code: "DEPT"}
	PurposeDividend          = PurposeCode{code: "DIVI"}
	PurposeGoods             = PurposeCode{code: "GDDS"}
	PurposeGovernment        = PurposeCode{code: "GOVT"}
	PurposeInsurance         = PurposeCode{code: "INSU"}
	PurposeIntraCompany      = PurposeCode{code: "INTC"}
	PurposeLoan              = PurposeCode{code: "LOAN"}
	PurposeOther             = PurposeCode{code: "OTHR"}
	PurposePension           = PurposeCode{code: "PENS"}
	PurposeRent              = PurposeCode{code: "RENT"}
	PurposeSalary            = PurposeCode{code: "SALA"}
	PurposeSavings           = PurposeCode{code: "SAVG"}
	PurposeServices          = PurposeCode{code: "SCVE"}
	PurposeSupplier          = PurposeCode{code: "SUPP"}
	PurposeTax               = PurposeCode{code: "TAXS"}
	PurposeTrade             = PurposeCode{code: "TRAD"}
)

// knownPurposeCodes is the whitelist backing IsKnown. Adding a code here is
// all it takes to promote a raw code to a named one.
var knownPurposeCodes = map[string]bool{
	"ACCT": true, "BENE": true, "BONU": true, "CBFF": true,
	"CHAR": true, "COMC": true, "DEPT": true, "DIVI": true,
	"GDDS": true, "GOVT": true, "INSU": true, "INTC": true,
	"LOAN": true, "OTHR": true, "PENS": true, "RENT": true,
	"SALA": true, "SAVG": true, "SCVE": true, "SUPP": true,
	"TAXS": true, "TRAD": true,
}

// PurposeFromCode wraps a caller-supplied code.
//
// Never fails: unknown codes are carried as-is (uppercased) and validated
// against the four-character rule when the payload is built, so callers can
// use official codes this package has not catalogued yet.
func PurposeFromCode(code string) PurposeCode {
	return PurposeCode{code: strings.ToUpper(strings.TrimSpace(code))}
}

// IsKnown reports whether the code is in the catalogued table.
func (p PurposeCode) IsKnown() bool {
	return knownPurposeCodes[p.code]
}

// IsZero reports whether no purpose was set.
func (p PurposeCode) IsZero() bool {
	return p.code == ""
}

// String returns the four-character code.
func (p PurposeCode) String() string {
	return p.code
}

// validate enforces the code-set rule for raw (uncatalogued) codes.
// Known codes are canonical by construction.
func (p PurposeCode) validate() error {
	if p.IsKnown() {
		return nil
	}
	if len(p.code) != 4 || !isUpperAlphanumeric(p.code) {
		return newValidationError("purpose", ErrInvalidPurposeCode,
			"must be four characters A-Z0-9")
	}
	return nil
}
