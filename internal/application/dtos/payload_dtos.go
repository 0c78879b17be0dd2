// Package dtos carries the data transfer types between the HTTP adapter and
// the payload use cases. Commands hold raw caller input; DTOs hold the
// validated, normalized result.
package dtos

// GeneratePayloadCommand is the raw input for EPC payload generation.
// Every field is a plain string: validation belongs to the epc builder, not
// to the transport layer.
type GeneratePayloadCommand struct {
	BeneficiaryName string `json:"beneficiary_name" validate:"required"`
	IBAN            string `json:"iban" validate:"required"`
	BIC             string `json:"bic,omitempty"`
	Amount          string `json:"amount,omitempty"` // Decimal string: "25.00"
	Purpose         string `json:"purpose,omitempty"`
	Remittance      string `json:"remittance,omitempty"` // Unstructured free text
	Reference       string `json:"reference,omitempty"`  // ISO 11649 RF reference
	Information     string `json:"information,omitempty"`
	Version         string `json:"version,omitempty" validate:"omitempty,oneof=001 002"`
	Instant         bool   `json:"instant,omitempty"` // SEPA Instant Credit Transfer
}

// PayloadDTO is the generated payload plus the normalized fields, so API
// clients can show the user exactly what the scanner will see.
type PayloadDTO struct {
	Payload         string   `json:"payload"`
	Lines           []string `json:"lines"`
	Version         string   `json:"version"`
	BeneficiaryName string   `json:"beneficiary_name"`
	IBAN            string   `json:"iban"`
	BIC             string   `json:"bic,omitempty"`
	Amount          string   `json:"amount,omitempty"`
	Purpose         string   `json:"purpose,omitempty"`
	Reference       string   `json:"reference,omitempty"`
	Remittance      string   `json:"remittance,omitempty"`
	Information     string   `json:"information,omitempty"`
}
