// Package payload contains the use cases around EPC payload generation.
package payload

import (
	"context"

	"github.com/Haleralex/epcqr/internal/application/dtos"
	"github.com/Haleralex/epcqr/pkg/epc"
)

// GeneratePayloadUseCase maps a raw command onto the epc builder and the
// validated result onto a DTO.
//
// Flow:
//  1. Stage every provided field on the builder (no validation yet)
//  2. Build - all rules run at once, first violation wins
//  3. Serialize and echo the normalized fields back
//
// Pure computation: no repositories, no events, nothing to roll back. The
// context parameter keeps the Execute signature uniform across use cases.
type GeneratePayloadUseCase struct{}

// NewGeneratePayloadUseCase creates the use case.
func NewGeneratePayloadUseCase() *GeneratePayloadUseCase {
	return &GeneratePayloadUseCase{}
}

// Execute generates a validated EPC payload.
// Returns the epc package's *ValidationError unchanged so the HTTP layer can
// map the error kind and field onto its API codes.
func (uc *GeneratePayloadUseCase) Execute(_ context.Context, cmd dtos.GeneratePayloadCommand) (*dtos.PayloadDTO, error) {
	b := epc.NewBuilder().
		BeneficiaryName(cmd.BeneficiaryName).
		IBAN(cmd.IBAN)

	if cmd.Version == "001" {
		b.Version(epc.Version001)
	}
	if cmd.Instant {
		b.Identification(epc.INST)
	}
	if cmd.BIC != "" {
		b.BIC(cmd.BIC)
	}
	if cmd.Amount != "" {
		b.Amount(cmd.Amount)
	}
	if cmd.Purpose != "" {
		b.Purpose(cmd.Purpose)
	}
	// Both remittance fields set is not resolved here: the builder reports
	// the mutual exclusivity violation with the proper error kind.
	if cmd.Remittance != "" {
		b.UnstructuredRemittance(cmd.Remittance)
	}
	if cmd.Reference != "" {
		b.StructuredRemittance(cmd.Reference)
	}
	if cmd.Information != "" {
		b.Information(cmd.Information)
	}

	p, err := b.Build()
	if err != nil {
		return nil, err
	}

	return toPayloadDTO(p), nil
}

func toPayloadDTO(p epc.Payload) *dtos.PayloadDTO {
	dto := &dtos.PayloadDTO{
		Payload:         p.String(),
		Lines:           p.Lines(),
		Version:         p.Version().String(),
		BeneficiaryName: p.BeneficiaryName(),
		IBAN:            p.IBAN().String(),
		BIC:             p.BIC(),
		Amount:          p.Amount().String(),
		Purpose:         p.Purpose().String(),
		Information:     p.Information(),
	}
	if p.Remittance().IsStructured() {
		dto.Reference = p.Remittance().Reference().String()
	} else {
		dto.Remittance = p.Remittance().Text()
	}
	return dto
}
