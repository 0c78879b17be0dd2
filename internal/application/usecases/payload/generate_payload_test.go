package payload_test

import (
	"context"
	"testing"

	"github.com/Haleralex/epcqr/internal/application/dtos"
	"github.com/Haleralex/epcqr/internal/application/usecases/payload"
	"github.com/Haleralex/epcqr/pkg/epc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayload_Success(t *testing.T) {
	uc := payload.NewGeneratePayloadUseCase()

	dto, err := uc.Execute(context.Background(), dtos.GeneratePayloadCommand{
		BeneficiaryName: "Alice",
		IBAN:            "DE02 1203 0000 0000 2020 51",
		Amount:          "25.00",
		Purpose:         "GDDS",
	})
	require.NoError(t, err)

	assert.Equal(t, "DE02120300000000202051", dto.IBAN)
	assert.Equal(t, "002", dto.Version)
	assert.Equal(t, "25.00", dto.Amount)
	assert.Contains(t, dto.Lines, "EUR25.00")
	assert.Contains(t, dto.Lines, "GDDS")
	assert.Len(t, dto.Lines, 12)
}

func TestGeneratePayload_StructuredReference(t *testing.T) {
	uc := payload.NewGeneratePayloadUseCase()

	dto, err := uc.Execute(context.Background(), dtos.GeneratePayloadCommand{
		BeneficiaryName: "Codeberg e.V.",
		IBAN:            "DE90 8306 5408 0004 1042 42",
		Reference:       "RF18 5390 0754 7034",
	})
	require.NoError(t, err)

	assert.Equal(t, "RF18539007547034", dto.Reference)
	assert.Empty(t, dto.Remittance)
}

func TestGeneratePayload_Version001RequiresBIC(t *testing.T) {
	uc := payload.NewGeneratePayloadUseCase()

	_, err := uc.Execute(context.Background(), dtos.GeneratePayloadCommand{
		BeneficiaryName: "Alice",
		IBAN:            "DE02120300000000202051",
		Version:         "001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, epc.ErrMissingRequiredField)
}

func TestGeneratePayload_DomainErrorsPassThrough(t *testing.T) {
	uc := payload.NewGeneratePayloadUseCase()

	tests := []struct {
		name string
		cmd  dtos.GeneratePayloadCommand
		kind error
	}{
		{
			name: "bad checksum",
			cmd: dtos.GeneratePayloadCommand{
				BeneficiaryName: "Alice",
				IBAN:            "DE02120300000000202052",
			},
			kind: epc.ErrInvalidChecksum,
		},
		{
			name: "both remittance branches",
			cmd: dtos.GeneratePayloadCommand{
				BeneficiaryName: "Alice",
				IBAN:            "DE02120300000000202051",
				Remittance:      "text",
				Reference:       "RF18539007547034",
			},
			kind: epc.ErrInvalidFormat,
		},
		{
			name: "missing name",
			cmd: dtos.GeneratePayloadCommand{
				IBAN: "DE02120300000000202051",
			},
			kind: epc.ErrMissingRequiredField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)

			var valErr *epc.ValidationError
			assert.ErrorAs(t, err, &valErr)
		})
	}
}
