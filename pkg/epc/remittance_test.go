package epc_test

import (
	"strings"
	"testing"

	"github.com/Haleralex/epcqr/pkg/epc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnstructuredRemittance(t *testing.T) {
	r, err := epc.UnstructuredRemittance("invoice 2026-081")
	require.NoError(t, err)
	assert.False(t, r.IsStructured())
	assert.Equal(t, "invoice 2026-081", r.Text())
	assert.True(t, r.Reference().IsZero())
}

// The 140-character bound is exact: 140 passes, 141 fails.
func TestUnstructuredRemittance_LengthBound(t *testing.T) {
	atLimit := strings.Repeat("x", epc.MaxUnstructuredRemittanceLength)
	_, err := epc.UnstructuredRemittance(atLimit)
	require.NoError(t, err)

	_, err = epc.UnstructuredRemittance(atLimit + "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, epc.ErrTextTooLong)
}

func TestStructuredRemittance(t *testing.T) {
	ref, err := epc.ParseCreditorReference("RF18 5390 0754 7034")
	require.NoError(t, err)

	r := epc.StructuredRemittance(ref)
	assert.True(t, r.IsStructured())
	assert.Equal(t, "RF18539007547034", r.Reference().String())
	assert.Empty(t, r.Text())
}

func TestRemittance_Zero(t *testing.T) {
	var r epc.Remittance
	assert.True(t, r.IsZero())
	assert.False(t, r.IsStructured())
}
