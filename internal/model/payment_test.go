package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardInput_Mask(t *testing.T) {
	card := CardInput{
		Number:      "4111111111111111",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVV:         "123",
		HolderName:  "ALICE EXAMPLE",
	}

	masked := card.Mask()
	assert.Equal(t, "1111", masked.Last4)
	assert.Equal(t, "12", masked.ExpiryMonth)
	assert.Equal(t, "ALICE EXAMPLE", masked.HolderName)
}

func TestCardInput_Mask_ShortNumber(t *testing.T) {
	masked := CardInput{Number: "42"}.Mask()
	assert.Equal(t, "42", masked.Last4)
}

func TestMaskedCard_SerializesWithoutPANOrCVV(t *testing.T) {
	masked := CardInput{
		Number:     "4111111111111111",
		CVV:        "123",
		HolderName: "ALICE",
	}.Mask()

	data, err := json.Marshal(masked)
	require.NoError(t, err)

	s := string(data)
	assert.False(t, strings.Contains(s, "4111111111111111"))
	assert.False(t, strings.Contains(s, "123"))
	assert.True(t, strings.Contains(s, "1111"))
}
