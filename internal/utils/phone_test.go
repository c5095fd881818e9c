package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	testCases := []struct {
		name     string
		phone    string
		wantOK   bool
		wantNorm string
	}{
		{name: "Bare ten digits", phone: "9876543210", wantOK: true, wantNorm: "919876543210"},
		{name: "With country code", phone: "919876543210", wantOK: true, wantNorm: "919876543210"},
		{name: "With plus prefix", phone: "+91 98765 43210", wantOK: true, wantNorm: "919876543210"},
		{name: "With trunk zero", phone: "09876543210", wantOK: true, wantNorm: "919876543210"},
		{name: "With dashes", phone: "98765-43210", wantOK: true, wantNorm: "919876543210"},
		{name: "Landline prefix rejected", phone: "1234567890", wantOK: false},
		{name: "Too short", phone: "98765", wantOK: false},
		{name: "Too long", phone: "98765432101234", wantOK: false},
		{name: "Letters rejected", phone: "98765abcde", wantOK: false},
		{name: "Empty", phone: "", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, normalized, err := ValidatePhone(tc.phone)
			if tc.wantOK {
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, tc.wantNorm, normalized)
			} else {
				assert.Error(t, err)
				assert.False(t, ok)
			}
		})
	}
}

func TestGenerateOTPCode(t *testing.T) {
	code, err := GenerateOTPCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}

	// Codes should differ across calls essentially always.
	other, err := GenerateOTPCode(6)
	require.NoError(t, err)
	if code == other {
		third, err := GenerateOTPCode(6)
		require.NoError(t, err)
		assert.NotEqual(t, code, third)
	}
}
