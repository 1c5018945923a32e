package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSolanaAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{
			name:    "valid 44 char address",
			address: "AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4",
			want:    true,
		},
		{
			name:    "valid mint address",
			address: "7d7jZLzHHefeSDqJj9EJhTrA1Ujmsb3saxs5vPdtpump",
			want:    true,
		},
		{
			name:    "valid 43 char address",
			address: "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw",
			want:    true,
		},
		{
			name:    "empty string",
			address: "",
			want:    false,
		},
		{
			name:    "too short",
			address: "7649112744",
			want:    false,
		},
		{
			name:    "too long",
			address: strings.Repeat("A", 45),
			want:    false,
		},
		{
			name:    "contains zero digit",
			address: "0iLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4",
			want:    false,
		},
		{
			name:    "contains capital O",
			address: "OiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4",
			want:    false,
		},
		{
			name:    "contains capital I",
			address: "IiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4",
			want:    false,
		},
		{
			name:    "contains lowercase l",
			address: "liLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4",
			want:    false,
		},
		{
			name: "valid alphabet and length but decodes to 31 bytes",
			// 43 chars, well-formed base58, one byte short of a public key.
			address: "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofL",
			want:    false,
		},
		{
			name: "valid alphabet and length but decodes to 33 bytes",
			address: strings.Repeat("z", 44),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSolanaAddress(tt.address))
		})
	}
}

func TestFormatSolanaAddress(t *testing.T) {
	assert.Equal(t, "AiLH3...Ywp4", FormatSolanaAddress("AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4"))
	assert.Equal(t, "short", FormatSolanaAddress("short"))
}

func TestValidateTokenAmount(t *testing.T) {
	assert.NoError(t, ValidateTokenAmount(0))
	assert.NoError(t, ValidateTokenAmount(1200))
	assert.Error(t, ValidateTokenAmount(-0.01))
}

func TestValidateTokenDecimals(t *testing.T) {
	assert.NoError(t, ValidateTokenDecimals(0))
	assert.NoError(t, ValidateTokenDecimals(9))
	assert.Error(t, ValidateTokenDecimals(-1))
	assert.Error(t, ValidateTokenDecimals(10))
}

func TestValidateFeePercentage(t *testing.T) {
	assert.NoError(t, ValidateFeePercentage(0.01))
	assert.NoError(t, ValidateFeePercentage(0.05))
	assert.NoError(t, ValidateFeePercentage(0.15))
	assert.Error(t, ValidateFeePercentage(0.009))
	assert.Error(t, ValidateFeePercentage(0.151))
	assert.Error(t, ValidateFeePercentage(0))
}

func TestValidateLabel(t *testing.T) {
	assert.NoError(t, ValidateLabel(""))
	assert.NoError(t, ValidateLabel("Telegram 2025-01-01"))
	assert.Error(t, ValidateLabel(strings.Repeat("x", MaxLabelLength+1)))
}
