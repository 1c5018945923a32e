package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	MaxLabelLength = 64

	MinAddressLength = 32
	MaxAddressLength = 44

	MinTokenDecimals = 0
	MaxTokenDecimals = 9

	MinFeePercentage = 0.01
	MaxFeePercentage = 0.15
)

// Solana addresses are base58: no 0, O, I or l.
var solanaAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsValidSolanaAddress reports whether s is a structurally valid Solana
// address: base58 alphabet, 32-44 characters, decoding to exactly 32 bytes.
// No network call is made.
func IsValidSolanaAddress(s string) bool {
	if !solanaAddressRegex.MatchString(s) {
		return false
	}

	decoded := base58.Decode(s)
	return len(decoded) == 32
}

// FormatSolanaAddress truncates an address for display, e.g. "AiLH3...Ywp4".
func FormatSolanaAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:5], address[len(address)-4:])
}

// ValidateAddress returns an error when s is not a valid Solana address.
func ValidateAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("address cannot be empty")
	}
	if !IsValidSolanaAddress(s) {
		return fmt.Errorf("invalid Solana address: %s", s)
	}
	return nil
}

// ValidateTokenAmount checks an amount-per-recipient value.
func ValidateTokenAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("token amount cannot be negative")
	}
	return nil
}

// ValidateTokenDecimals checks an SPL token decimals value.
func ValidateTokenDecimals(decimals int) error {
	if decimals < MinTokenDecimals || decimals > MaxTokenDecimals {
		return fmt.Errorf("token decimals must be between %d and %d", MinTokenDecimals, MaxTokenDecimals)
	}
	return nil
}

// ValidateFeePercentage checks a withdrawal fee percentage.
func ValidateFeePercentage(fee float64) error {
	if fee < MinFeePercentage || fee > MaxFeePercentage {
		return fmt.Errorf("fee percentage must be between %.2f and %.2f", MinFeePercentage, MaxFeePercentage)
	}
	return nil
}

// ValidateLabel checks an optional wallet label.
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLength {
		return fmt.Errorf("label cannot exceed %d characters", MaxLabelLength)
	}
	return nil
}
