package models

import (
	"time"

	"airdrop-tool-backend/internal/common/validation"
)

// Wallet is a user's registered Solana address. The same address may be
// registered by different users, but only once per user. Wallets are never
// mutated; they are created and, on the owner's request, deleted.
type Wallet struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Address     string    `json:"address"`
	Label       string    `json:"label,omitempty"`
	IsValidated bool      `json:"is_validated"`
	CreatedAt   time.Time `json:"created_at"`
}

// FormattedAddress returns the truncated display form of the address.
func (w *Wallet) FormattedAddress() string {
	return validation.FormatSolanaAddress(w.Address)
}

// WalletCreate is the payload for registering a wallet.
type WalletCreate struct {
	Address string `json:"address" binding:"required"`
	Label   string `json:"label"`
}

// WithdrawRequest is the payload for withdrawing tokens from a wallet.
type WithdrawRequest struct {
	Destination   string  `json:"destination" binding:"required"`
	TokenMint     string  `json:"token_mint" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Decimals      int     `json:"decimals"`
	FeePercentage float64 `json:"fee_percentage"`
}

// WithdrawResponse reports the withdrawal outcome with the fee breakdown.
type WithdrawResponse struct {
	Signature string  `json:"signature"`
	Amount    float64 `json:"amount"`
	FeeAmount float64 `json:"fee_amount"`
	NetAmount float64 `json:"net_amount"`
}
