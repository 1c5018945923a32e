package solana

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/validation"

	"github.com/rs/zerolog"
)

// TransferRequest describes one SPL token transfer to one recipient.
type TransferRequest struct {
	Recipient       string
	TokenMint       string
	Amount          float64
	Decimals        int
	SenderSecretKey string
}

// TransferResult is the outcome of a transfer attempt. Every code path of
// the client produces a result value; the client never panics outward.
type TransferResult struct {
	Success   bool      `json:"success"`
	Signature string    `json:"signature,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// WithdrawalRequest is a transfer with a platform fee taken from the amount.
type WithdrawalRequest struct {
	TransferRequest
	FeePercentage float64
}

// WithdrawalResult carries the fee breakdown alongside the transfer outcome.
type WithdrawalResult struct {
	TransferResult
	FeeAmount float64 `json:"fee_amount"`
	NetAmount float64 `json:"net_amount"`
}

// Client talks to the Solana ledger network. Transaction construction and
// signing are not implemented: the client validates inputs and fabricates a
// deterministic signature, standing in for the real RPC submission.
type Client struct {
	rpcEndpoint string
	logger      zerolog.Logger
}

func NewClient(rpcEndpoint string) *Client {
	return &Client{
		rpcEndpoint: rpcEndpoint,
		logger:      logger.With("solana"),
	}
}

// Transfer sends req.Amount tokens to req.Recipient. It does not retry and
// does not persist anything; failures are reported in the result value.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (result TransferResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Sprintf("transfer error: %v", r))
		}
	}()

	if !validation.IsValidSolanaAddress(req.Recipient) {
		return failure(fmt.Sprintf("invalid wallet address: %s", req.Recipient))
	}
	if !validation.IsValidSolanaAddress(req.TokenMint) {
		return failure(fmt.Sprintf("invalid token mint: %s", req.TokenMint))
	}
	if req.SenderSecretKey == "" {
		return failure("no sender secret key provided")
	}
	if err := ctx.Err(); err != nil {
		return failure(fmt.Sprintf("transfer error: %v", err))
	}

	c.logger.Debug().
		Str("recipient", validation.FormatSolanaAddress(req.Recipient)).
		Float64("amount", req.Amount).
		Str("rpc", c.rpcEndpoint).
		Msg("Mock airdrop transfer")

	now := time.Now().UTC()
	digest := sha256.Sum256([]byte(fmt.Sprintf(
		"%s-%s-%f-%s", req.Recipient, req.TokenMint, req.Amount, now.Format(time.RFC3339Nano),
	)))

	return TransferResult{
		Success:   true,
		Signature: hex.EncodeToString(digest[:]),
		Timestamp: now,
	}
}

// Withdraw performs a transfer with a fee deducted from the amount.
// FeePercentage must lie within [0.01, 0.15].
func (c *Client) Withdraw(ctx context.Context, req WithdrawalRequest) WithdrawalResult {
	if err := validation.ValidateFeePercentage(req.FeePercentage); err != nil {
		return WithdrawalResult{TransferResult: failure(err.Error())}
	}

	feeAmount := req.Amount * req.FeePercentage
	netAmount := req.Amount - feeAmount

	transfer := c.Transfer(ctx, req.TransferRequest)
	if !transfer.Success {
		return WithdrawalResult{TransferResult: transfer}
	}

	return WithdrawalResult{
		TransferResult: transfer,
		FeeAmount:      feeAmount,
		NetAmount:      netAmount,
	}
}

// DeriveTokenAddress derives the associated token account for a wallet and
// mint. Placeholder until real SPL derivation is wired in.
func (c *Client) DeriveTokenAddress(walletAddress, tokenMint string) string {
	return fmt.Sprintf("ATA-%s-%s", walletAddress[:5], tokenMint[:5])
}

func failure(reason string) TransferResult {
	return TransferResult{Success: false, Error: reason}
}
