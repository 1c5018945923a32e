package models

import "time"

// TransactionStatus is the per-recipient outcome state. The only legal
// transitions are pending -> success and pending -> failed.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Event is one admin-triggered batch distribution. Events are append-only
// audit records: never updated, never deleted. Success/failure/pending
// counts are derived from the transactions, not stored.
type Event struct {
	ID            string    `json:"id"`
	TokenMint     string    `json:"token_mint"`
	TokenAmount   float64   `json:"token_amount"`
	TokenDecimals int       `json:"token_decimals"`
	StartedBy     string    `json:"started_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// Transaction is the per-recipient outcome record of one Event. A row is
// inserted as pending before the transfer attempt and finalized exactly
// once. Signature is set iff the status is success; CompletedAt is set iff
// the status is terminal.
type Transaction struct {
	ID            string            `json:"id"`
	EventID       string            `json:"event_id"`
	WalletAddress string            `json:"wallet_address"`
	Status        TransactionStatus `json:"status"`
	Signature     string            `json:"signature,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

// IsTerminal reports whether the transaction has been finalized.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusFailed
}

// StatusCounts are the per-status row counts of one event.
type StatusCounts struct {
	Total   int
	Success int
	Failed  int
	Pending int
}

// EventCreate is the payload for starting an airdrop. Empty fields fall
// back to the configured defaults.
type EventCreate struct {
	TokenMint string   `json:"token_mint"`
	Amount    *float64 `json:"amount"`
	Decimals  *int     `json:"decimals"`
}

// EventResponse is returned when an airdrop is started.
type EventResponse struct {
	Event      Event `json:"event"`
	Recipients int   `json:"recipients"`
}

// StatusResponse is the progress snapshot of one event.
type StatusResponse struct {
	AirdropID          string  `json:"airdrop_id"`
	Total              int     `json:"total"`
	Completed          int     `json:"completed"`
	Success            int     `json:"success"`
	Failed             int     `json:"failed"`
	Pending            int     `json:"pending"`
	Status             string  `json:"status"`
	ProgressPercentage float64 `json:"progress_percentage"`
}
