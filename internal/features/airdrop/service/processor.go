package service

import (
	"context"
	"fmt"
	"time"

	"airdrop-tool-backend/internal/common/config"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/validation"
	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/features/airdrop/repository"
	"airdrop-tool-backend/internal/platform/solana"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Processor drives one airdrop event across its recipients.
//
// Recipients are processed strictly in sequence, one worker per batch: the
// ledger endpoint is rate-limited and transaction rows then have exactly
// one writer. Every recipient is independent; a failed transfer finalizes
// its own row and the batch moves on. There is no rollback and no terminal
// event record: the batch is complete when no transaction is left pending.
type Processor struct {
	repo     repository.AirdropRepository
	executor TransferExecutor
	settings *config.Settings

	// throttleDelay spaces out transfers to respect RPC rate limits; it is
	// a throttle policy, not a correctness requirement.
	throttleDelay   time.Duration
	transferTimeout time.Duration
	logger          zerolog.Logger
}

func NewProcessor(repo repository.AirdropRepository, executor TransferExecutor, settings *config.Settings, cfg *config.Config) *Processor {
	return &Processor{
		repo:            repo,
		executor:        executor,
		settings:        settings,
		throttleDelay:   cfg.Airdrop.ThrottleDelay,
		transferTimeout: cfg.Airdrop.TransferTimeout,
		logger:          logger.With("batch-processor"),
	}
}

// RunBatch processes every recipient of the event. Each occurrence in
// recipients gets its own transaction row, duplicates included.
func (p *Processor) RunBatch(ctx context.Context, event *models.Event, recipients []string) {
	p.logger.Info().
		Str("airdrop_id", event.ID).
		Int("recipients", len(recipients)).
		Msg("Starting airdrop batch")

	snap := p.settings.Snapshot()

	for i, recipient := range recipients {
		if i > 0 && p.throttleDelay > 0 {
			time.Sleep(p.throttleDelay)
		}
		p.processRecipient(ctx, event, recipient, snap)
	}

	p.logger.Info().
		Str("airdrop_id", event.ID).
		Msg("Airdrop batch completed")
}

// processRecipient creates the pending row, attempts the transfer and
// finalizes the row. A fault anywhere in the attempt finalizes the row as
// failed; it never aborts the batch.
func (p *Processor) processRecipient(ctx context.Context, event *models.Event, recipient string, snap config.Snapshot) {
	tx := &models.Transaction{
		ID:            uuid.New().String(),
		EventID:       event.ID,
		WalletAddress: recipient,
		Status:        models.TransactionStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	// The pending row is durable before the attempt: after a crash it is
	// the ground truth for which recipients were reached.
	if err := p.repo.CreateTransaction(ctx, tx); err != nil {
		p.logger.Error().
			Err(err).
			Str("airdrop_id", event.ID).
			Str("recipient", validation.FormatSolanaAddress(recipient)).
			Msg("Failed to create transaction record")
		return
	}

	result := p.attemptTransfer(ctx, event, recipient, snap)

	if result.Success {
		p.finalize(ctx, tx.ID, models.TransactionStatusSuccess, result.Signature, "", result.Timestamp)
		return
	}
	p.finalize(ctx, tx.ID, models.TransactionStatusFailed, "", result.Error, time.Now().UTC())
}

// attemptTransfer invokes the executor with a timeout and converts any
// panic from it into a failed result.
func (p *Processor) attemptTransfer(ctx context.Context, event *models.Event, recipient string, snap config.Snapshot) (result solana.TransferResult) {
	defer func() {
		if r := recover(); r != nil {
			result = solana.TransferResult{
				Success: false,
				Error:   fmt.Sprintf("transfer fault: %v", r),
			}
		}
	}()

	transferCtx, cancel := context.WithTimeout(ctx, p.transferTimeout)
	defer cancel()

	return p.executor.Transfer(transferCtx, solana.TransferRequest{
		Recipient:       recipient,
		TokenMint:       event.TokenMint,
		Amount:          event.TokenAmount,
		Decimals:        event.TokenDecimals,
		SenderSecretKey: snap.SenderSecretKey,
	})
}

func (p *Processor) finalize(ctx context.Context, txID string, status models.TransactionStatus, signature, errorMessage string, completedAt time.Time) {
	if err := p.repo.FinalizeTransaction(ctx, txID, status, signature, errorMessage, completedAt); err != nil {
		p.logger.Error().
			Err(err).
			Str("transaction_id", txID).
			Str("status", string(status)).
			Msg("Failed to finalize transaction record")
	}
}
