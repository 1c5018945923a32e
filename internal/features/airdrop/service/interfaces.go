package service

import (
	"context"

	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/platform/solana"
)

// AirdropService is the front-end facing surface of the airdrop feature.
type AirdropService interface {
	// StartAirdrop validates the request, creates the event and enqueues
	// the batch. It fails without creating an event when no wallets are
	// registered or no sender credential is configured.
	StartAirdrop(ctx context.Context, initiatorID string, input *models.EventCreate) (*models.EventResponse, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	// Status is a pure read over the event's transactions, safe to call
	// concurrently with an in-flight batch.
	Status(ctx context.Context, eventID string) (*models.StatusResponse, error)
}

// TransferExecutor performs one token transfer. Implementations return a
// result value on every code path and never panic outward.
type TransferExecutor interface {
	Transfer(ctx context.Context, req solana.TransferRequest) solana.TransferResult
}

// BatchQueue accepts a batch as one unit of work for detached execution.
type BatchQueue interface {
	Enqueue(ctx context.Context, job *models.BatchJob) error
}

// RecipientSource resolves the airdrop target set.
type RecipientSource interface {
	GetAllAddresses(ctx context.Context) ([]string, error)
}
