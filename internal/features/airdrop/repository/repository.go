package repository

import (
	"context"
	"time"

	"airdrop-tool-backend/internal/features/airdrop/models"
)

// AirdropRepository persists airdrop events and their transactions.
//
// Events are append-only; transactions are written twice at most: once at
// creation (pending) and once at finalization. Only the batch processor for
// an event ever writes its transactions, so no cross-writer locking is
// needed beyond single-row atomicity.
type AirdropRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)

	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// FinalizeTransaction moves a transaction out of pending exactly once.
	// Finalizing an already-terminal transaction is a no-op.
	FinalizeTransaction(ctx context.Context, id string, status models.TransactionStatus, signature, errorMessage string, completedAt time.Time) error
	GetTransactionsByEvent(ctx context.Context, eventID string) ([]*models.Transaction, error)
	CountByStatus(ctx context.Context, eventID string) (*models.StatusCounts, error)
}
