package postgres

import (
	"context"
	"database/sql"
	"time"

	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/features/airdrop/repository"
)

type airdropRepository struct {
	db *sql.DB
}

func NewAirdropRepository(db *sql.DB) repository.AirdropRepository {
	return &airdropRepository{db: db}
}

func (r *airdropRepository) CreateEvent(ctx context.Context, event *models.Event) error {
	const q = `
	INSERT INTO airdrop_events (id, token_mint, token_amount, token_decimals, started_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, q,
		event.ID, event.TokenMint, event.TokenAmount, event.TokenDecimals,
		event.StartedBy, event.CreatedAt,
	)
	return err
}

func (r *airdropRepository) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	const q = `
	SELECT id, token_mint, token_amount, token_decimals, started_by, created_at
	FROM airdrop_events WHERE id = $1`

	var e models.Event
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.TokenMint, &e.TokenAmount, &e.TokenDecimals, &e.StartedBy, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *airdropRepository) ListEvents(ctx context.Context) ([]*models.Event, error) {
	const q = `
	SELECT id, token_mint, token_amount, token_decimals, started_by, created_at
	FROM airdrop_events ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.TokenMint, &e.TokenAmount, &e.TokenDecimals, &e.StartedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *airdropRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	const q = `
	INSERT INTO airdrop_transactions (id, event_id, wallet_address, status, signature, error_message, created_at, completed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, q,
		tx.ID, tx.EventID, tx.WalletAddress, tx.Status,
		nullString(tx.Signature), nullString(tx.ErrorMessage),
		tx.CreatedAt, tx.CompletedAt,
	)
	return err
}

func (r *airdropRepository) FinalizeTransaction(ctx context.Context, id string, status models.TransactionStatus, signature, errorMessage string, completedAt time.Time) error {
	// The status guard keeps finalization one-shot: a terminal row never
	// reverts and never flips between success and failed.
	const q = `
	UPDATE airdrop_transactions
	SET status = $2, signature = $3, error_message = $4, completed_at = $5
	WHERE id = $1 AND status = 'pending'`

	_, err := r.db.ExecContext(ctx, q,
		id, status, nullString(signature), nullString(errorMessage), completedAt,
	)
	return err
}

func (r *airdropRepository) GetTransactionsByEvent(ctx context.Context, eventID string) ([]*models.Transaction, error) {
	const q = `
	SELECT id, event_id, wallet_address, status, signature, error_message, created_at, completed_at
	FROM airdrop_transactions WHERE event_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		var (
			tx           models.Transaction
			signature    sql.NullString
			errorMessage sql.NullString
			completedAt  sql.NullTime
		)
		if err := rows.Scan(&tx.ID, &tx.EventID, &tx.WalletAddress, &tx.Status, &signature, &errorMessage, &tx.CreatedAt, &completedAt); err != nil {
			return nil, err
		}
		tx.Signature = signature.String
		tx.ErrorMessage = errorMessage.String
		if completedAt.Valid {
			t := completedAt.Time
			tx.CompletedAt = &t
		}
		txs = append(txs, &tx)
	}
	return txs, rows.Err()
}

func (r *airdropRepository) CountByStatus(ctx context.Context, eventID string) (*models.StatusCounts, error) {
	const q = `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'success'),
		COUNT(*) FILTER (WHERE status = 'failed'),
		COUNT(*) FILTER (WHERE status = 'pending')
	FROM airdrop_transactions WHERE event_id = $1`

	var counts models.StatusCounts
	err := r.db.QueryRowContext(ctx, q, eventID).Scan(
		&counts.Total, &counts.Success, &counts.Failed, &counts.Pending,
	)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
