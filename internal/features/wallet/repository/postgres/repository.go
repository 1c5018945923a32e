package postgres

import (
	"context"
	"database/sql"

	"airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/features/wallet/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	const q = `
	INSERT INTO wallets (id, user_id, address, label, is_validated, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	var label sql.NullString
	if wallet.Label != "" {
		label = sql.NullString{String: wallet.Label, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, q,
		wallet.ID, wallet.UserID, wallet.Address, label, wallet.IsValidated, wallet.CreatedAt,
	)
	return err
}

func (r *walletRepository) GetByID(ctx context.Context, id string) (*models.Wallet, error) {
	const q = `
	SELECT id, user_id, address, label, is_validated, created_at
	FROM wallets WHERE id = $1`

	var (
		w     models.Wallet
		label sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&w.ID, &w.UserID, &w.Address, &label, &w.IsValidated, &w.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	w.Label = label.String
	return &w, nil
}

func (r *walletRepository) GetByUser(ctx context.Context, userID string) ([]*models.Wallet, error) {
	const q = `
	SELECT id, user_id, address, label, is_validated, created_at
	FROM wallets WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallets []*models.Wallet
	for rows.Next() {
		var (
			w     models.Wallet
			label sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.Address, &label, &w.IsValidated, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Label = label.String
		wallets = append(wallets, &w)
	}
	return wallets, rows.Err()
}

func (r *walletRepository) ExistsForUser(ctx context.Context, userID, address string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1 AND address = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, q, userID, address).Scan(&exists)
	return exists, err
}

func (r *walletRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM wallets WHERE id = $1`

	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *walletRepository) GetAllAddresses(ctx context.Context) ([]string, error) {
	const q = `SELECT address FROM wallets ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, rows.Err()
}
