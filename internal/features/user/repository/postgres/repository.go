package postgres

import (
	"context"
	"database/sql"

	"airdrop-tool-backend/internal/features/user/models"
	"airdrop-tool-backend/internal/features/user/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
	INSERT INTO users (id, telegram_id, username, is_admin, created_at)
	VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, q,
		user.ID, user.TelegramID, user.Username, user.IsAdmin, user.CreatedAt,
	)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const q = `
	SELECT id, telegram_id, username, is_admin, created_at
	FROM users WHERE id = $1`

	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	const q = `
	SELECT id, telegram_id, username, is_admin, created_at
	FROM users WHERE telegram_id = $1`

	return scanUser(r.db.QueryRowContext(ctx, q, telegramID))
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Username, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
