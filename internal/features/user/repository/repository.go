package repository

import (
	"context"

	"airdrop-tool-backend/internal/features/user/models"
)

// UserRepository persists platform users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
}
