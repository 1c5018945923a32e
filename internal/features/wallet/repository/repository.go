package repository

import (
	"context"

	"airdrop-tool-backend/internal/features/wallet/models"
)

// WalletRepository persists wallet registrations.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id string) (*models.Wallet, error)
	GetByUser(ctx context.Context, userID string) ([]*models.Wallet, error)
	ExistsForUser(ctx context.Context, userID, address string) (bool, error)
	Delete(ctx context.Context, id string) error
	// GetAllAddresses returns every registered address, the airdrop target
	// set. Order is stable (registration order).
	GetAllAddresses(ctx context.Context) ([]string, error)
}
