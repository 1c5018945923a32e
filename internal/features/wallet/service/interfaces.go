package service

import (
	"context"

	"airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/platform/solana"
)

// WalletService is the front-end facing surface of the wallet feature.
// Every operation is scoped to the calling user; a wallet is only ever
// visible to and deletable by its owner.
type WalletService interface {
	RegisterWallet(ctx context.Context, userID string, input *models.WalletCreate) (*models.Wallet, error)
	ListWallets(ctx context.Context, userID string) ([]*models.Wallet, error)
	DeleteWallet(ctx context.Context, userID, walletID string) error
	Withdraw(ctx context.Context, userID, walletID string, input *models.WithdrawRequest) (*models.WithdrawResponse, error)
}

// WithdrawExecutor performs one fee-deducting token transfer.
type WithdrawExecutor interface {
	Withdraw(ctx context.Context, req solana.WithdrawalRequest) solana.WithdrawalResult
}
