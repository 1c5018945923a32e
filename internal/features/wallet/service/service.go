package service

import (
	"context"
	"fmt"
	"time"

	"airdrop-tool-backend/internal/common/cache"
	"airdrop-tool-backend/internal/common/config"
	apperrors "airdrop-tool-backend/internal/common/errors"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/validation"
	"airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/features/wallet/repository"
	"airdrop-tool-backend/internal/platform/solana"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultFeePercentage applies when a withdrawal does not name a fee.
const DefaultFeePercentage = 0.05

type walletService struct {
	repo       repository.WalletRepository
	executor   WithdrawExecutor
	settings   *config.Settings
	cache      *cache.CacheService
	walletsTTL time.Duration
	logger     zerolog.Logger
}

func NewWalletService(
	repo repository.WalletRepository,
	executor WithdrawExecutor,
	settings *config.Settings,
	cacheService *cache.CacheService,
	cfg *config.Config,
) WalletService {
	return &walletService{
		repo:       repo,
		executor:   executor,
		settings:   settings,
		cache:      cacheService,
		walletsTTL: cfg.Cache.WalletsTTL,
		logger:     logger.With("wallet-service"),
	}
}

func (s *walletService) RegisterWallet(ctx context.Context, userID string, input *models.WalletCreate) (*models.Wallet, error) {
	// Nothing invalid is ever persisted; the address is checked before any
	// storage call.
	if !validation.IsValidSolanaAddress(input.Address) {
		return nil, apperrors.NewInvalidAddressError(input.Address)
	}
	if err := validation.ValidateLabel(input.Label); err != nil {
		return nil, apperrors.NewValidationError("label", err.Error())
	}

	exists, err := s.repo.ExistsForUser(ctx, userID, input.Address)
	if err != nil {
		return nil, apperrors.NewDatabaseError("check wallet", err)
	}
	if exists {
		return nil, apperrors.New(apperrors.ErrCodeWalletExists, "Wallet already registered").
			WithDetail("address", validation.FormatSolanaAddress(input.Address))
	}

	wallet := &models.Wallet{
		ID:          uuid.New().String(),
		UserID:      userID,
		Address:     input.Address,
		Label:       input.Label,
		IsValidated: true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, wallet); err != nil {
		return nil, apperrors.NewDatabaseError("create wallet", err)
	}

	s.invalidate(ctx, userID)

	s.logger.Info().
		Str("user_id", userID).
		Str("address", wallet.FormattedAddress()).
		Msg("Wallet registered")

	return wallet, nil
}

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]*models.Wallet, error) {
	if s.cache == nil {
		return s.listWallets(ctx, userID)
	}

	var wallets []*models.Wallet
	cacheKey := fmt.Sprintf("wallets:%s", userID)

	err := s.cache.GetOrSet(ctx, cacheKey, &wallets, s.walletsTTL, func() (interface{}, error) {
		return s.listWallets(ctx, userID)
	})
	if err != nil {
		return s.listWallets(ctx, userID)
	}
	return wallets, nil
}

func (s *walletService) listWallets(ctx context.Context, userID string) ([]*models.Wallet, error) {
	wallets, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list wallets", err)
	}
	return wallets, nil
}

func (s *walletService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	wallet, err := s.getOwned(ctx, userID, walletID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, wallet.ID); err != nil {
		return apperrors.NewDatabaseError("delete wallet", err)
	}

	s.invalidate(ctx, userID)

	s.logger.Info().
		Str("user_id", userID).
		Str("address", wallet.FormattedAddress()).
		Msg("Wallet deleted")

	return nil
}

func (s *walletService) Withdraw(ctx context.Context, userID, walletID string, input *models.WithdrawRequest) (*models.WithdrawResponse, error) {
	wallet, err := s.getOwned(ctx, userID, walletID)
	if err != nil {
		return nil, err
	}

	fee := input.FeePercentage
	if fee == 0 {
		fee = DefaultFeePercentage
	}
	if err := validation.ValidateFeePercentage(fee); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidFee, err.Error())
	}
	if input.Amount <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidAmount, "Withdrawal amount must be positive")
	}

	snap := s.settings.Snapshot()

	result := s.executor.Withdraw(ctx, solana.WithdrawalRequest{
		TransferRequest: solana.TransferRequest{
			Recipient:       input.Destination,
			TokenMint:       input.TokenMint,
			Amount:          input.Amount,
			Decimals:        input.Decimals,
			SenderSecretKey: snap.SenderSecretKey,
		},
		FeePercentage: fee,
	})
	if !result.Success {
		return nil, apperrors.New(apperrors.ErrCodeTransferFailed, "Withdrawal failed").
			WithDetail("reason", result.Error)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("wallet", wallet.FormattedAddress()).
		Float64("amount", input.Amount).
		Float64("fee", result.FeeAmount).
		Msg("Withdrawal processed")

	return &models.WithdrawResponse{
		Signature: result.Signature,
		Amount:    input.Amount,
		FeeAmount: result.FeeAmount,
		NetAmount: result.NetAmount,
	}, nil
}

// getOwned loads a wallet and enforces ownership.
func (s *walletService) getOwned(ctx context.Context, userID, walletID string) (*models.Wallet, error) {
	wallet, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get wallet", err)
	}
	if wallet == nil {
		return nil, apperrors.NewWalletNotFoundError(walletID)
	}
	if wallet.UserID != userID {
		return nil, apperrors.New(apperrors.ErrCodeForbidden, "Wallet belongs to another user")
	}
	return wallet, nil
}

func (s *walletService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateWalletCache(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to invalidate wallet cache")
	}
}
