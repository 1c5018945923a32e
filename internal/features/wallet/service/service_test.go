package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"airdrop-tool-backend/internal/common/config"
	apperrors "airdrop-tool-backend/internal/common/errors"
	"airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/platform/solana"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validAddress  = "AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4"
	validAddress2 = "7d7jZLzHHefeSDqJj9EJhTrA1Ujmsb3saxs5vPdtpump"
)

type fakeWalletRepo struct {
	mu      sync.Mutex
	wallets map[string]*models.Wallet
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[string]*models.Wallet)}
}

func (r *fakeWalletRepo) Create(_ context.Context, wallet *models.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *wallet
	r.wallets[wallet.ID] = &copied
	return nil
}

func (r *fakeWalletRepo) GetByID(_ context.Context, id string) (*models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wallet, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	copied := *wallet
	return &copied, nil
}

func (r *fakeWalletRepo) GetByUser(_ context.Context, userID string) ([]*models.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Wallet
	for _, wallet := range r.wallets {
		if wallet.UserID == userID {
			copied := *wallet
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeWalletRepo) ExistsForUser(_ context.Context, userID, address string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, wallet := range r.wallets {
		if wallet.UserID == userID && wallet.Address == address {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWalletRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wallets, id)
	return nil
}

func (r *fakeWalletRepo) GetAllAddresses(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, wallet := range r.wallets {
		out = append(out, wallet.Address)
	}
	return out, nil
}

type fakeWithdrawExecutor struct {
	lastReq  solana.WithdrawalRequest
	withdraw func(req solana.WithdrawalRequest) solana.WithdrawalResult
}

func (e *fakeWithdrawExecutor) Withdraw(_ context.Context, req solana.WithdrawalRequest) solana.WithdrawalResult {
	e.lastReq = req
	if e.withdraw != nil {
		return e.withdraw(req)
	}
	fee := req.Amount * req.FeePercentage
	return solana.WithdrawalResult{
		TransferResult: solana.TransferResult{Success: true, Signature: "sig", Timestamp: time.Now().UTC()},
		FeeAmount:      fee,
		NetAmount:      req.Amount - fee,
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Solana.SenderSecretKey = "test-sender-key"
	cfg.Cache.WalletsTTL = 30 * time.Second
	return cfg
}

func newTestService(repo *fakeWalletRepo, executor *fakeWithdrawExecutor, cfg *config.Config) WalletService {
	return NewWalletService(repo, executor, config.NewSettings(cfg), nil, cfg)
}

func TestRegisterWallet(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{
		Address: validAddress,
		Label:   "Main",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, wallet.ID)
	assert.Equal(t, "user-1", wallet.UserID)
	assert.Equal(t, validAddress, wallet.Address)
	assert.Equal(t, "Main", wallet.Label)
	assert.True(t, wallet.IsValidated)
}

func TestRegisterWalletRejectsInvalidAddressBeforePersisting(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	_, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: "0OIl-not-base58"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidAddress, appErr.Code)
	assert.Empty(t, repo.wallets)
}

func TestRegisterWalletDuplicatePerUser(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	_, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	_, err = svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeWalletExists, appErr.Code)

	// Another user may register the same address.
	_, err = svc.RegisterWallet(context.Background(), "user-2", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)
}

func TestDeleteWalletOwnerOnly(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	err = svc.DeleteWallet(context.Background(), "user-2", wallet.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)

	require.NoError(t, svc.DeleteWallet(context.Background(), "user-1", wallet.ID))

	err = svc.DeleteWallet(context.Background(), "user-1", wallet.ID)
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeWalletNotFound, appErr.Code)
}

func TestWithdrawFeeBreakdown(t *testing.T) {
	repo := newFakeWalletRepo()
	executor := &fakeWithdrawExecutor{}
	svc := newTestService(repo, executor, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	resp, err := svc.Withdraw(context.Background(), "user-1", wallet.ID, &models.WithdrawRequest{
		Destination:   validAddress2,
		TokenMint:     validAddress,
		Amount:        100,
		Decimals:      6,
		FeePercentage: 0.05,
	})
	require.NoError(t, err)

	assert.Equal(t, "sig", resp.Signature)
	assert.InDelta(t, 5.0, resp.FeeAmount, 0.001)
	assert.InDelta(t, 95.0, resp.NetAmount, 0.001)
	assert.Equal(t, "test-sender-key", executor.lastReq.SenderSecretKey)
}

func TestWithdrawDefaultsFee(t *testing.T) {
	repo := newFakeWalletRepo()
	executor := &fakeWithdrawExecutor{}
	svc := newTestService(repo, executor, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	_, err = svc.Withdraw(context.Background(), "user-1", wallet.ID, &models.WithdrawRequest{
		Destination: validAddress2,
		TokenMint:   validAddress,
		Amount:      100,
	})
	require.NoError(t, err)
	assert.InDelta(t, DefaultFeePercentage, executor.lastReq.FeePercentage, 0.0001)
}

func TestWithdrawRejectsOutOfRangeFee(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	for _, fee := range []float64{0.009, 0.16, -0.05} {
		_, err := svc.Withdraw(context.Background(), "user-1", wallet.ID, &models.WithdrawRequest{
			Destination:   validAddress2,
			TokenMint:     validAddress,
			Amount:        100,
			FeePercentage: fee,
		})
		require.Error(t, err, "fee %v", fee)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeInvalidFee, appErr.Code)
	}
}

func TestWithdrawNotOwner(t *testing.T) {
	repo := newFakeWalletRepo()
	svc := newTestService(repo, &fakeWithdrawExecutor{}, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	_, err = svc.Withdraw(context.Background(), "user-2", wallet.ID, &models.WithdrawRequest{
		Destination: validAddress2,
		TokenMint:   validAddress,
		Amount:      100,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)
}

func TestWithdrawExecutorFailure(t *testing.T) {
	repo := newFakeWalletRepo()
	executor := &fakeWithdrawExecutor{
		withdraw: func(req solana.WithdrawalRequest) solana.WithdrawalResult {
			return solana.WithdrawalResult{TransferResult: solana.TransferResult{Success: false, Error: "rpc down"}}
		},
	}
	svc := newTestService(repo, executor, testConfig())

	wallet, err := svc.RegisterWallet(context.Background(), "user-1", &models.WalletCreate{Address: validAddress})
	require.NoError(t, err)

	_, err = svc.Withdraw(context.Background(), "user-1", wallet.ID, &models.WithdrawRequest{
		Destination: validAddress2,
		TokenMint:   validAddress,
		Amount:      100,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeTransferFailed, appErr.Code)
	assert.Equal(t, "rpc down", appErr.Details["reason"])
}
