package bot

import (
	"context"
	"testing"

	"airdrop-tool-backend/internal/common/config"
	apperrors "airdrop-tool-backend/internal/common/errors"
	airdropmodels "airdrop-tool-backend/internal/features/airdrop/models"
	usermodels "airdrop-tool-backend/internal/features/user/models"
	walletmodels "airdrop-tool-backend/internal/features/wallet/models"
	"airdrop-tool-backend/internal/platform/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminTelegramID = int64(1)
	userTelegramID  = int64(100)

	validAddress = "AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4"
	validMint    = "7d7jZLzHHefeSDqJj9EJhTrA1Ujmsb3saxs5vPdtpump"
)

type stubUsers struct{}

func (stubUsers) GetOrCreate(_ context.Context, telegramID int64, username string) (*usermodels.User, error) {
	return &usermodels.User{ID: "user-1", TelegramID: telegramID, Username: username}, nil
}

func (stubUsers) GetByID(context.Context, string) (*usermodels.User, error) {
	return nil, apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
}

type stubWallets struct {
	wallets     []*walletmodels.Wallet
	registerErr error
	registered  []*walletmodels.WalletCreate
}

func (s *stubWallets) RegisterWallet(_ context.Context, userID string, input *walletmodels.WalletCreate) (*walletmodels.Wallet, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = append(s.registered, input)
	return &walletmodels.Wallet{ID: "wallet-1", UserID: userID, Address: input.Address, Label: input.Label}, nil
}

func (s *stubWallets) ListWallets(context.Context, string) ([]*walletmodels.Wallet, error) {
	return s.wallets, nil
}

func (s *stubWallets) DeleteWallet(context.Context, string, string) error { return nil }

func (s *stubWallets) Withdraw(context.Context, string, string, *walletmodels.WithdrawRequest) (*walletmodels.WithdrawResponse, error) {
	return nil, apperrors.New(apperrors.ErrCodeInternal, "not used")
}

type stubAirdrops struct {
	startErr error
	started  []*airdropmodels.EventCreate
}

func (s *stubAirdrops) StartAirdrop(_ context.Context, initiatorID string, input *airdropmodels.EventCreate) (*airdropmodels.EventResponse, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	s.started = append(s.started, input)
	amount := 1200.0
	if input.Amount != nil {
		amount = *input.Amount
	}
	return &airdropmodels.EventResponse{
		Event:      airdropmodels.Event{ID: "event-1", TokenMint: input.TokenMint, TokenAmount: amount, StartedBy: initiatorID},
		Recipients: 3,
	}, nil
}

func (s *stubAirdrops) GetEvent(context.Context, string) (*airdropmodels.Event, error) {
	return nil, apperrors.NewAirdropNotFoundError("event")
}

func (s *stubAirdrops) ListEvents(context.Context) ([]*airdropmodels.Event, error) { return nil, nil }

func (s *stubAirdrops) Status(context.Context, string) (*airdropmodels.StatusResponse, error) {
	return nil, apperrors.NewAirdropNotFoundError("event")
}

func testBot(wallets *stubWallets, airdrops *stubAirdrops) *Bot {
	cfg := &config.Config{}
	cfg.Telegram.AdminIDs = []int64{adminTelegramID}
	return New(nil, stubUsers{}, wallets, airdrops, config.NewSettings(cfg))
}

func message(from int64, text string) *telegram.Message {
	return &telegram.Message{
		From: &telegram.User{ID: from, Username: "someone"},
		Chat: telegram.Chat{ID: from},
		Text: text,
	}
}

func TestDispatchCommands(t *testing.T) {
	b := testBot(&stubWallets{}, &stubAirdrops{})

	assert.Equal(t, welcomeMessage, b.Dispatch(context.Background(), message(userTelegramID, "/start")))
	assert.Equal(t, helpMessage, b.Dispatch(context.Background(), message(userTelegramID, "/help")))
	assert.Equal(t, unrecognizedMessage, b.Dispatch(context.Background(), message(userTelegramID, "/frobnicate")))
}

func TestDispatchCommandWithBotSuffix(t *testing.T) {
	b := testBot(&stubWallets{}, &stubAirdrops{})
	assert.Equal(t, helpMessage, b.Dispatch(context.Background(), message(userTelegramID, "/help@airdrop_bot")))
}

func TestRegisterCommand(t *testing.T) {
	wallets := &stubWallets{}
	b := testBot(wallets, &stubAirdrops{})

	assert.Equal(t, registerUsage, b.Dispatch(context.Background(), message(userTelegramID, "/register")))
	assert.Equal(t, registerInvalid, b.Dispatch(context.Background(), message(userTelegramID, "/register not-an-address")))

	reply := b.Dispatch(context.Background(), message(userTelegramID, "/register "+validAddress))
	assert.Contains(t, reply, "registered successfully")
	require.Len(t, wallets.registered, 1)
	assert.Equal(t, validAddress, wallets.registered[0].Address)
	assert.Contains(t, wallets.registered[0].Label, "Telegram ")
}

func TestBareAddressRegisters(t *testing.T) {
	wallets := &stubWallets{}
	b := testBot(wallets, &stubAirdrops{})

	reply := b.Dispatch(context.Background(), message(userTelegramID, validAddress))
	assert.Contains(t, reply, "registered successfully")
	require.Len(t, wallets.registered, 1)
}

func TestRegisterDuplicate(t *testing.T) {
	wallets := &stubWallets{registerErr: apperrors.New(apperrors.ErrCodeWalletExists, "Wallet already registered")}
	b := testBot(wallets, &stubAirdrops{})

	reply := b.Dispatch(context.Background(), message(userTelegramID, "/register "+validAddress))
	assert.Equal(t, registerAlreadyExists, reply)
}

func TestWalletCommand(t *testing.T) {
	wallets := &stubWallets{}
	b := testBot(wallets, &stubAirdrops{})
	assert.Equal(t, walletNone, b.Dispatch(context.Background(), message(userTelegramID, "/wallet")))

	wallets.wallets = []*walletmodels.Wallet{{Address: validAddress}}
	reply := b.Dispatch(context.Background(), message(userTelegramID, "/wallet"))
	assert.Contains(t, reply, "Your registered wallet address")

	wallets.wallets = append(wallets.wallets, &walletmodels.Wallet{Address: validMint})
	reply = b.Dispatch(context.Background(), message(userTelegramID, "/wallet"))
	assert.Contains(t, reply, "1. ")
	assert.Contains(t, reply, "2. ")
}

func TestAirdropCommandAdminOnly(t *testing.T) {
	airdrops := &stubAirdrops{}
	b := testBot(&stubWallets{}, airdrops)

	assert.Equal(t, adminOnly, b.Dispatch(context.Background(), message(userTelegramID, "/airdrop "+validMint)))
	assert.Empty(t, airdrops.started)
}

func TestAirdropCommand(t *testing.T) {
	airdrops := &stubAirdrops{}
	b := testBot(&stubWallets{}, airdrops)

	assert.Equal(t, airdropUsage, b.Dispatch(context.Background(), message(adminTelegramID, "/airdrop")))

	reply := b.Dispatch(context.Background(), message(adminTelegramID, "/airdrop "+validMint+" 10 0"))
	assert.Contains(t, reply, "Started airdrop")
	require.Len(t, airdrops.started, 1)
	require.NotNil(t, airdrops.started[0].Amount)
	assert.Equal(t, 10.0, *airdrops.started[0].Amount)
	require.NotNil(t, airdrops.started[0].Decimals)
	assert.Equal(t, 0, *airdrops.started[0].Decimals)
}

func TestAirdropCommandBadArgs(t *testing.T) {
	b := testBot(&stubWallets{}, &stubAirdrops{})
	assert.Equal(t, airdropInvalidArgs, b.Dispatch(context.Background(), message(adminTelegramID, "/airdrop "+validMint+" ten")))
}

func TestAirdropCommandPreconditionReplies(t *testing.T) {
	airdrops := &stubAirdrops{startErr: apperrors.New(apperrors.ErrCodeSenderNotSet, "Sender wallet not configured")}
	b := testBot(&stubWallets{}, airdrops)
	assert.Equal(t, airdropNoSender, b.Dispatch(context.Background(), message(adminTelegramID, "/airdrop "+validMint)))

	airdrops.startErr = apperrors.New(apperrors.ErrCodeNoRecipients, "No wallets registered for airdrop")
	assert.Equal(t, airdropNoWallets, b.Dispatch(context.Background(), message(adminTelegramID, "/airdrop "+validMint)))
}

func TestKeywordIntents(t *testing.T) {
	b := testBot(&stubWallets{}, &stubAirdrops{})

	assert.Equal(t, commonResponses["hello"], b.Dispatch(context.Background(), message(userTelegramID, "hello")))
	assert.Equal(t, walletNone, b.Dispatch(context.Background(), message(userTelegramID, "where is my wallet")))
	assert.Equal(t, commonResponses["airdrop"], b.Dispatch(context.Background(), message(userTelegramID, "give me free stuff")))
	assert.Equal(t, commonResponses["thanks"], b.Dispatch(context.Background(), message(userTelegramID, "thanks a lot")))
	assert.Equal(t, unrecognizedMessage, b.Dispatch(context.Background(), message(userTelegramID, "zzzz qqqq")))
}
