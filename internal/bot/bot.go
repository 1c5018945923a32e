package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"airdrop-tool-backend/internal/common/config"
	apperrors "airdrop-tool-backend/internal/common/errors"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/common/validation"
	airdropmodels "airdrop-tool-backend/internal/features/airdrop/models"
	airdropservice "airdrop-tool-backend/internal/features/airdrop/service"
	userservice "airdrop-tool-backend/internal/features/user/service"
	walletmodels "airdrop-tool-backend/internal/features/wallet/models"
	walletservice "airdrop-tool-backend/internal/features/wallet/service"
	"airdrop-tool-backend/internal/platform/telegram"

	"github.com/rs/zerolog"
)

const (
	pollTimeout  = 30 * time.Second
	errorBackoff = 3 * time.Second
)

// API is the slice of the Telegram client the bot needs.
type API interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.Update, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// commandHandler produces the reply for one command invocation.
type commandHandler func(ctx context.Context, msg *telegram.Message, args []string) string

// Bot is the chat front end. All dispatch goes through two tables: the
// command table and the keyword intent table.
type Bot struct {
	api      API
	users    userservice.UserService
	wallets  walletservice.WalletService
	airdrops airdropservice.AirdropService
	settings *config.Settings
	logger   zerolog.Logger

	commands map[string]commandHandler
}

func New(
	api API,
	users userservice.UserService,
	wallets walletservice.WalletService,
	airdrops airdropservice.AirdropService,
	settings *config.Settings,
) *Bot {
	b := &Bot{
		api:      api,
		users:    users,
		wallets:  wallets,
		airdrops: airdrops,
		settings: settings,
		logger:   logger.With("bot"),
	}

	b.commands = map[string]commandHandler{
		"start":    b.handleStart,
		"help":     b.handleHelp,
		"register": b.handleRegister,
		"wallet":   b.handleWallet,
		"airdrop":  b.handleAirdrop,
	}

	return b
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info().Msg("Bot started")

	var offset int64
	for {
		if ctx.Err() != nil {
			b.logger.Info().Msg("Bot stopped")
			return
		}

		updates, err := b.api.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.logger.Error().Err(err).Msg("Failed to fetch updates")
			time.Sleep(errorBackoff)
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			b.handleUpdate(ctx, update.Message)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, msg *telegram.Message) {
	reply := b.Dispatch(ctx, msg)
	if reply == "" {
		return
	}
	if err := b.api.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("Failed to send reply")
	}
}

// Dispatch routes one message to its reply: command table first, then bare
// address registration, then exact small talk, then keyword intents.
func (b *Bot) Dispatch(ctx context.Context, msg *telegram.Message) string {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return ""
	}

	if strings.HasPrefix(text, "/") {
		fields := strings.Fields(text)
		command := strings.TrimPrefix(fields[0], "/")
		// Group chats address commands as /cmd@botname.
		if at := strings.Index(command, "@"); at >= 0 {
			command = command[:at]
		}

		handler, ok := b.commands[strings.ToLower(command)]
		if !ok {
			return unrecognizedMessage
		}
		return handler(ctx, msg, fields[1:])
	}

	if validation.IsValidSolanaAddress(text) {
		return b.handleRegister(ctx, msg, []string{text})
	}

	lower := strings.ToLower(text)
	if reply, ok := commonResponses[lower]; ok {
		return reply
	}

	for _, entry := range keywordIntents {
		for _, keyword := range entry.keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			switch entry.intent {
			case "wallet":
				return b.handleWallet(ctx, msg, nil)
			case "airdrop":
				return commonResponses["airdrop"]
			case "help":
				return helpMessage
			case "greeting":
				return commonResponses["hi"]
			case "thanks":
				return commonResponses["thanks"]
			case "when":
				return commonResponses["when"]
			case "info":
				return commonResponses["token"]
			}
		}
	}

	return unrecognizedMessage
}

func (b *Bot) handleStart(context.Context, *telegram.Message, []string) string {
	return welcomeMessage
}

func (b *Bot) handleHelp(context.Context, *telegram.Message, []string) string {
	return helpMessage
}

func (b *Bot) handleRegister(ctx context.Context, msg *telegram.Message, args []string) string {
	if len(args) == 0 {
		return registerUsage
	}

	address := args[0]
	if !validation.IsValidSolanaAddress(address) {
		return registerInvalid
	}

	user, err := b.users.GetOrCreate(ctx, msg.From.ID, msg.From.Username)
	if err != nil {
		return fmt.Sprintf(genericError, "could not resolve your account")
	}

	_, err = b.wallets.RegisterWallet(ctx, user.ID, &walletmodels.WalletCreate{
		Address: address,
		Label:   fmt.Sprintf("Telegram %s", time.Now().UTC().Format("2006-01-02")),
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			switch {
			case appErr.Code == apperrors.ErrCodeWalletExists:
				return registerAlreadyExists
			case appErr.Code == apperrors.ErrCodeInvalidAddress:
				return registerInvalid
			}
		}
		b.logger.Error().Err(err).Int64("telegram_id", msg.From.ID).Msg("Wallet registration failed")
		return fmt.Sprintf(genericError, "registration failed")
	}

	return fmt.Sprintf(registerSuccess, validation.FormatSolanaAddress(address))
}

func (b *Bot) handleWallet(ctx context.Context, msg *telegram.Message, _ []string) string {
	user, err := b.users.GetOrCreate(ctx, msg.From.ID, msg.From.Username)
	if err != nil {
		return walletError
	}

	wallets, err := b.wallets.ListWallets(ctx, user.ID)
	if err != nil {
		b.logger.Error().Err(err).Int64("telegram_id", msg.From.ID).Msg("Failed to list wallets")
		return walletError
	}

	switch len(wallets) {
	case 0:
		return walletNone
	case 1:
		return fmt.Sprintf(walletDisplay, wallets[0].FormattedAddress())
	default:
		lines := make([]string, len(wallets))
		for i, wallet := range wallets {
			lines[i] = fmt.Sprintf("%d. %s", i+1, wallet.FormattedAddress())
		}
		return fmt.Sprintf(walletMultiple, strings.Join(lines, "\n"))
	}
}

func (b *Bot) handleAirdrop(ctx context.Context, msg *telegram.Message, args []string) string {
	if !b.settings.Snapshot().IsAdmin(msg.From.ID) {
		return adminOnly
	}

	if len(args) < 1 {
		return airdropUsage
	}

	input := &airdropmodels.EventCreate{TokenMint: args[0]}
	if len(args) > 1 {
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return airdropInvalidArgs
		}
		input.Amount = &amount
	}
	if len(args) > 2 {
		decimals, err := strconv.Atoi(args[2])
		if err != nil {
			return airdropInvalidArgs
		}
		input.Decimals = &decimals
	}

	user, err := b.users.GetOrCreate(ctx, msg.From.ID, msg.From.Username)
	if err != nil {
		return fmt.Sprintf(genericError, "could not resolve your account")
	}

	resp, err := b.airdrops.StartAirdrop(ctx, user.ID, input)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			switch appErr.Code {
			case apperrors.ErrCodeSenderNotSet:
				return airdropNoSender
			case apperrors.ErrCodeNoRecipients:
				return airdropNoWallets
			case apperrors.ErrCodeInvalidAddress, apperrors.ErrCodeInvalidAmount, apperrors.ErrCodeInvalidDecimals:
				return airdropInvalidArgs
			}
		}
		b.logger.Error().Err(err).Int64("telegram_id", msg.From.ID).Msg("Airdrop start failed")
		return fmt.Sprintf(genericError, "airdrop could not be started")
	}

	return fmt.Sprintf(airdropStarted, resp.Event.TokenAmount, resp.Recipients)
}
