package config

import (
	"strconv"
	"strings"
	"sync"

	apperrors "airdrop-tool-backend/internal/common/errors"
)

// Setting keys accepted by Settings.Update.
const (
	SettingTokenMint       = "SPL_TOKEN_MINT"
	SettingTokenAmount     = "SPL_TOKEN_AMOUNT"
	SettingTokenDecimals   = "SPL_TOKEN_DECIMALS"
	SettingRPCEndpoint     = "SOLANA_RPC"
	SettingSenderSecretKey = "SENDER_SECRET_KEY"
	SettingAdminIDs        = "ADMIN_IDS"
	SettingBotUsername     = "BOT_USERNAME"
)

// Snapshot is a point-in-time copy of the runtime-updatable settings.
// Callers take one snapshot per operation and never hold it across calls.
type Snapshot struct {
	TokenMint       string
	TokenAmount     float64
	TokenDecimals   int
	RPCEndpoint     string
	SenderSecretKey string
	AdminIDs        []int64
	BotUsername     string
}

// HasSender reports whether a sender credential is configured.
func (s Snapshot) HasSender() bool {
	return s.SenderSecretKey != ""
}

// IsAdmin reports whether the given Telegram user is an admin.
func (s Snapshot) IsAdmin(userID int64) bool {
	for _, id := range s.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Settings holds the values an admin may change without a restart.
// Single writer (the admin settings endpoint), many readers.
type Settings struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewSettings seeds the runtime settings from the static config.
func NewSettings(cfg *Config) *Settings {
	admins := make([]int64, len(cfg.Telegram.AdminIDs))
	copy(admins, cfg.Telegram.AdminIDs)

	return &Settings{
		snap: Snapshot{
			TokenMint:       cfg.Solana.TokenMint,
			TokenAmount:     cfg.Solana.TokenAmount,
			TokenDecimals:   cfg.Solana.TokenDecimals,
			RPCEndpoint:     cfg.Solana.RPCEndpoint,
			SenderSecretKey: cfg.Solana.SenderSecretKey,
			AdminIDs:        admins,
			BotUsername:     cfg.Telegram.BotUsername,
		},
	}
}

// Snapshot returns a copy of the current settings.
func (s *Settings) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snap
	snap.AdminIDs = make([]int64, len(s.snap.AdminIDs))
	copy(snap.AdminIDs, s.snap.AdminIDs)
	return snap
}

// Update applies the given key/value pairs. All values are validated before
// any of them is applied, so a bad update leaves the settings untouched.
func (s *Settings) Update(updates map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap
	next.AdminIDs = make([]int64, len(s.snap.AdminIDs))
	copy(next.AdminIDs, s.snap.AdminIDs)

	for key, value := range updates {
		switch key {
		case SettingTokenMint:
			next.TokenMint = value
		case SettingTokenAmount:
			amount, err := strconv.ParseFloat(value, 64)
			if err != nil || amount < 0 {
				return apperrors.Newf(apperrors.ErrCodeSettingsBadValue, "invalid token amount: %q", value)
			}
			next.TokenAmount = amount
		case SettingTokenDecimals:
			decimals, err := strconv.Atoi(value)
			if err != nil || decimals < 0 || decimals > 9 {
				return apperrors.Newf(apperrors.ErrCodeSettingsBadValue, "invalid token decimals: %q", value)
			}
			next.TokenDecimals = decimals
		case SettingRPCEndpoint:
			next.RPCEndpoint = value
		case SettingSenderSecretKey:
			next.SenderSecretKey = value
		case SettingAdminIDs:
			ids, err := parseAdminIDs(value)
			if err != nil {
				return apperrors.Newf(apperrors.ErrCodeSettingsBadValue, "invalid admin ids: %q", value)
			}
			next.AdminIDs = ids
		case SettingBotUsername:
			next.BotUsername = value
		default:
			return apperrors.Newf(apperrors.ErrCodeSettingsUnknown, "unknown setting: %s", key)
		}
	}

	s.snap = next
	return nil
}

func parseAdminIDs(value string) ([]int64, error) {
	if strings.TrimSpace(value) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
