package service

import (
	"context"
	"time"

	"airdrop-tool-backend/internal/common/config"
	apperrors "airdrop-tool-backend/internal/common/errors"
	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/features/user/models"
	"airdrop-tool-backend/internal/features/user/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserService resolves platform users from Telegram identity.
type UserService interface {
	// GetOrCreate returns the user for a Telegram identity, creating the
	// record on first contact. The admin flag always reflects the current
	// settings, not the stored row.
	GetOrCreate(ctx context.Context, telegramID int64, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	repo     repository.UserRepository
	settings *config.Settings
	logger   zerolog.Logger
}

func NewUserService(repo repository.UserRepository, settings *config.Settings) UserService {
	return &userService{
		repo:     repo,
		settings: settings,
		logger:   logger.With("user-service"),
	}
}

func (s *userService) GetOrCreate(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	snap := s.settings.Snapshot()

	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get user", err)
	}
	if user != nil {
		user.IsAdmin = snap.IsAdmin(telegramID)
		return user, nil
	}

	user = &models.User{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		Username:   username,
		IsAdmin:    snap.IsAdmin(telegramID),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent first contact; read the winner.
		existing, getErr := s.repo.GetByTelegramID(ctx, telegramID)
		if getErr == nil && existing != nil {
			existing.IsAdmin = snap.IsAdmin(telegramID)
			return existing, nil
		}
		return nil, apperrors.NewDatabaseError("create user", err)
	}

	s.logger.Info().
		Int64("telegram_id", telegramID).
		Str("username", username).
		Msg("User created")

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.ErrCodeUserNotFound, "User not found")
	}
	user.IsAdmin = s.settings.Snapshot().IsAdmin(user.TelegramID)
	return user, nil
}
