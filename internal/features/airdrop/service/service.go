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
	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/features/airdrop/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type airdropService struct {
	repo       repository.AirdropRepository
	recipients RecipientSource
	queue      BatchQueue
	settings   *config.Settings
	cache      *cache.CacheService
	statusTTL  time.Duration
	logger     zerolog.Logger
}

func NewAirdropService(
	repo repository.AirdropRepository,
	recipients RecipientSource,
	queue BatchQueue,
	settings *config.Settings,
	cacheService *cache.CacheService,
	cfg *config.Config,
) AirdropService {
	return &airdropService{
		repo:       repo,
		recipients: recipients,
		queue:      queue,
		settings:   settings,
		cache:      cacheService,
		statusTTL:  cfg.Cache.StatusTTL,
		logger:     logger.With("airdrop-service"),
	}
}

func (s *airdropService) StartAirdrop(ctx context.Context, initiatorID string, input *models.EventCreate) (*models.EventResponse, error) {
	snap := s.settings.Snapshot()

	tokenMint := input.TokenMint
	if tokenMint == "" {
		tokenMint = snap.TokenMint
	}
	amount := snap.TokenAmount
	if input.Amount != nil {
		amount = *input.Amount
	}
	decimals := snap.TokenDecimals
	if input.Decimals != nil {
		decimals = *input.Decimals
	}

	if !validation.IsValidSolanaAddress(tokenMint) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidAddress, "Invalid token mint address").
			WithDetail("token_mint", tokenMint)
	}
	if err := validation.ValidateTokenAmount(amount); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidAmount, err.Error())
	}
	if err := validation.ValidateTokenDecimals(decimals); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDecimals, err.Error())
	}

	// Fail-fast preconditions: no event row may exist for a batch that can
	// never run.
	if !snap.HasSender() {
		return nil, apperrors.New(apperrors.ErrCodeSenderNotSet, "Sender wallet not configured")
	}

	addresses, err := s.recipients.GetAllAddresses(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list recipients", err)
	}
	if len(addresses) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNoRecipients, "No wallets registered for airdrop")
	}

	event := &models.Event{
		ID:            uuid.New().String(),
		TokenMint:     tokenMint,
		TokenAmount:   amount,
		TokenDecimals: decimals,
		StartedBy:     initiatorID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, apperrors.NewDatabaseError("create airdrop event", err)
	}

	job := &models.BatchJob{EventID: event.ID, Recipients: addresses}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return nil, apperrors.NewQueueError("enqueue airdrop batch", err)
	}

	s.logger.Info().
		Str("airdrop_id", event.ID).
		Str("token_mint", validation.FormatSolanaAddress(tokenMint)).
		Float64("amount", amount).
		Int("recipients", len(addresses)).
		Msg("Airdrop started")

	return &models.EventResponse{Event: *event, Recipients: len(addresses)}, nil
}

func (s *airdropService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("get airdrop event", err)
	}
	if event == nil {
		return nil, apperrors.NewAirdropNotFoundError(eventID)
	}
	return event, nil
}

func (s *airdropService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list airdrop events", err)
	}
	return events, nil
}

func (s *airdropService) Status(ctx context.Context, eventID string) (*models.StatusResponse, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.computeStatus(ctx, eventID)
	}

	var response models.StatusResponse
	cacheKey := fmt.Sprintf("airdrop_status:%s", eventID)

	err := s.cache.GetOrSet(ctx, cacheKey, &response, s.statusTTL, func() (interface{}, error) {
		return s.computeStatus(ctx, eventID)
	})
	if err != nil {
		// The cache is best effort; fall back to a direct read.
		return s.computeStatus(ctx, eventID)
	}

	return &response, nil
}

// computeStatus derives the progress snapshot from the transaction rows.
// It tolerates rows being finalized concurrently: a row is counted in
// whichever state the single query observed.
func (s *airdropService) computeStatus(ctx context.Context, eventID string) (*models.StatusResponse, error) {
	counts, err := s.repo.CountByStatus(ctx, eventID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("count airdrop transactions", err)
	}

	completed := counts.Total - counts.Pending

	progress := 0.0
	if counts.Total > 0 {
		progress = float64(completed) / float64(counts.Total) * 100
	}

	// A just-enqueued batch has no rows yet; it is still in progress.
	status := "in_progress"
	if counts.Total > 0 && completed == counts.Total {
		status = "completed"
	}

	return &models.StatusResponse{
		AirdropID:          eventID,
		Total:              counts.Total,
		Completed:          completed,
		Success:            counts.Success,
		Failed:             counts.Failed,
		Pending:            counts.Pending,
		Status:             status,
		ProgressPercentage: progress,
	}, nil
}
