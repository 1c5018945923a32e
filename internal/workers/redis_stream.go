package workers

import (
	"context"
	"encoding/json"
	"time"

	"airdrop-tool-backend/internal/common/logger"
	"airdrop-tool-backend/internal/features/airdrop/models"
	"airdrop-tool-backend/internal/features/airdrop/repository"
	"airdrop-tool-backend/internal/features/airdrop/service"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	streamKey     = "airdrop:batches"
	consumerGroup = "airdrop_backend_consumers"
	consumerName  = "airdrop_worker_1"
)

// StreamQueue submits airdrop batches to the Redis stream. One message is
// one batch.
type StreamQueue struct {
	rdb *goredis.Client
}

func NewStreamQueue(rdb *goredis.Client) *StreamQueue {
	return &StreamQueue{rdb: rdb}
}

func (q *StreamQueue) Enqueue(ctx context.Context, job *models.BatchJob) error {
	recipients, err := json.Marshal(job.Recipients)
	if err != nil {
		return err
	}

	return q.rdb.XAdd(ctx, &goredis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{
			"event_id":   job.EventID,
			"recipients": string(recipients),
		},
	}).Err()
}

// RedisStreamWorker consumes airdrop batches and runs them through the
// processor. Malformed messages are acked and skipped so they never wedge
// the stream.
type RedisStreamWorker struct {
	rdb       *goredis.Client
	repo      repository.AirdropRepository
	processor *service.Processor
	logger    zerolog.Logger
}

func NewRedisStreamWorker(rdb *goredis.Client, repo repository.AirdropRepository, processor *service.Processor) *RedisStreamWorker {
	return &RedisStreamWorker{
		rdb:       rdb,
		repo:      repo,
		processor: processor,
		logger:    logger.With("batch-worker"),
	}
}

// Start consumes the stream until ctx is cancelled.
func (w *RedisStreamWorker) Start(ctx context.Context) {
	err := w.rdb.XGroupCreateMkStream(ctx, streamKey, consumerGroup, "$").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		w.logger.Error().Err(err).Msg("Failed to create consumer group")
	}

	w.logger.Info().Str("stream", streamKey).Msg("Batch worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Batch worker stopped")
			return
		default:
			entries, err := w.rdb.XReadGroup(ctx, &goredis.XReadGroupArgs{
				Group:    consumerGroup,
				Consumer: consumerName,
				Streams:  []string{streamKey, ">"},
				Count:    1,
				Block:    5 * time.Second,
			}).Result()

			if err != nil {
				if err != goredis.Nil && ctx.Err() == nil {
					w.logger.Error().Err(err).Msg("Failed to read from stream")
					time.Sleep(time.Second)
				}
				continue
			}

			for _, stream := range entries {
				for _, msg := range stream.Messages {
					w.processMessage(ctx, msg.Values)
					w.rdb.XAck(ctx, streamKey, consumerGroup, msg.ID)
				}
			}
		}
	}
}

func (w *RedisStreamWorker) processMessage(ctx context.Context, values map[string]interface{}) {
	eventID, ok := values["event_id"].(string)
	if !ok || eventID == "" {
		w.logger.Warn().Interface("values", values).Msg("Dropping message without event_id")
		return
	}

	recipientsJSON, ok := values["recipients"].(string)
	if !ok {
		w.logger.Warn().Str("event_id", eventID).Msg("Dropping message without recipients")
		return
	}

	var recipients []string
	if err := json.Unmarshal([]byte(recipientsJSON), &recipients); err != nil {
		w.logger.Warn().Err(err).Str("event_id", eventID).Msg("Dropping message with malformed recipients")
		return
	}

	event, err := w.repo.GetEventByID(ctx, eventID)
	if err != nil {
		w.logger.Error().Err(err).Str("event_id", eventID).Msg("Failed to load event")
		return
	}
	if event == nil {
		w.logger.Warn().Str("event_id", eventID).Msg("Dropping batch for unknown event")
		return
	}

	w.processor.RunBatch(ctx, event, recipients)
}
