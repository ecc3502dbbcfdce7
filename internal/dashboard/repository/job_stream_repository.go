package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// JobStreamRepository hands created jobs to downstream executors.
type JobStreamRepository interface {
	Publish(ctx context.Context, job entity.Job) error
}

type jobStreamRepository struct {
	redisClient *redis.Client
	stream      string
	maxLen      int64
	logger      *logger.Logger
}

// NewJobStreamRepository creates a JobStreamRepository writing to a Redis stream.
func NewJobStreamRepository(redisClient *redis.Client, stream string, maxLen int64, log *logger.Logger) JobStreamRepository {
	return &jobStreamRepository{
		redisClient: redisClient,
		stream:      stream,
		maxLen:      maxLen,
		logger:      log,
	}
}

// Publish appends job to the stream.
func (r *jobStreamRepository) Publish(ctx context.Context, job entity.Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	id, err := r.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{"job_id": job.ID, "payload": payload},
		MaxLen: r.maxLen,
		Approx: true,
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish job", logger.ErrorField(err), logger.StringField("job_id", job.ID))
		return fmt.Errorf("failed to publish job: %w", err)
	}

	r.logger.Info("Job published", logger.StringField("job_id", job.ID), logger.StringField("stream_id", id))
	return nil
}
