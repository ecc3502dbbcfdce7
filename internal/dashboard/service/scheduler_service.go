package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang-stock-sentiment/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SchedulerService periodically re-runs the fetch of every open sentiment
// view.
type SchedulerService interface {
	Start(ctx context.Context)
	ProcessRefresh(ctx context.Context)
	NextRun() time.Time
}

// NewSchedulerService creates a new scheduler service for cronExpression.
func NewSchedulerService(sentimentService SentimentService, cronExpression string, pollingInterval time.Duration, log *logger.Logger) (SchedulerService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cronExpression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cron expression %q: %w", cronExpression, err)
	}
	if pollingInterval <= 0 {
		pollingInterval = time.Second
	}

	s := &schedulerService{
		sentimentService: sentimentService,
		schedule:         schedule,
		pollingInterval:  pollingInterval,
		logger:           log,
		now:              time.Now,
	}
	s.nextRun = schedule.Next(s.now())
	return s, nil
}

type schedulerService struct {
	sentimentService SentimentService
	schedule         cron.Schedule
	pollingInterval  time.Duration
	logger           *logger.Logger
	now              func() time.Time

	mu      sync.Mutex
	nextRun time.Time
}

// Start begins the periodic refresh loop.
func (s *schedulerService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler service stopping")
			return
		case <-ticker.C:
			s.ProcessRefresh(ctx)
		}
	}
}

// ProcessRefresh refreshes all sentiment views if the next run is due.
func (s *schedulerService) ProcessRefresh(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	if now.Before(s.nextRun) {
		s.mu.Unlock()
		return
	}
	s.nextRun = s.schedule.Next(now)
	next := s.nextRun
	s.mu.Unlock()

	s.sentimentService.RefreshAll(ctx)
	s.logger.Debug("Sentiment refresh completed", logger.Field("next_run", next))
}

func (s *schedulerService) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRun
}
