package scheduler

import (
	"context"
	"log/slog"
	"time"

	"podhub/internal/domain"
	"podhub/internal/queue"
)

// SourceLister enumerates registered import sources.
type SourceLister interface {
	List(ctx context.Context) ([]domain.ImportSource, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Scheduler periodically enqueues a sync job for every import source whose
// last import is older than the interval. The actual sync happens in the
// queue consumer, so a slow source never blocks the tick.
type Scheduler struct {
	sources   SourceLister
	publisher Publisher
	interval  time.Duration
	logger    *slog.Logger
}

func NewScheduler(sources SourceLister, publisher Publisher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sources:   sources,
		publisher: publisher,
		interval:  interval,
		logger:    logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.enqueueDue(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.enqueueDue(ctx)
		}
	}
}

func (s *Scheduler) enqueueDue(ctx context.Context) {
	sources, err := s.sources.List(ctx)
	if err != nil {
		s.logger.Error("list import sources failed", "error", err)
		return
	}

	cutoff := time.Now().Add(-s.interval)
	enqueued := 0
	for _, src := range sources {
		if src.LastImportedAt != nil && src.LastImportedAt.After(cutoff) {
			continue
		}
		payload := queue.SyncContentPayload{ID: src.ID}
		if err := s.publisher.Publish(ctx, queue.TopicSyncContent, payload); err != nil {
			s.logger.Error("enqueue sync failed", "source_id", src.ID, "error", err)
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		s.logger.Info("enqueued due sources", "count", enqueued)
	}
}
