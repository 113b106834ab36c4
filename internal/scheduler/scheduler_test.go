package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podhub/internal/domain"
	"podhub/internal/queue"
)

type stubLister struct {
	sources []domain.ImportSource
	err     error
}

func (l *stubLister) List(context.Context) ([]domain.ImportSource, error) {
	return l.sources, l.err
}

type stubPublisher struct {
	published []queue.SyncContentPayload
	err       error
}

func (p *stubPublisher) Publish(_ context.Context, topic string, payload any) error {
	if p.err != nil {
		return p.err
	}
	if topic == queue.TopicSyncContent {
		p.published = append(p.published, payload.(queue.SyncContentPayload))
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestEnqueueDue_SkipsRecentlyImported(t *testing.T) {
	now := time.Now()
	fresh := now.Add(-time.Minute)
	stale := now.Add(-2 * time.Hour)

	lister := &stubLister{sources: []domain.ImportSource{
		{ID: "fresh", LastImportedAt: &fresh},
		{ID: "stale", LastImportedAt: &stale},
		{ID: "never"},
	}}
	publisher := &stubPublisher{}

	s := NewScheduler(lister, publisher, time.Hour, testLogger())
	s.enqueueDue(context.Background())

	require.Len(t, publisher.published, 2)
	assert.Equal(t, "stale", publisher.published[0].ID)
	assert.Equal(t, "never", publisher.published[1].ID)
}

func TestEnqueueDue_ListErrorEnqueuesNothing(t *testing.T) {
	lister := &stubLister{err: errors.New("db down")}
	publisher := &stubPublisher{}

	s := NewScheduler(lister, publisher, time.Hour, testLogger())
	s.enqueueDue(context.Background())

	assert.Empty(t, publisher.published)
}

func TestEnqueueDue_PublishErrorDoesNotStopOthers(t *testing.T) {
	lister := &stubLister{sources: []domain.ImportSource{{ID: "a"}, {ID: "b"}}}
	publisher := &stubPublisher{err: errors.New("broker down")}

	s := NewScheduler(lister, publisher, time.Hour, testLogger())
	s.enqueueDue(context.Background())

	assert.Empty(t, publisher.published)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	lister := &stubLister{}
	publisher := &stubPublisher{}

	s := NewScheduler(lister, publisher, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
