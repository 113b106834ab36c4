package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"podhub/internal/domain"
	"podhub/internal/queue"
)

//go:generate mockgen -source=indexer.go -destination=mocks/mocks.go -package=mocks

// DocumentStore is the slice of Store the indexer needs.
type DocumentStore interface {
	IndexProgram(ctx context.Context, p *domain.Program) error
	IndexEpisode(ctx context.Context, e *domain.Episode) error
	RemoveProgram(ctx context.Context, id string) error
	RemoveEpisode(ctx context.Context, id int64) error
}

// Indexer consumes indexing jobs and projects entities into the search
// store. Handlers return errors to the queue, which retries with backoff; a
// replayed job lands on the same document id, so replays are harmless.
type Indexer struct {
	store  DocumentStore
	logger *slog.Logger
}

func NewIndexer(store DocumentStore, logger *slog.Logger) *Indexer {
	return &Indexer{
		store:  store,
		logger: logger.With("component", "indexer"),
	}
}

// Start subscribes every indexing topic. index-* and update-* converge on
// the same full-document upsert.
func (ix *Indexer) Start(ctx context.Context, q queue.Queue) error {
	subscriptions := map[string]queue.Handler{
		queue.TopicIndexProgram:  ix.handleProgramUpsert,
		queue.TopicUpdateProgram: ix.handleProgramUpsert,
		queue.TopicRemoveProgram: ix.handleProgramRemove,
		queue.TopicIndexEpisode:  ix.handleEpisodeUpsert,
		queue.TopicRemoveEpisode: ix.handleEpisodeRemove,
	}

	for topic, handler := range subscriptions {
		if err := q.Subscribe(ctx, topic, handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	return nil
}

func (ix *Indexer) handleProgramUpsert(ctx context.Context, payload []byte) error {
	var program domain.Program
	if err := json.Unmarshal(payload, &program); err != nil {
		return fmt.Errorf("decode program: %w", err)
	}

	if err := ix.store.IndexProgram(ctx, &program); err != nil {
		return err
	}

	ix.logger.Debug("indexed program", "id", program.ID)
	return nil
}

func (ix *Indexer) handleProgramRemove(ctx context.Context, payload []byte) error {
	var msg queue.RemoveProgramPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decode program removal: %w", err)
	}

	if err := ix.store.RemoveProgram(ctx, msg.ID); err != nil {
		return err
	}

	ix.logger.Debug("removed program", "id", msg.ID)
	return nil
}

func (ix *Indexer) handleEpisodeUpsert(ctx context.Context, payload []byte) error {
	var episode domain.Episode
	if err := json.Unmarshal(payload, &episode); err != nil {
		return fmt.Errorf("decode episode: %w", err)
	}

	if err := ix.store.IndexEpisode(ctx, &episode); err != nil {
		return err
	}

	ix.logger.Debug("indexed episode", "id", episode.ID)
	return nil
}

func (ix *Indexer) handleEpisodeRemove(ctx context.Context, payload []byte) error {
	var msg queue.RemoveEpisodePayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decode episode removal: %w", err)
	}

	if err := ix.store.RemoveEpisode(ctx, msg.ID); err != nil {
		return err
	}

	ix.logger.Debug("removed episode", "id", msg.ID)
	return nil
}
