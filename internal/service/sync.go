package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"podhub/internal/config"
	"podhub/internal/domain"
	"podhub/internal/queue"
	"podhub/internal/slug"
)

// SyncService reconciles adapter output into the relational store and hands
// indexing work to the queue. It is the only writer of program and episode
// rows.
type SyncService struct {
	sources   ImportSourceStore
	programs  ProgramStore
	episodes  EpisodeStore
	txManager TransactionManager
	registry  AdapterRegistry
	publisher Publisher
	locks     *sourceLocks
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	sources ImportSourceStore,
	programs ProgramStore,
	episodes EpisodeStore,
	txManager TransactionManager,
	registry AdapterRegistry,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		sources:   sources,
		programs:  programs,
		episodes:  episodes,
		txManager: txManager,
		registry:  registry,
		publisher: publisher,
		locks:     newSourceLocks(),
		logger:    logger.With("component", "sync"),
		config:    cfg,
	}
}

// SyncContent imports every new item from the source into its program.
// Re-running with unchanged adapter output creates nothing: items are keyed
// by (program, external id). The whole reconciliation commits or rolls back
// as one transaction; indexing jobs are enqueued only after commit.
//
// Syncs of the same source are serialized; different sources run in
// parallel.
func (s *SyncService) SyncContent(ctx context.Context, importSourceID string) (*domain.SyncResult, error) {
	s.locks.lock(importSourceID)
	defer s.locks.unlock(importSourceID)

	startTime := time.Now()

	source, err := s.sources.GetByID(ctx, importSourceID)
	if err != nil {
		return nil, fmt.Errorf("load import source %s: %w", importSourceID, err)
	}

	adapter, ok := s.registry.Resolve(source.SourceType)
	if !ok {
		return nil, fmt.Errorf("source type %s: %w", source.SourceType, domain.ErrNoAdapter)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	items, err := adapter.Fetch(fetchCtx, source.Locator)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}

	s.logger.Info("fetched items from source",
		"source_id", importSourceID,
		"source_type", source.SourceType,
		"count", len(items),
	)

	var (
		program        *domain.Program
		programCreated bool
		newEpisodes    []domain.Episode
	)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		program, programCreated, err = s.findOrCreateProgram(txCtx, source)
		if err != nil {
			return err
		}

		newEpisodes, err = s.reconcileEpisodes(txCtx, program, items)
		if err != nil {
			return err
		}

		return s.sources.SetLastImportedAt(txCtx, source.ID, time.Now().UTC())
	})
	if err != nil {
		return nil, fmt.Errorf("sync transaction: %w", err)
	}

	// Rows are committed now, so the indexer can safely read the snapshots.
	s.enqueueIndexJobs(ctx, program, programCreated, newEpisodes)

	result := &domain.SyncResult{
		ProgramID:   program.ID,
		TotalItems:  len(items),
		NewEpisodes: len(newEpisodes),
	}

	s.logger.Info("sync completed",
		"source_id", importSourceID,
		"program_id", program.ID,
		"total_items", result.TotalItems,
		"new_episodes", result.NewEpisodes,
		"duration", time.Since(startTime),
	)

	return result, nil
}

// findOrCreateProgram is the only path that creates a program implicitly.
func (s *SyncService) findOrCreateProgram(ctx context.Context, source *domain.ImportSource) (*domain.Program, bool, error) {
	program, err := s.programs.GetByImportSource(ctx, source.ID)
	if err == nil {
		return program, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("find program: %w", err)
	}

	program = &domain.Program{
		Title:          fmt.Sprintf("Imported Program: %s", source.SourceType),
		Description:    fmt.Sprintf("Imported from %s", source.Locator),
		Language:       "ar",
		Category:       "General",
		PublishDate:    time.Now().UTC(),
		SourceType:     source.SourceType,
		ImportSourceID: &source.ID,
	}
	if err := s.programs.Create(ctx, program); err != nil {
		return nil, false, fmt.Errorf("create program: %w", err)
	}

	s.logger.Info("created program for import source",
		"program_id", program.ID,
		"source_id", source.ID,
	)

	return program, true, nil
}

func (s *SyncService) reconcileEpisodes(ctx context.Context, program *domain.Program, items []domain.UnifiedContentItem) ([]domain.Episode, error) {
	maxNumber, err := s.episodes.MaxEpisodeNumber(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("max episode number: %w", err)
	}
	nextNumber := maxNumber + 1

	var created []domain.Episode
	for i := range items {
		item := &items[i]

		// Without an external id a re-import could not be deduplicated.
		if item.ExternalID == "" {
			s.logger.Debug("skipping item without external id", "title", item.Title)
			continue
		}

		exists, err := s.episodes.ExistsByExternalID(ctx, program.ID, item.ExternalID)
		if err != nil {
			return nil, fmt.Errorf("check external id: %w", err)
		}
		if exists {
			continue
		}

		episodeSlug, err := s.uniqueSlug(ctx, program.ID, item.Title)
		if err != nil {
			return nil, err
		}

		publishDate := time.Now().UTC()
		if item.PublishedAt != nil {
			publishDate = *item.PublishedAt
		}

		episode := domain.Episode{
			ProgramID:       program.ID,
			Title:           item.Title,
			Slug:            episodeSlug,
			ExternalID:      &item.ExternalID,
			Description:     item.Description,
			DurationSeconds: item.DurationSeconds,
			PublishDate:     publishDate,
			EpisodeNumber:   nextNumber,
		}
		if err := s.episodes.Create(ctx, &episode); err != nil {
			return nil, fmt.Errorf("create episode %q: %w", item.Title, err)
		}

		nextNumber++
		created = append(created, episode)
	}

	return created, nil
}

// uniqueSlug appends -1, -2, ... until the slug is free within the program.
func (s *SyncService) uniqueSlug(ctx context.Context, programID, title string) (string, error) {
	base := slug.Make(title)
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := s.episodes.ExistsBySlug(ctx, programID, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
	}
}

// enqueueIndexJobs publishes snapshots of committed rows. Publish failures
// leave the index stale until a retry or maintenance resync; they never fail
// the sync itself.
func (s *SyncService) enqueueIndexJobs(ctx context.Context, program *domain.Program, programCreated bool, episodes []domain.Episode) {
	if programCreated {
		if err := s.publisher.Publish(ctx, queue.TopicIndexProgram, program); err != nil {
			s.logger.Error("enqueue program index job failed", "program_id", program.ID, "error", err)
		}
	}
	for i := range episodes {
		if err := s.publisher.Publish(ctx, queue.TopicIndexEpisode, &episodes[i]); err != nil {
			s.logger.Error("enqueue episode index job failed", "episode_id", episodes[i].ID, "error", err)
		}
	}
}
