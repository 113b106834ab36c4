// Package catalog is the direct mutation path for programs and episodes,
// guarding the uniqueness invariants that the import pipeline enforces on
// its own side.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"podhub/internal/discovery"
	"podhub/internal/domain"
	"podhub/internal/queue"
	"podhub/internal/slug"
)

type Service struct {
	programs ProgramStore
	episodes EpisodeStore
	queue    Publisher
	indexer  BulkIndexer
	cache    CacheInvalidator
	logger   *slog.Logger
}

func NewService(
	programs ProgramStore,
	episodes EpisodeStore,
	q Publisher,
	indexer BulkIndexer,
	cache CacheInvalidator,
	logger *slog.Logger,
) *Service {
	return &Service{
		programs: programs,
		episodes: episodes,
		queue:    q,
		indexer:  indexer,
		cache:    cache,
		logger:   logger.With("component", "catalog"),
	}
}

func (s *Service) CreateProgram(ctx context.Context, p *domain.Program) error {
	existing, err := s.programs.GetByTitleAndSource(ctx, p.Title, p.SourceType)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check program uniqueness: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("program %q from %s: %w", p.Title, p.SourceType, domain.ErrConflict)
	}

	if err := s.programs.Create(ctx, p); err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	s.publish(ctx, queue.TopicIndexProgram, p)
	s.invalidatePrograms(ctx)
	return nil
}

func (s *Service) GetProgram(ctx context.Context, id string) (*domain.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *Service) UpdateProgram(ctx context.Context, p *domain.Program) error {
	if _, err := s.programs.GetByID(ctx, p.ID); err != nil {
		return err
	}

	if err := s.programs.Update(ctx, p); err != nil {
		return fmt.Errorf("update program: %w", err)
	}

	s.publish(ctx, queue.TopicUpdateProgram, p)
	s.invalidatePrograms(ctx)
	return nil
}

func (s *Service) RemoveProgram(ctx context.Context, id string) error {
	if err := s.programs.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, queue.TopicRemoveProgram, queue.RemoveProgramPayload{ID: id})
	s.invalidatePrograms(ctx)
	return nil
}

func (s *Service) CreateEpisode(ctx context.Context, e *domain.Episode) error {
	if _, err := s.programs.GetByID(ctx, e.ProgramID); err != nil {
		return fmt.Errorf("program %s: %w", e.ProgramID, err)
	}

	existing, err := s.episodes.GetByProgramAndNumber(ctx, e.ProgramID, e.EpisodeNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check episode number: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("episode %d of program %s: %w", e.EpisodeNumber, e.ProgramID, domain.ErrConflict)
	}

	if e.Slug == "" {
		e.Slug = slug.Make(e.Title)
	}

	if err := s.episodes.Create(ctx, e); err != nil {
		return fmt.Errorf("create episode: %w", err)
	}

	s.publish(ctx, queue.TopicIndexEpisode, e)
	s.invalidateEpisodes(ctx)
	return nil
}

func (s *Service) GetEpisode(ctx context.Context, id int64) (*domain.Episode, error) {
	return s.episodes.GetByID(ctx, id)
}

func (s *Service) UpdateEpisode(ctx context.Context, e *domain.Episode) error {
	if _, err := s.episodes.GetByID(ctx, e.ID); err != nil {
		return err
	}

	occupant, err := s.episodes.GetByProgramAndNumber(ctx, e.ProgramID, e.EpisodeNumber)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check episode number: %w", err)
	}
	if occupant != nil && occupant.ID != e.ID {
		return fmt.Errorf("episode %d of program %s: %w", e.EpisodeNumber, e.ProgramID, domain.ErrConflict)
	}

	if err := s.episodes.Update(ctx, e); err != nil {
		return fmt.Errorf("update episode: %w", err)
	}

	s.publish(ctx, queue.TopicIndexEpisode, e)
	s.invalidateEpisodes(ctx)
	return nil
}

func (s *Service) RemoveEpisode(ctx context.Context, id int64) error {
	if err := s.episodes.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, queue.TopicRemoveEpisode, queue.RemoveEpisodePayload{ID: id})
	s.invalidateEpisodes(ctx)
	return nil
}

// ResyncPrograms rebuilds the programs index from the relational store,
// bypassing the queue. It is the manual recovery path when the two stores
// have diverged.
func (s *Service) ResyncPrograms(ctx context.Context) (int, error) {
	programs, err := s.programs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list programs: %w", err)
	}

	if err := s.indexer.BulkIndexPrograms(ctx, programs); err != nil {
		return 0, fmt.Errorf("bulk index programs: %w", err)
	}

	s.invalidatePrograms(ctx)
	s.logger.Info("resynced programs index", "count", len(programs))
	return len(programs), nil
}

func (s *Service) ResyncEpisodes(ctx context.Context) (int, error) {
	episodes, err := s.episodes.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list episodes: %w", err)
	}

	if err := s.indexer.BulkIndexEpisodes(ctx, episodes); err != nil {
		return 0, fmt.Errorf("bulk index episodes: %w", err)
	}

	s.invalidateEpisodes(ctx)
	s.logger.Info("resynced episodes index", "count", len(episodes))
	return len(episodes), nil
}

// publish failures leave the index stale until retry or resync; the
// relational mutation has already happened and stands.
func (s *Service) publish(ctx context.Context, topic string, payload any) {
	if err := s.queue.Publish(ctx, topic, payload); err != nil {
		s.logger.Error("enqueue index job failed", "topic", topic, "error", err)
	}
}

func (s *Service) invalidatePrograms(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, discovery.CacheKeyPrograms+":*")
}

func (s *Service) invalidateEpisodes(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, discovery.CacheKeyEpisodes+":*")
}
