// Package discovery answers search queries through a cache-aside layer with
// request coalescing in front of the search store.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"podhub/internal/search"
)

const (
	defaultLimit = 12

	// CacheKeyPrograms and CacheKeyEpisodes prefix every cache entry written
	// by this service; invalidation patterns are derived from them.
	CacheKeyPrograms = "search:programs"
	CacheKeyEpisodes = "search:episodes"
)

type ProgramQuery struct {
	Text    string
	Filters search.ProgramFilters
	Page    int
	Limit   int
}

type EpisodeQuery struct {
	Text    string
	Filters search.EpisodeFilters
	Page    int
	Limit   int
}

// Service serves discovery reads. Concurrent identical queries coalesce into
// a single search-store call; all callers share its outcome. Cache failures
// degrade to direct search-store access and never fail the request.
type Service struct {
	store  SearchStore
	cache  Cache
	ttl    time.Duration
	flight singleflight.Group
	logger *slog.Logger
}

func NewService(store SearchStore, c Cache, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  c,
		ttl:    ttl,
		logger: logger.With("component", "discovery"),
	}
}

func (s *Service) SearchPrograms(ctx context.Context, q ProgramQuery) ([]search.ProgramDocument, error) {
	q.normalize()
	key := q.cacheKey()

	v, err, _ := s.flight.Do(key, func() (any, error) {
		var cached []search.ProgramDocument
		if s.fromCache(ctx, key, &cached) {
			return cached, nil
		}

		docs, err := s.store.SearchPrograms(ctx, q.Text, q.Filters, q.Page, q.Limit)
		if err != nil {
			return nil, err
		}

		s.toCache(ctx, key, docs)
		return docs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]search.ProgramDocument), nil
}

func (s *Service) SearchEpisodes(ctx context.Context, q EpisodeQuery) ([]search.EpisodeDocument, error) {
	q.normalize()
	key := q.cacheKey()

	v, err, _ := s.flight.Do(key, func() (any, error) {
		var cached []search.EpisodeDocument
		if s.fromCache(ctx, key, &cached) {
			return cached, nil
		}

		docs, err := s.store.SearchEpisodes(ctx, q.Text, q.Filters, q.Page, q.Limit)
		if err != nil {
			return nil, err
		}

		s.toCache(ctx, key, docs)
		return docs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]search.EpisodeDocument), nil
}

// fromCache reports whether dest was populated. Read errors count as misses.
func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed, falling through", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn("cache entry corrupt, falling through", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (q *ProgramQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
}

// cacheKey serializes the full argument tuple in a fixed field order, so
// identical queries always map to the same key. String fields are quoted;
// a delimiter inside a value must not collide with the field boundary.
func (q ProgramQuery) cacheKey() string {
	return fmt.Sprintf("%s:%q:%q:%q:%q:%q:%d:%d",
		CacheKeyPrograms,
		q.Text,
		q.Filters.Category, q.Filters.Language, q.Filters.Source, q.Filters.Description,
		q.Page, q.Limit)
}

func (q *EpisodeQuery) normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
}

func (q EpisodeQuery) cacheKey() string {
	dateFrom := ""
	if q.Filters.PublishDateFrom != nil {
		dateFrom = q.Filters.PublishDateFrom.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s:%q:%q:%q:%d:%q:%d:%d",
		CacheKeyEpisodes,
		q.Text,
		q.Filters.Title, q.Filters.Description, q.Filters.EpisodeNumber, dateFrom,
		q.Page, q.Limit)
}
