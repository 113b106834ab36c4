package discovery

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"podhub/internal/search"
)

// SearchStore is the read side of the search index.
type SearchStore interface {
	SearchPrograms(ctx context.Context, text string, filters search.ProgramFilters, page, limit int) ([]search.ProgramDocument, error)
	SearchEpisodes(ctx context.Context, text string, filters search.EpisodeFilters, page, limit int) ([]search.EpisodeDocument, error)
}

// Cache is the read/write subset of cache.Cache this service needs;
// declared here so the service can be tested against a mock.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
