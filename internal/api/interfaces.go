package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"podhub/internal/discovery"
	"podhub/internal/domain"
	"podhub/internal/search"
)

// DiscoveryService is the read side exposed under /api/search.
type DiscoveryService interface {
	SearchPrograms(ctx context.Context, q discovery.ProgramQuery) ([]search.ProgramDocument, error)
	SearchEpisodes(ctx context.Context, q discovery.EpisodeQuery) ([]search.EpisodeDocument, error)
}

// CatalogService is the direct mutation path exposed under /api/programs and
// /api/episodes.
type CatalogService interface {
	CreateProgram(ctx context.Context, p *domain.Program) error
	GetProgram(ctx context.Context, id string) (*domain.Program, error)
	UpdateProgram(ctx context.Context, p *domain.Program) error
	RemoveProgram(ctx context.Context, id string) error
	CreateEpisode(ctx context.Context, e *domain.Episode) error
	GetEpisode(ctx context.Context, id int64) (*domain.Episode, error)
	UpdateEpisode(ctx context.Context, e *domain.Episode) error
	RemoveEpisode(ctx context.Context, id int64) error
	ResyncPrograms(ctx context.Context) (int, error)
	ResyncEpisodes(ctx context.Context) (int, error)
}

// SourceStore manages import source registrations.
type SourceStore interface {
	Create(ctx context.Context, src *domain.ImportSource) error
	GetByID(ctx context.Context, id string) (*domain.ImportSource, error)
	List(ctx context.Context) ([]domain.ImportSource, error)
	Delete(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
