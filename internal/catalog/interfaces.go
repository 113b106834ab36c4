package catalog

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"podhub/internal/domain"
)

type ProgramStore interface {
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	GetByTitleAndSource(ctx context.Context, title string, sourceType domain.SourceType) (*domain.Program, error)
	List(ctx context.Context) ([]domain.Program, error)
	Create(ctx context.Context, p *domain.Program) error
	Update(ctx context.Context, p *domain.Program) error
	Delete(ctx context.Context, id string) error
}

type EpisodeStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Episode, error)
	GetByProgramAndNumber(ctx context.Context, programID string, number int) (*domain.Episode, error)
	List(ctx context.Context) ([]domain.Episode, error)
	Create(ctx context.Context, e *domain.Episode) error
	Update(ctx context.Context, e *domain.Episode) error
	Delete(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// BulkIndexer is the direct (queue-bypassing) write path into the search
// store, used only for maintenance resyncs.
type BulkIndexer interface {
	BulkIndexPrograms(ctx context.Context, programs []domain.Program) error
	BulkIndexEpisodes(ctx context.Context, episodes []domain.Episode) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}
