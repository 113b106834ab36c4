package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
//go:generate mockgen -destination=mocks/adapter.go -package=mocks podhub/internal/adapter Adapter

import (
	"context"
	"time"

	"podhub/internal/adapter"
	"podhub/internal/domain"
)

type ImportSourceStore interface {
	GetByID(ctx context.Context, id string) (*domain.ImportSource, error)
	SetLastImportedAt(ctx context.Context, id string, at time.Time) error
}

type ProgramStore interface {
	GetByImportSource(ctx context.Context, importSourceID string) (*domain.Program, error)
	Create(ctx context.Context, p *domain.Program) error
}

type EpisodeStore interface {
	MaxEpisodeNumber(ctx context.Context, programID string) (int, error)
	ExistsByExternalID(ctx context.Context, programID, externalID string) (bool, error)
	ExistsBySlug(ctx context.Context, programID, slug string) (bool, error)
	Create(ctx context.Context, e *domain.Episode) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type AdapterRegistry interface {
	Resolve(t domain.SourceType) (adapter.Adapter, bool)
}
