package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"podhub/internal/domain"
)

type ImportSourceStore struct {
	db *sqlx.DB
}

func NewImportSourceStore(db *sqlx.DB) *ImportSourceStore {
	return &ImportSourceStore{db: db}
}

func (s *ImportSourceStore) Create(ctx context.Context, src *domain.ImportSource) error {
	if src.ID == "" {
		src.ID = uuid.NewString()
	}
	src.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO import_sources (id, source_type, locator, last_imported_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		src.ID, src.SourceType, src.Locator, src.LastImportedAt, src.CreatedAt)
	return err
}

func (s *ImportSourceStore) GetByID(ctx context.Context, id string) (*domain.ImportSource, error) {
	var src domain.ImportSource
	query := `
		SELECT id, source_type, locator, last_imported_at, created_at
		FROM import_sources
		WHERE id = $1`

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &src, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *ImportSourceStore) List(ctx context.Context) ([]domain.ImportSource, error) {
	var sources []domain.ImportSource
	query := `
		SELECT id, source_type, locator, last_imported_at, created_at
		FROM import_sources
		ORDER BY created_at`

	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &sources, query)
	return sources, err
}

// SetLastImportedAt only moves the timestamp forward; a stale concurrent
// writer cannot rewind it.
func (s *ImportSourceStore) SetLastImportedAt(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE import_sources
		SET last_imported_at = $2
		WHERE id = $1 AND (last_imported_at IS NULL OR last_imported_at < $2)`

	_, err := executor(ctx, s.db).ExecContext(ctx, query, id, at)
	return err
}

func (s *ImportSourceStore) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM import_sources WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
