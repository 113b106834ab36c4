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

const programColumns = `
	id, title, description, language, category, publish_date,
	source_type, import_source_id, created_at, updated_at`

type ProgramStore struct {
	db *sqlx.DB
}

func NewProgramStore(db *sqlx.DB) *ProgramStore {
	return &ProgramStore{db: db}
}

func (s *ProgramStore) Create(ctx context.Context, p *domain.Program) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO programs (` + programColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Language, p.Category, p.PublishDate,
		p.SourceType, p.ImportSourceID, p.CreatedAt, p.UpdatedAt)
	return err
}

func (s *ProgramStore) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	return s.getOne(ctx, "SELECT "+programColumns+" FROM programs WHERE id = $1", id)
}

// GetByImportSource finds the program linked to an import source. The row is
// locked for the remainder of the ambient transaction so two syncs of the
// same source cannot interleave episode numbering.
func (s *ProgramStore) GetByImportSource(ctx context.Context, importSourceID string) (*domain.Program, error) {
	query := "SELECT " + programColumns + " FROM programs WHERE import_source_id = $1"
	if txFromContext(ctx) != nil {
		query += " FOR UPDATE"
	}
	return s.getOne(ctx, query, importSourceID)
}

func (s *ProgramStore) GetByTitleAndSource(ctx context.Context, title string, sourceType domain.SourceType) (*domain.Program, error) {
	return s.getOne(ctx,
		"SELECT "+programColumns+" FROM programs WHERE title = $1 AND source_type = $2",
		title, sourceType)
}

func (s *ProgramStore) getOne(ctx context.Context, query string, args ...any) (*domain.Program, error) {
	var p domain.Program
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProgramStore) List(ctx context.Context) ([]domain.Program, error) {
	var programs []domain.Program
	query := "SELECT " + programColumns + " FROM programs ORDER BY created_at"
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &programs, query)
	return programs, err
}

func (s *ProgramStore) Update(ctx context.Context, p *domain.Program) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE programs
		SET title = $2, description = $3, language = $4, category = $5,
		    publish_date = $6, source_type = $7, updated_at = $8
		WHERE id = $1`

	res, err := executor(ctx, s.db).ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Language, p.Category,
		p.PublishDate, p.SourceType, p.UpdatedAt)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *ProgramStore) Delete(ctx context.Context, id string) error {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM programs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
