package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"podhub/internal/domain"
)

const episodeColumns = `
	id, program_id, title, slug, external_id, description,
	duration_seconds, publish_date, episode_number`

type EpisodeStore struct {
	db *sqlx.DB
}

func NewEpisodeStore(db *sqlx.DB) *EpisodeStore {
	return &EpisodeStore{db: db}
}

func (s *EpisodeStore) Create(ctx context.Context, e *domain.Episode) error {
	query := `
		INSERT INTO episodes (
			program_id, title, slug, external_id, description,
			duration_seconds, publish_date, episode_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	return executor(ctx, s.db).QueryRowxContext(ctx, query,
		e.ProgramID, e.Title, e.Slug, e.ExternalID, e.Description,
		e.DurationSeconds, e.PublishDate, e.EpisodeNumber,
	).Scan(&e.ID)
}

func (s *EpisodeStore) GetByID(ctx context.Context, id int64) (*domain.Episode, error) {
	return s.getOne(ctx, "SELECT "+episodeColumns+" FROM episodes WHERE id = $1", id)
}

func (s *EpisodeStore) GetByProgramAndNumber(ctx context.Context, programID string, number int) (*domain.Episode, error) {
	return s.getOne(ctx,
		"SELECT "+episodeColumns+" FROM episodes WHERE program_id = $1 AND episode_number = $2",
		programID, number)
}

func (s *EpisodeStore) getOne(ctx context.Context, query string, args ...any) (*domain.Episode, error) {
	var e domain.Episode
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &e, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// MaxEpisodeNumber returns 0 for a program with no episodes.
func (s *EpisodeStore) MaxEpisodeNumber(ctx context.Context, programID string) (int, error) {
	var max int
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &max,
		"SELECT COALESCE(MAX(episode_number), 0) FROM episodes WHERE program_id = $1",
		programID)
	return max, err
}

func (s *EpisodeStore) ExistsByExternalID(ctx context.Context, programID, externalID string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM episodes WHERE program_id = $1 AND external_id = $2)",
		programID, externalID)
	return exists, err
}

func (s *EpisodeStore) ExistsBySlug(ctx context.Context, programID, slug string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM episodes WHERE program_id = $1 AND slug = $2)",
		programID, slug)
	return exists, err
}

func (s *EpisodeStore) ListByProgram(ctx context.Context, programID string) ([]domain.Episode, error) {
	var episodes []domain.Episode
	query := "SELECT " + episodeColumns + " FROM episodes WHERE program_id = $1 ORDER BY episode_number"
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &episodes, query, programID)
	return episodes, err
}

func (s *EpisodeStore) List(ctx context.Context) ([]domain.Episode, error) {
	var episodes []domain.Episode
	query := "SELECT " + episodeColumns + " FROM episodes ORDER BY program_id, episode_number"
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &episodes, query)
	return episodes, err
}

func (s *EpisodeStore) Update(ctx context.Context, e *domain.Episode) error {
	query := `
		UPDATE episodes
		SET program_id = $2, title = $3, slug = $4, description = $5,
		    duration_seconds = $6, publish_date = $7, episode_number = $8
		WHERE id = $1`

	res, err := executor(ctx, s.db).ExecContext(ctx, query,
		e.ID, e.ProgramID, e.Title, e.Slug, e.Description,
		e.DurationSeconds, e.PublishDate, e.EpisodeNumber)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *EpisodeStore) Delete(ctx context.Context, id int64) error {
	res, err := executor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM episodes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
