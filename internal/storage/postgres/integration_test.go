//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"podhub/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_content_tables.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM episodes")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM programs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM import_sources")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) createSource() *domain.ImportSource {
	src := &domain.ImportSource{
		SourceType: domain.SourceTypeRSS,
		Locator:    "https://example.com/feed.xml",
	}
	s.Require().NoError(NewImportSourceStore(s.db).Create(s.ctx, src))
	return src
}

func (s *PostgresIntegrationSuite) createProgram(src *domain.ImportSource) *domain.Program {
	p := &domain.Program{
		Title:       "Test Program",
		Language:    "ar",
		Category:    "General",
		PublishDate: time.Now().UTC(),
		SourceType:  domain.SourceTypeRSS,
	}
	if src != nil {
		p.ImportSourceID = &src.ID
	}
	s.Require().NoError(NewProgramStore(s.db).Create(s.ctx, p))
	return p
}

func (s *PostgresIntegrationSuite) TestImportSourceStore_CreateAndGet() {
	store := NewImportSourceStore(s.db)
	src := s.createSource()

	got, err := store.GetByID(s.ctx, src.ID)
	s.NoError(err)
	s.Equal(src.Locator, got.Locator)
	s.Equal(domain.SourceTypeRSS, got.SourceType)
	s.Nil(got.LastImportedAt)
}

func (s *PostgresIntegrationSuite) TestImportSourceStore_GetMissing() {
	store := NewImportSourceStore(s.db)

	_, err := store.GetByID(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestImportSourceStore_LastImportedAtNeverRewinds() {
	store := NewImportSourceStore(s.db)
	src := s.createSource()

	newer := time.Now().UTC().Truncate(time.Microsecond)
	older := newer.Add(-time.Hour)

	s.NoError(store.SetLastImportedAt(s.ctx, src.ID, newer))
	s.NoError(store.SetLastImportedAt(s.ctx, src.ID, older))

	got, err := store.GetByID(s.ctx, src.ID)
	s.NoError(err)
	s.Require().NotNil(got.LastImportedAt)
	s.WithinDuration(newer, *got.LastImportedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestProgramStore_GetByImportSource() {
	store := NewProgramStore(s.db)
	src := s.createSource()
	p := s.createProgram(src)

	got, err := store.GetByImportSource(s.ctx, src.ID)
	s.NoError(err)
	s.Equal(p.ID, got.ID)

	_, err = store.GetByImportSource(s.ctx, "00000000-0000-0000-0000-000000000000")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostgresIntegrationSuite) TestProgramStore_DuplicateImportSourceRejected() {
	src := s.createSource()
	s.createProgram(src)

	dup := &domain.Program{
		Title:          "Second Program",
		Language:       "ar",
		Category:       "General",
		PublishDate:    time.Now().UTC(),
		SourceType:     domain.SourceTypeRSS,
		ImportSourceID: &src.ID,
	}
	err := NewProgramStore(s.db).Create(s.ctx, dup)
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_CreateAssignsID() {
	store := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	externalID := "ext-1"
	e := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Pilot",
		Slug:          "pilot",
		ExternalID:    &externalID,
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 1,
	}
	s.NoError(store.Create(s.ctx, e))
	s.Greater(e.ID, int64(0))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_UniqueConstraints() {
	store := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	externalID := "ext-1"
	first := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Pilot",
		Slug:          "pilot",
		ExternalID:    &externalID,
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 1,
	}
	s.NoError(store.Create(s.ctx, first))

	sameNumber := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Other",
		Slug:          "other",
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 1,
	}
	s.Error(store.Create(s.ctx, sameNumber))

	sameSlug := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Other",
		Slug:          "pilot",
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 2,
	}
	s.Error(store.Create(s.ctx, sameSlug))

	sameExternal := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Other",
		Slug:          "other",
		ExternalID:    &externalID,
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 2,
	}
	s.Error(store.Create(s.ctx, sameExternal))
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_MaxEpisodeNumber() {
	store := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	n, err := store.MaxEpisodeNumber(s.ctx, p.ID)
	s.NoError(err)
	s.Equal(0, n)

	for i := 1; i <= 3; i++ {
		e := &domain.Episode{
			ProgramID:     p.ID,
			Title:         "Episode",
			Slug:          "episode-" + time.Now().Format("150405.000000000"),
			PublishDate:   time.Now().UTC(),
			EpisodeNumber: i,
		}
		s.Require().NoError(store.Create(s.ctx, e))
	}

	n, err = store.MaxEpisodeNumber(s.ctx, p.ID)
	s.NoError(err)
	s.Equal(3, n)
}

func (s *PostgresIntegrationSuite) TestEpisodeStore_ExistsChecks() {
	store := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	externalID := "ext-1"
	e := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Pilot",
		Slug:          "pilot",
		ExternalID:    &externalID,
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 1,
	}
	s.Require().NoError(store.Create(s.ctx, e))

	exists, err := store.ExistsByExternalID(s.ctx, p.ID, "ext-1")
	s.NoError(err)
	s.True(exists)

	exists, err = store.ExistsByExternalID(s.ctx, p.ID, "ext-2")
	s.NoError(err)
	s.False(exists)

	exists, err = store.ExistsBySlug(s.ctx, p.ID, "pilot")
	s.NoError(err)
	s.True(exists)

	exists, err = store.ExistsBySlug(s.ctx, p.ID, "pilot-1")
	s.NoError(err)
	s.False(exists)
}

func (s *PostgresIntegrationSuite) TestDeleteProgramCascadesToEpisodes() {
	programStore := NewProgramStore(s.db)
	episodeStore := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	e := &domain.Episode{
		ProgramID:     p.ID,
		Title:         "Pilot",
		Slug:          "pilot",
		PublishDate:   time.Now().UTC(),
		EpisodeNumber: 1,
	}
	s.Require().NoError(episodeStore.Create(s.ctx, e))

	s.NoError(programStore.Delete(s.ctx, p.ID))

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM episodes WHERE program_id = $1", p.ID)
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	programStore := NewProgramStore(s.db)
	episodeStore := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		e := &domain.Episode{
			ProgramID:     p.ID,
			Title:         "In Transaction",
			Slug:          "in-transaction",
			PublishDate:   time.Now().UTC(),
			EpisodeNumber: 1,
		}
		if err := episodeStore.Create(ctx, e); err != nil {
			return err
		}
		_, err := programStore.GetByImportSource(ctx, "00000000-0000-0000-0000-000000000000")
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return nil
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM episodes WHERE program_id = $1", p.ID)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	episodeStore := NewEpisodeStore(s.db)
	p := s.createProgram(nil)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		e := &domain.Episode{
			ProgramID:     p.ID,
			Title:         "Should Roll Back",
			Slug:          "should-roll-back",
			PublishDate:   time.Now().UTC(),
			EpisodeNumber: 1,
		}
		if err := episodeStore.Create(ctx, e); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM episodes WHERE program_id = $1", p.ID)
	s.NoError(err)
	s.Equal(0, count)
}
