// Package search owns the read-optimized projection of programs and episodes
// in Elasticsearch. It is the only writer of the search indices.
package search

import (
	"strconv"
	"time"

	"podhub/internal/domain"
)

const (
	IndexPrograms = "programs"
	IndexEpisodes = "episodes"
)

// ProgramDocument is the searchable subset of a program, keyed by the
// relational id.
type ProgramDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EpisodeDocument is the searchable subset of an episode. The relational id
// is an integer but Elasticsearch document ids are strings.
type EpisodeDocument struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ProgramID     string    `json:"programId"`
	Duration      int       `json:"duration"`
	PublishDate   time.Time `json:"publishDate"`
	EpisodeNumber int       `json:"episodeNumber"`
}

func newProgramDocument(p *domain.Program) ProgramDocument {
	return ProgramDocument{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Language:    p.Language,
		Source:      string(p.SourceType),
		CreatedAt:   p.CreatedAt,
	}
}

func newEpisodeDocument(e *domain.Episode) EpisodeDocument {
	return EpisodeDocument{
		ID:            strconv.FormatInt(e.ID, 10),
		Title:         e.Title,
		Description:   e.Description,
		ProgramID:     e.ProgramID,
		Duration:      e.DurationSeconds,
		PublishDate:   e.PublishDate,
		EpisodeNumber: e.EpisodeNumber,
	}
}
