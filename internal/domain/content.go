package domain

import "time"

// SourceType identifies the kind of external source an ImportSource points at.
type SourceType string

const (
	SourceTypeRSS     SourceType = "rss"
	SourceTypeYouTube SourceType = "youtube"
)

// ImportSource is an external feed or channel registered for syncing.
type ImportSource struct {
	ID             string     `db:"id" json:"id"`
	SourceType     SourceType `db:"source_type" json:"sourceType"`
	Locator        string     `db:"locator" json:"locator"`
	LastImportedAt *time.Time `db:"last_imported_at" json:"lastImportedAt,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// Program groups the episodes imported from one source. At most one program
// exists per import source; it is created lazily on the first successful sync.
type Program struct {
	ID             string     `db:"id" json:"id"`
	Title          string     `db:"title" json:"title"`
	Description    string     `db:"description" json:"description"`
	Language       string     `db:"language" json:"language"`
	Category       string     `db:"category" json:"category"`
	PublishDate    time.Time  `db:"publish_date" json:"publishDate"`
	SourceType     SourceType `db:"source_type" json:"sourceType"`
	ImportSourceID *string    `db:"import_source_id" json:"importSourceId,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// Episode is a single piece of content within a program.
//
// (ProgramID, EpisodeNumber) and (ProgramID, Slug) are unique; so is
// (ProgramID, ExternalID) when ExternalID is set, which makes re-imports
// idempotent.
type Episode struct {
	ID              int64     `db:"id" json:"id"`
	ProgramID       string    `db:"program_id" json:"programId"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	ExternalID      *string   `db:"external_id" json:"externalId,omitempty"`
	Description     string    `db:"description" json:"description"`
	DurationSeconds int       `db:"duration_seconds" json:"durationSeconds"`
	PublishDate     time.Time `db:"publish_date" json:"publishDate"`
	EpisodeNumber   int       `db:"episode_number" json:"episodeNumber"`
}

// UnifiedContentItem is the normalized adapter output. It is never persisted
// directly; the orchestrator reconciles it into episodes.
type UnifiedContentItem struct {
	Title           string
	Description     string
	MediaURL        string
	DurationSeconds int
	Source          string
	PublishedAt     *time.Time
	ExternalID      string
}
