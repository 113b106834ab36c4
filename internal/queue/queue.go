// Package queue defines the asynchronous job boundary between the write path
// and search indexing. Delivery is at-least-once, so every handler must be
// idempotent.
package queue

import "context"

// Topics. Index/update jobs carry full entity snapshots; sync and remove
// jobs carry only the id.
const (
	TopicSyncContent   = "sync-content"
	TopicIndexProgram  = "index-program"
	TopicUpdateProgram = "update-program"
	TopicRemoveProgram = "remove-program"
	TopicIndexEpisode  = "index-episode"
	TopicRemoveEpisode = "remove-episode"
)

// Handler processes one job. A non-nil error sends the job back for a
// bounded number of retries.
type Handler func(ctx context.Context, payload []byte) error

type Queue interface {
	Publish(ctx context.Context, topic string, payload any) error
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

type SyncContentPayload struct {
	ID string `json:"id"`
}

type RemoveProgramPayload struct {
	ID string `json:"id"`
}

type RemoveEpisodePayload struct {
	ID int64 `json:"id"`
}
