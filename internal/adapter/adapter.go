// Package adapter defines the source adapter contract and the registry that
// maps a source type to its implementation.
package adapter

import (
	"context"

	"podhub/internal/domain"
)

// Adapter fetches and normalizes content items from one kind of external
// source. A locator that resolves to nothing yields an empty slice and a nil
// error; a remote failure yields a *domain.AdapterError.
type Adapter interface {
	Fetch(ctx context.Context, locator string) ([]domain.UnifiedContentItem, error)
}

// Registry maps source types to adapters. It is populated once at startup
// and read-only afterwards.
type Registry struct {
	adapters map[domain.SourceType]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.SourceType]Adapter)}
}

// Register binds an adapter to a source type, replacing any previous binding.
func (r *Registry) Register(t domain.SourceType, a Adapter) {
	r.adapters[t] = a
}

// Resolve returns the adapter for a source type, or false if none is
// registered.
func (r *Registry) Resolve(t domain.SourceType) (Adapter, bool) {
	a, ok := r.adapters[t]
	return a, ok
}
