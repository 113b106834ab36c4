// Package rss adapts RSS/Atom feeds to unified content items.
package rss

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/mmcdole/gofeed"

	"podhub/internal/domain"
)

const sourceName = "RSS Feed"

// Adapter fetches a feed with gofeed and maps each entry to one content item.
type Adapter struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

func New(logger *slog.Logger) *Adapter {
	return &Adapter{
		parser: gofeed.NewParser(),
		logger: logger.With("adapter", "rss"),
	}
}

// Fetch parses the feed at locator. The enclosure URL is the stable external
// id; entries without any usable identifier are still returned and left for
// the orchestrator to skip.
func (a *Adapter) Fetch(ctx context.Context, locator string) ([]domain.UnifiedContentItem, error) {
	feed, err := a.parser.ParseURLWithContext(locator, ctx)
	if err != nil {
		return nil, &domain.AdapterError{SourceType: domain.SourceTypeRSS, Err: err}
	}

	items := make([]domain.UnifiedContentItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, a.convert(entry))
	}

	a.logger.Debug("fetched feed", "url", locator, "items", len(items))

	return items, nil
}

func (a *Adapter) convert(entry *gofeed.Item) domain.UnifiedContentItem {
	item := domain.UnifiedContentItem{
		Title:       entry.Title,
		Description: entry.Description,
		Source:      sourceName,
		PublishedAt: entry.PublishedParsed,
	}

	if len(entry.Enclosures) > 0 {
		enc := entry.Enclosures[0]
		item.MediaURL = enc.URL
		item.ExternalID = enc.URL
		if secs, err := strconv.Atoi(enc.Length); err == nil && secs > 0 {
			item.DurationSeconds = secs
		}
	}

	if item.ExternalID == "" {
		if entry.GUID != "" {
			item.ExternalID = entry.GUID
		} else {
			item.ExternalID = entry.Link
		}
	}
	if item.MediaURL == "" {
		item.MediaURL = entry.Link
	}

	return item
}
