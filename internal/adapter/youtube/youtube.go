// Package youtube adapts YouTube channels and playlists to unified content
// items via the YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	ytapi "google.golang.org/api/youtube/v3"

	"podhub/internal/domain"
)

const (
	sourceName = "YouTube"

	// pageSize bounds both playlist paging and video-detail batches.
	pageSize = 50
)

// Adapter pages through a playlist's membership and batches video-detail
// lookups. The locator is either a playlist URL/id or a channel URL/id whose
// default "uploads" playlist is resolved first.
type Adapter struct {
	svc    *ytapi.Service
	logger *slog.Logger
}

func New(svc *ytapi.Service, logger *slog.Logger) *Adapter {
	return &Adapter{
		svc:    svc,
		logger: logger.With("adapter", "youtube"),
	}
}

func (a *Adapter) Fetch(ctx context.Context, locator string) ([]domain.UnifiedContentItem, error) {
	playlistID, err := a.resolvePlaylist(ctx, locator)
	if err != nil {
		return nil, err
	}
	if playlistID == "" {
		// No playlist to read from is a "nothing to import" outcome.
		a.logger.Info("no playlist resolved from locator", "locator", locator)
		return nil, nil
	}

	videoIDs, err := a.listVideoIDs(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	items, err := a.fetchDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("fetched playlist", "playlist", playlistID, "items", len(items))

	return items, nil
}

// resolvePlaylist turns the locator into a playlist id. Channel locators need
// an extra lookup for the channel's uploads playlist.
func (a *Adapter) resolvePlaylist(ctx context.Context, locator string) (string, error) {
	playlistID, channelID := parseLocator(locator)
	if playlistID != "" {
		return playlistID, nil
	}
	if channelID == "" {
		return "", nil
	}

	resp, err := a.svc.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", &domain.AdapterError{SourceType: domain.SourceTypeYouTube, Err: fmt.Errorf("resolve channel %s: %w", channelID, err)}
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil {
		return "", nil
	}

	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

func (a *Adapter) listVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		call := a.svc.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, &domain.AdapterError{SourceType: domain.SourceTypeYouTube, Err: fmt.Errorf("list playlist %s: %w", playlistID, err)}
		}

		for _, item := range resp.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}

// fetchDetails batches video lookups and preserves playlist order in the
// returned items.
func (a *Adapter) fetchDetails(ctx context.Context, videoIDs []string) ([]domain.UnifiedContentItem, error) {
	byID := make(map[string]*ytapi.Video, len(videoIDs))

	for start := 0; start < len(videoIDs); start += pageSize {
		end := start + pageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		resp, err := a.svc.Videos.List([]string{"snippet", "contentDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &domain.AdapterError{SourceType: domain.SourceTypeYouTube, Err: fmt.Errorf("video details: %w", err)}
		}

		for _, v := range resp.Items {
			byID[v.Id] = v
		}
	}

	items := make([]domain.UnifiedContentItem, 0, len(videoIDs))
	for _, id := range videoIDs {
		v, ok := byID[id]
		if !ok || v.Snippet == nil {
			continue
		}

		item := domain.UnifiedContentItem{
			Title:    v.Snippet.Title,
			MediaURL: "https://youtube.com/watch?v=" + v.Id,
			Source:   sourceName,

			Description: v.Snippet.Description,
			ExternalID:  v.Id,
		}
		if v.ContentDetails != nil {
			item.DurationSeconds = parseISODuration(v.ContentDetails.Duration)
		}
		if published, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			item.PublishedAt = &published
		}

		items = append(items, item)
	}

	return items, nil
}

// parseLocator classifies a locator as a playlist or a channel. Full URLs,
// bare playlist ids (PL.../UU...) and bare channel ids (UC...) are accepted;
// anything else resolves to neither.
func parseLocator(locator string) (playlistID, channelID string) {
	if u, err := url.Parse(locator); err == nil && u.Host != "" {
		if list := u.Query().Get("list"); list != "" {
			return list, ""
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, part := range parts {
			if part == "channel" && i+1 < len(parts) {
				return "", parts[i+1]
			}
		}
		return "", ""
	}

	switch {
	case strings.HasPrefix(locator, "PL"), strings.HasPrefix(locator, "UU"):
		return locator, ""
	case strings.HasPrefix(locator, "UC"):
		return "", locator
	}

	return "", ""
}
