package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"

	"podhub/internal/domain"
)

// Store wraps the Elasticsearch client. All writes are full-document upserts
// keyed by the relational id, so replays converge to the same state.
type Store struct {
	es     *elasticsearch.Client
	logger *slog.Logger
}

func NewStore(es *elasticsearch.Client, logger *slog.Logger) *Store {
	return &Store{
		es:     es,
		logger: logger.With("component", "search"),
	}
}

func (s *Store) IndexProgram(ctx context.Context, p *domain.Program) error {
	return s.indexDocument(ctx, IndexPrograms, p.ID, newProgramDocument(p))
}

func (s *Store) IndexEpisode(ctx context.Context, e *domain.Episode) error {
	return s.indexDocument(ctx, IndexEpisodes, strconv.FormatInt(e.ID, 10), newEpisodeDocument(e))
}

func (s *Store) RemoveProgram(ctx context.Context, id string) error {
	return s.deleteDocument(ctx, IndexPrograms, id)
}

func (s *Store) RemoveEpisode(ctx context.Context, id int64) error {
	return s.deleteDocument(ctx, IndexEpisodes, strconv.FormatInt(id, 10))
}

func (s *Store) indexDocument(ctx context.Context, index, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	res, err := s.es.Index(index, bytes.NewReader(body),
		s.es.Index.WithDocumentID(id),
		s.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index %s/%s: %s", index, id, res.String())
	}
	return nil
}

// deleteDocument treats a missing document as already deleted.
func (s *Store) deleteDocument(ctx context.Context, index, id string) error {
	res, err := s.es.Delete(index, id, s.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("delete %s/%s: %s", index, id, res.String())
	}
	return nil
}

func (s *Store) BulkIndexPrograms(ctx context.Context, programs []domain.Program) error {
	if len(programs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for i := range programs {
		doc := newProgramDocument(&programs[i])
		writeBulkOp(&buf, IndexPrograms, doc.ID, doc)
	}
	return s.bulk(ctx, &buf)
}

func (s *Store) BulkIndexEpisodes(ctx context.Context, episodes []domain.Episode) error {
	if len(episodes) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for i := range episodes {
		doc := newEpisodeDocument(&episodes[i])
		writeBulkOp(&buf, IndexEpisodes, doc.ID, doc)
	}
	return s.bulk(ctx, &buf)
}

func writeBulkOp(buf *bytes.Buffer, index, id string, doc any) {
	action, _ := json.Marshal(map[string]any{
		"index": map[string]any{"_index": index, "_id": id},
	})
	body, _ := json.Marshal(doc)

	buf.Write(action)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')
}

func (s *Store) bulk(ctx context.Context, buf *bytes.Buffer) error {
	res, err := s.es.Bulk(bytes.NewReader(buf.Bytes()), s.es.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk index: %s", res.String())
	}
	return nil
}

func (s *Store) SearchPrograms(ctx context.Context, text string, filters ProgramFilters, page, limit int) ([]ProgramDocument, error) {
	raw, err := s.search(ctx, IndexPrograms, buildProgramQuery(text, filters), page, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]ProgramDocument, 0, len(raw))
	for _, source := range raw {
		var doc ProgramDocument
		if err := json.Unmarshal(source, &doc); err != nil {
			return nil, fmt.Errorf("decode program hit: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Store) SearchEpisodes(ctx context.Context, text string, filters EpisodeFilters, page, limit int) ([]EpisodeDocument, error) {
	raw, err := s.search(ctx, IndexEpisodes, buildEpisodeQuery(text, filters), page, limit)
	if err != nil {
		return nil, err
	}

	docs := make([]EpisodeDocument, 0, len(raw))
	for _, source := range raw {
		var doc EpisodeDocument
		if err := json.Unmarshal(source, &doc); err != nil {
			return nil, fmt.Errorf("decode episode hit: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Store) search(ctx context.Context, index string, query map[string]any, page, limit int) ([]json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{"query": query})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(index),
		s.es.Search.WithBody(bytes.NewReader(body)),
		s.es.Search.WithFrom((page-1)*limit),
		s.es.Search.WithSize(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search %s: %s", index, res.String())
	}

	var envelope struct {
		Hits struct {
			Hits []struct {
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	sources := make([]json.RawMessage, 0, len(envelope.Hits.Hits))
	for _, hit := range envelope.Hits.Hits {
		sources = append(sources, hit.Source)
	}
	return sources, nil
}
