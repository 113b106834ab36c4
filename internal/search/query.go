package search

import "time"

// ProgramFilters are exact-match constraints on the programs index. Empty
// fields are ignored.
type ProgramFilters struct {
	Category    string
	Language    string
	Source      string
	Description string
}

// EpisodeFilters constrain the episodes index. Title and Description use a
// fuzzy all-terms match; EpisodeNumber is exact; PublishDateFrom is a lower
// bound.
type EpisodeFilters struct {
	Title           string
	Description     string
	EpisodeNumber   int
	PublishDateFrom *time.Time
}

func buildProgramQuery(text string, f ProgramFilters) map[string]any {
	var conditions []map[string]any

	if text != "" {
		conditions = append(conditions, map[string]any{
			"multi_match": map[string]any{
				"query":  text,
				"fields": []string{"title", "description", "category"},
			},
		})
	}

	for field, value := range map[string]string{
		"category":    f.Category,
		"language":    f.Language,
		"source":      f.Source,
		"description": f.Description,
	} {
		if value != "" {
			conditions = append(conditions, map[string]any{
				"match": map[string]any{field: value},
			})
		}
	}

	return boolQuery(conditions)
}

func buildEpisodeQuery(text string, f EpisodeFilters) map[string]any {
	var conditions []map[string]any

	if text != "" {
		conditions = append(conditions, map[string]any{
			"multi_match": map[string]any{
				"query":  text,
				"fields": []string{"title", "description"},
			},
		})
	}

	if f.Title != "" {
		conditions = append(conditions, fuzzyMatch("title", f.Title))
	}
	if f.Description != "" {
		conditions = append(conditions, fuzzyMatch("description", f.Description))
	}
	if f.EpisodeNumber > 0 {
		conditions = append(conditions, map[string]any{
			"term": map[string]any{"episodeNumber": f.EpisodeNumber},
		})
	}
	if f.PublishDateFrom != nil {
		conditions = append(conditions, map[string]any{
			"range": map[string]any{
				"publishDate": map[string]any{"gte": f.PublishDateFrom.Format(time.RFC3339)},
			},
		})
	}

	return boolQuery(conditions)
}

// fuzzyMatch requires every term to appear but tolerates typos.
func fuzzyMatch(field, value string) map[string]any {
	return map[string]any{
		"match": map[string]any{
			field: map[string]any{
				"query":     value,
				"operator":  "and",
				"fuzziness": "AUTO",
			},
		},
	}
}

func boolQuery(conditions []map[string]any) map[string]any {
	if len(conditions) == 0 {
		conditions = []map[string]any{{"match_all": map[string]any{}}}
	}
	return map[string]any{
		"bool": map[string]any{"must": conditions},
	}
}
