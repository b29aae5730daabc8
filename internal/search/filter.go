package search

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/prepstack/prepsearch/internal/models"
)

// applyFilters applies the non-text filters to the corpus and drops malformed
// records (missing question text). Exclusions are logged but never fatal.
func applyFilters(corpus []*models.QuestionRecord, query *models.SearchQuery, logger *zap.Logger) []*models.QuestionRecord {
	filtered := make([]*models.QuestionRecord, 0, len(corpus))
	for _, q := range corpus {
		if q == nil || q.QuestionText == "" {
			id := ""
			if q != nil {
				id = q.ID
			}
			logger.Debug("excluding malformed question record", zap.String("id", id))
			continue
		}
		if query.Topic != "" && !strings.EqualFold(q.Topic, query.Topic) {
			continue
		}
		if query.Difficulty != "" && q.Difficulty != query.Difficulty {
			continue
		}
		if query.Type != "" && !strings.EqualFold(q.Type, query.Type) {
			continue
		}
		if len(query.Tags) > 0 && !hasAllTags(q.Tags, query.Tags) {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}

// hasAllTags reports whether every wanted tag is present, case-insensitively.
func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// collectFacets gathers the distinct field values observed in the filtered
// corpus, sorted for stable output.
func collectFacets(corpus []*models.QuestionRecord) *models.FacetValues {
	providers := make(map[string]bool)
	exams := make(map[string]bool)
	topics := make(map[string]bool)
	difficulties := make(map[string]bool)
	types := make(map[string]bool)
	tags := make(map[string]bool)

	for _, q := range corpus {
		if q.Provider != "" {
			providers[q.Provider] = true
		}
		if q.Exam != "" {
			exams[q.Exam] = true
		}
		if q.Topic != "" {
			topics[q.Topic] = true
		}
		if q.Difficulty != "" {
			difficulties[string(q.Difficulty)] = true
		}
		if q.Type != "" {
			types[q.Type] = true
		}
		for _, tag := range q.Tags {
			if tag != "" {
				tags[tag] = true
			}
		}
	}

	return &models.FacetValues{
		Providers:    sortedKeys(providers),
		Exams:        sortedKeys(exams),
		Topics:       sortedKeys(topics),
		Difficulties: sortedKeys(difficulties),
		Types:        sortedKeys(types),
		Tags:         sortedKeys(tags),
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
