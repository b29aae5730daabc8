// Package search provides the question search engine: corpus resolution,
// filtering, scoring, sorting, and pagination.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/prepstack/prepsearch/internal/cache"
	"github.com/prepstack/prepsearch/internal/models"
	"github.com/prepstack/prepsearch/internal/scoring"
	"github.com/prepstack/prepsearch/internal/store"
)

// Engine runs relevance search over the question corpus. Scoring is a
// synchronous, single-pass computation per request; only corpus resolution
// touches I/O, and only on a cache miss.
type Engine struct {
	store         store.QuestionStore
	tokenizer     *scoring.Tokenizer
	scorer        *scoring.RelevanceScorer
	corpusCache   *cache.TTLCache[[]*models.QuestionRecord]
	questionCache *cache.TTLCache[*models.QuestionRecord]
	logger        *zap.Logger
}

// NewEngine creates a search engine. A nil scoring config uses defaults; a
// non-positive cacheTTL uses cache.DefaultTTL.
func NewEngine(st store.QuestionStore, scoringCfg *scoring.Config, cacheTTL time.Duration, logger *zap.Logger) *Engine {
	if scoringCfg == nil {
		scoringCfg = scoring.DefaultConfig()
	}
	scoringCfg.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:         st,
		tokenizer:     scoring.NewTokenizer(scoringCfg),
		scorer:        scoring.NewRelevanceScorer(scoringCfg),
		corpusCache:   cache.New[[]*models.QuestionRecord](cacheTTL),
		questionCache: cache.New[*models.QuestionRecord](cacheTTL),
		logger:        logger,
	}
}

// Search validates the query, resolves the corpus slice, scores and sorts the
// matching questions, and returns one page of results. Validation failures
// are returned as errors; an unavailable corpus degrades to zero matches.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()

	if err := query.Validate(); err != nil {
		return nil, err
	}

	corpus := e.resolveCorpus(ctx, query.Provider, query.Exam)
	filtered := applyFilters(corpus, query, e.logger)
	facets := collectFacets(filtered)

	terms := e.tokenizer.Tokenize(query.Query)

	var results []*models.ScoredResult
	for _, q := range filtered {
		text := scoring.ExtractSearchableText(q)

		var score float64
		var highlights models.Highlights
		if query.Highlight {
			score, highlights = e.scorer.ScoreWithHighlights(text, terms)
		} else {
			score = e.scorer.Score(text, terms)
		}
		if score == 0 {
			continue
		}
		results = append(results, &models.ScoredResult{
			Question:   q,
			Score:      score,
			Highlights: highlights,
		})
	}

	SortResults(results, query.Sort)
	page, hasMore := Paginate(results, query.Offset, query.Limit)

	items := make([]*models.ScoredResult, 0, len(page))
	for _, r := range page {
		items = append(items, suppressFields(r, query))
	}

	return &models.SearchResponse{
		Items:        items,
		Total:        len(results),
		Query:        query.Query,
		SearchTimeMs: time.Since(startTime).Milliseconds(),
		Filters:      facets,
		Limit:        query.Limit,
		Offset:       query.Offset,
		HasMore:      hasMore,
	}, nil
}

// GetQuestion resolves a single question through the cache.
func (e *Engine) GetQuestion(ctx context.Context, id string) (*models.QuestionRecord, error) {
	key := "question:" + id
	if q, ok := e.questionCache.Get(key); ok {
		return q, nil
	}
	q, err := e.store.FetchQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.questionCache.Set(key, q)
	return q, nil
}

// ClearCache drops all cached corpus slices and questions.
func (e *Engine) ClearCache() {
	e.corpusCache.Clear()
	e.questionCache.Clear()
}

// resolveCorpus returns the corpus slice for provider/exam, from cache when
// possible. A failing or empty store degrades to an empty corpus so that a
// missing dataset produces "no results" rather than a failed request.
func (e *Engine) resolveCorpus(ctx context.Context, provider, exam string) []*models.QuestionRecord {
	key := fmt.Sprintf("corpus:%s:%s", provider, exam)
	if corpus, ok := e.corpusCache.Get(key); ok {
		return corpus
	}

	corpus, err := e.store.FetchCorpusSlice(ctx, provider, exam)
	if err != nil {
		e.logger.Warn("corpus unavailable, treating as empty",
			zap.String("provider", provider),
			zap.String("exam", exam),
			zap.Error(err),
		)
		return nil
	}
	e.corpusCache.Set(key, corpus)
	return corpus
}

// suppressFields builds a fresh result with unrequested fields cleared.
// The cached record is never mutated in place, so concurrent requests can
// share the same snapshot safely.
func suppressFields(r *models.ScoredResult, query *models.SearchQuery) *models.ScoredResult {
	q := *r.Question
	highlights := r.Highlights

	if !query.IncludeExplanations {
		q.Explanation = ""
		if _, ok := highlights[scoring.FieldExplanation]; ok {
			trimmed := make(models.Highlights, len(highlights))
			for field, matches := range highlights {
				if field != scoring.FieldExplanation {
					trimmed[field] = matches
				}
			}
			highlights = trimmed
			if len(highlights) == 0 {
				highlights = nil
			}
		}
	}
	if !query.IncludeMetadata {
		q.Metadata = nil
	}

	return &models.ScoredResult{
		Question:   &q,
		Score:      r.Score,
		Highlights: highlights,
	}
}
