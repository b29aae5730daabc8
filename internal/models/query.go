package models

import "fmt"

// MaxQueryLength bounds the raw query string.
const MaxQueryLength = 500

// SortStrategy selects the result ordering.
type SortStrategy string

const (
	SortRelevance      SortStrategy = "relevance"
	SortDifficultyAsc  SortStrategy = "difficulty_asc"
	SortDifficultyDesc SortStrategy = "difficulty_desc"
	SortCreatedAsc     SortStrategy = "created_asc"
	SortCreatedDesc    SortStrategy = "created_desc"
)

// ValidationError marks a request rejected before any scoring occurred.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SearchQuery represents a search request with optional filters and pagination.
type SearchQuery struct {
	Query      string       `json:"query"`
	Provider   string       `json:"provider,omitempty"`
	Exam       string       `json:"exam,omitempty"`
	Topic      string       `json:"topic,omitempty"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Type       string       `json:"type,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	Sort       SortStrategy `json:"sort,omitempty"`
	Limit      int          `json:"limit,omitempty"`
	Offset     int          `json:"offset,omitempty"`

	IncludeExplanations bool `json:"include_explanations,omitempty"`
	IncludeMetadata     bool `json:"include_metadata,omitempty"`
	Highlight           bool `json:"highlight,omitempty"`
}

// Validate checks query bounds and fills defaults. Out-of-range values are
// rejected, never silently coerced, so the caller sees a validation error
// instead of quietly different results.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return &ValidationError{Field: "query", Reason: "cannot be empty"}
	}
	if len(q.Query) > MaxQueryLength {
		return &ValidationError{Field: "query", Reason: fmt.Sprintf("exceeds %d characters", MaxQueryLength)}
	}
	if q.Limit == 0 {
		q.Limit = 10
	}
	if q.Limit < 1 || q.Limit > 100 {
		return &ValidationError{Field: "limit", Reason: "must be between 1 and 100"}
	}
	if q.Offset < 0 {
		return &ValidationError{Field: "offset", Reason: "cannot be negative"}
	}
	if q.Sort == "" {
		q.Sort = SortRelevance
	}
	switch q.Sort {
	case SortRelevance, SortDifficultyAsc, SortDifficultyDesc, SortCreatedAsc, SortCreatedDesc:
	default:
		return &ValidationError{Field: "sort", Reason: fmt.Sprintf("unknown strategy %q", q.Sort)}
	}
	return nil
}
