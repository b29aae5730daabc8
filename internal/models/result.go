package models

// Highlights maps a field name to the matched substrings found in it.
// Field names: question_text, options, explanation, tags.
type Highlights map[string][]string

// ScoredResult is a question with its normalized relevance score.
// Built fresh per query; never persisted.
type ScoredResult struct {
	Question   *QuestionRecord `json:"question"`
	Score      float64         `json:"score"`
	Highlights Highlights      `json:"highlights,omitempty"`
}

// FacetValues holds the distinct field values observed in the filtered corpus,
// for client-side facet rendering.
type FacetValues struct {
	Providers    []string `json:"providers,omitempty"`
	Exams        []string `json:"exams,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	Difficulties []string `json:"difficulties,omitempty"`
	Types        []string `json:"types,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Items        []*ScoredResult `json:"items"`
	Total        int             `json:"total"`
	Query        string          `json:"query"`
	SearchTimeMs int64           `json:"search_time_ms"`
	Filters      *FacetValues    `json:"filters,omitempty"`
	Limit        int             `json:"limit"`
	Offset       int             `json:"offset"`
	HasMore      bool            `json:"has_more"`
}
