// Package cli provides CLI utilities for prepsearch.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prepstack/prepsearch/internal/models"
	"github.com/prepstack/prepsearch/pkg/utils"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
)

// WriteSearchResults writes search results to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeSearchResultsText(w, response)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms (showing %d from offset %d)\n\n",
		response.Total, response.SearchTimeMs, len(response.Items), response.Offset)
	for i, result := range response.Items {
		q := result.Question
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.4f\n", response.Offset+i+1, result.Score)
		fmt.Fprintf(w, "ID: %s | %s/%s", q.ID, q.Provider, q.Exam)
		if q.Difficulty != "" {
			fmt.Fprintf(w, " | %s", q.Difficulty)
		}
		fmt.Fprintln(w)
		if len(q.Tags) > 0 {
			fmt.Fprintf(w, "Tags: %s\n", strings.Join(q.Tags, ", "))
		}
		fmt.Fprintf(w, "\n%s\n", utils.Truncate(q.QuestionText, 200))
		for field, matches := range result.Highlights {
			fmt.Fprintf(w, "  matched %s: %s\n", field, strings.Join(matches, ", "))
		}
		fmt.Fprintln(w)
	}
	if response.HasMore {
		fmt.Fprintf(w, "More results available (offset %d)\n", response.Offset+response.Limit)
	}
}
