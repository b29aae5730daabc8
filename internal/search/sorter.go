package search

import (
	"sort"

	"github.com/prepstack/prepsearch/internal/models"
)

// SortResults orders results in place by the requested strategy. All sorts
// are stable: equal-key results preserve their corpus order.
func SortResults(results []*models.ScoredResult, strategy models.SortStrategy) {
	switch strategy {
	case models.SortDifficultyAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Question.Difficulty.Ordinal() < results[j].Question.Difficulty.Ordinal()
		})
	case models.SortDifficultyDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Question.Difficulty.Ordinal() > results[j].Question.Difficulty.Ordinal()
		})
	case models.SortCreatedAsc:
		// The zero time is the earliest possible instant, so records with a
		// missing timestamp sort first.
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Question.CreatedAt.Before(results[j].Question.CreatedAt)
		})
	case models.SortCreatedDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[j].Question.CreatedAt.Before(results[i].Question.CreatedAt)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}
}
