package search

import "github.com/prepstack/prepsearch/internal/models"

// Paginate slices results to [offset, offset+limit) and reports whether more
// results exist past the page. Offsets beyond the total yield an empty page.
func Paginate(results []*models.ScoredResult, offset, limit int) ([]*models.ScoredResult, bool) {
	total := len(results)
	if offset >= total {
		return nil, false
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return results[offset:end], offset+limit < total
}
