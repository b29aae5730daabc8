package scoring

import (
	"strings"
	"unicode"
)

// MatchStrategy identifies how a term matched a field. Strategies are an
// explicit enumerated set with a pure function per strategy, composed by the
// scorer.
type MatchStrategy int

const (
	// MatchNone indicates no match was found.
	MatchNone MatchStrategy = iota
	// MatchExact indicates the term equals the field value (tags).
	MatchExact
	// MatchBoundary indicates a whole-word occurrence.
	MatchBoundary
	// MatchSubstring indicates a plain substring occurrence.
	MatchSubstring
	// MatchFuzzy indicates a bounded-edit-distance match (tags).
	MatchFuzzy
)

// String returns a string representation of the match strategy.
func (m MatchStrategy) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchExact:
		return "exact"
	case MatchBoundary:
		return "boundary"
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// substringPositions returns the byte offsets of every occurrence of term in
// text. Both arguments are expected to be lowercase already.
func substringPositions(term, text string) []int {
	if term == "" || text == "" {
		return nil
	}
	var positions []int
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx == -1 {
			return positions
		}
		positions = append(positions, offset+idx)
		offset += idx + len(term)
	}
}

// isWordBoundary reports whether the occurrence of a term at pos within text
// is delimited by non-alphanumeric runes on both sides.
func isWordBoundary(text string, pos, length int) bool {
	if pos > 0 {
		before := rune(text[pos-1])
		if unicode.IsLetter(before) || unicode.IsNumber(before) {
			return false
		}
	}
	if end := pos + length; end < len(text) {
		after := rune(text[end])
		if unicode.IsLetter(after) || unicode.IsNumber(after) {
			return false
		}
	}
	return true
}

// matchTag classifies how a term matches a tag: exact equality first, then
// substring containment, then a fuzzy match accepted when the edit distance
// is at most len(term)/3 and the tag is at least as long as the term.
func matchTag(term, tag string) MatchStrategy {
	if tag == term {
		return MatchExact
	}
	if strings.Contains(tag, term) {
		return MatchSubstring
	}
	maxDistance := len(term) / 3
	if maxDistance > 0 && len(tag) >= len(term) {
		if LevenshteinDistance(tag, term) <= maxDistance {
			return MatchFuzzy
		}
	}
	return MatchNone
}

// LevenshteinDistance calculates the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to change one string into
// another. Pure function with no side effects.
func LevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Convert to runes for proper Unicode handling
	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)

	// Only two rows of the distance matrix are needed at a time.
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)

	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			// Minimum of: deletion, insertion, substitution
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenB]
}
