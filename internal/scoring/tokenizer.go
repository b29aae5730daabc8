// Package scoring implements the relevance scorer for exam-question search:
// query tokenization, field-weighted match scoring with positional bonuses,
// fuzzy tag matching, and highlight extraction.
package scoring

import (
	"regexp"
	"strings"
	"unicode"
)

var phraseRegex = regexp.MustCompile(`"([^"]+)"`)

// Tokenizer turns a raw query string into a deduplicated, order-stable list
// of lowercase search terms and quoted phrases.
type Tokenizer struct {
	maxTerms      int
	minTermLength int
}

// NewTokenizer creates a tokenizer with the bounds from cfg.
func NewTokenizer(cfg *Config) *Tokenizer {
	return &Tokenizer{
		maxTerms:      cfg.MaxTerms,
		minTermLength: cfg.MinTermLength,
	}
}

// Tokenize extracts search terms from a query. Quoted substrings become
// standalone phrase terms; the remainder is split on whitespace with
// punctuation stripped (quotes, hyphens, and apostrophes survive inside
// words). Identical input always yields an identical term list.
func (t *Tokenizer) Tokenize(query string) []string {
	seen := make(map[string]bool)
	terms := make([]string, 0, t.maxTerms)

	add := func(term string) {
		if len(terms) >= t.maxTerms {
			return
		}
		if len(term) < t.minTermLength || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	// Quoted phrases first, so they keep priority under the term cap.
	remaining := phraseRegex.ReplaceAllStringFunc(query, func(m string) string {
		phrase := strings.ToLower(strings.TrimSpace(strings.Trim(m, `"`)))
		add(phrase)
		return " "
	})

	for _, word := range strings.Fields(stripPunctuation(remaining)) {
		add(strings.ToLower(word))
	}

	return terms
}

// stripPunctuation replaces punctuation with spaces, keeping hyphens and
// apostrophes so terms like "s3-bucket" or "don't" stay intact.
func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		if r == '-' || r == '\'' {
			return r
		}
		return ' '
	}, s)
}
