package scoring

import (
	"strings"

	"github.com/prepstack/prepsearch/internal/models"
)

// Highlight field names, matching the keys of models.Highlights.
const (
	FieldQuestionText = "question_text"
	FieldOptions      = "options"
	FieldExplanation  = "explanation"
	FieldTags         = "tags"
)

// RelevanceScorer computes a normalized [0,1] relevance score for a question
// given a tokenized term list. Scoring is pure and deterministic: the same
// text and terms always produce the same score.
type RelevanceScorer struct {
	config *Config
}

// NewRelevanceScorer creates a scorer with the given configuration.
func NewRelevanceScorer(config *Config) *RelevanceScorer {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	return &RelevanceScorer{config: config}
}

// Score returns the normalized relevance score for the extracted text.
// An empty term list yields 0 for every record.
func (s *RelevanceScorer) Score(text SearchableText, terms []string) float64 {
	score, _ := s.score(text, terms, nil)
	return score
}

// ScoreWithHighlights scores the text and additionally collects the matched
// substrings per field for UI display. Highlights are nil when nothing
// matched.
func (s *RelevanceScorer) ScoreWithHighlights(text SearchableText, terms []string) (float64, models.Highlights) {
	return s.score(text, terms, newHighlightCollector(s.config.MaxHighlightsPerField))
}

func (s *RelevanceScorer) score(text SearchableText, terms []string, hc *highlightCollector) (float64, models.Highlights) {
	if len(terms) == 0 {
		return 0, nil
	}

	raw := 0.0
	matchedTerms := 0

	for _, term := range terms {
		matched := false

		if points := s.scoreQuestionText(term, text.QuestionText); points > 0 {
			raw += points
			matched = true
			hc.add(FieldQuestionText, term)
		}
		if points := s.scoreOptions(term, text.Options); points > 0 {
			raw += points
			matched = true
			hc.add(FieldOptions, term)
		}
		if points := s.scoreTags(term, text.Tags, hc); points > 0 {
			raw += points
			matched = true
		}
		if points := s.scoreExplanation(term, text.Explanation); points > 0 {
			raw += points
			matched = true
			hc.add(FieldExplanation, term)
		}

		if matched {
			matchedTerms++
		}
	}

	// Term-coverage scaling: a record matching only half the query's terms
	// is penalized relative to one matching all of them.
	coverage := float64(matchedTerms) / float64(len(terms))
	raw *= 0.5 + 0.5*coverage

	score := s.normalize(raw, len(terms))
	if score == 0 {
		return 0, nil
	}
	return score, hc.highlights()
}

// scoreQuestionText scores every occurrence of term in the question text.
// Occurrences in the opening characters get a bonus multiplier, occurrences
// in the trailing characters a penalty, and whole-word occurrences a small
// extra boost over bare substring hits.
func (s *RelevanceScorer) scoreQuestionText(term, text string) float64 {
	points := 0.0
	for _, pos := range substringPositions(term, text) {
		mult := s.positionMultiplier(pos, len(text))
		if isWordBoundary(text, pos, len(term)) {
			mult *= s.config.WordBoundaryBonus
		}
		points += s.config.QuestionTextWeight * mult
	}
	return points
}

// scoreOptions accumulates occurrence counts across all options, with no
// positional multiplier.
func (s *RelevanceScorer) scoreOptions(term string, options []string) float64 {
	count := 0
	for _, opt := range options {
		count += strings.Count(opt, term)
	}
	return float64(count) * s.config.OptionWeight
}

// scoreTags scores the term against each tag: exact equality earns the large
// fixed bonus, substring containment the plain tag weight, and a bounded
// edit-distance fuzzy match a fraction of the tag weight.
func (s *RelevanceScorer) scoreTags(term string, tags []string, hc *highlightCollector) float64 {
	points := 0.0
	for _, tag := range tags {
		switch matchTag(term, tag) {
		case MatchExact:
			points += s.config.ExactTagBonus
		case MatchSubstring:
			points += s.config.TagWeight
		case MatchFuzzy:
			points += s.config.TagWeight * s.config.FuzzyTagFactor
		default:
			continue
		}
		hc.addTag(tag)
	}
	return points
}

// scoreExplanation accumulates occurrence counts in the explanation, with no
// positional multiplier.
func (s *RelevanceScorer) scoreExplanation(term, explanation string) float64 {
	if explanation == "" {
		return 0
	}
	return float64(strings.Count(explanation, term)) * s.config.ExplanationWeight
}

// positionMultiplier returns the multiplier for a match at byte offset pos in
// a field of textLen bytes. The early zone wins when the field is shorter
// than both zones combined.
func (s *RelevanceScorer) positionMultiplier(pos, textLen int) float64 {
	if pos < s.config.EarlyZoneChars {
		return s.config.EarlyMultiplier
	}
	if pos >= textLen-s.config.LateZoneChars {
		return s.config.LateMultiplier
	}
	return 1.0
}

// normalize divides the raw score by the theoretical per-term maximum and
// clamps to [0,1]. Scores under the minimum floor collapse to exactly 0,
// which downstream treats as a non-match.
func (s *RelevanceScorer) normalize(raw float64, termCount int) float64 {
	if raw <= 0 || termCount == 0 {
		return 0
	}
	max := s.config.sumFieldWeights() * float64(termCount) * s.config.NormalizationHeadroom
	score := raw / max
	if score > 1 {
		score = 1
	}
	if score < s.config.MinScore {
		return 0
	}
	return score
}
