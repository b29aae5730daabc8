package scoring

// Config holds all tunable constants for the relevance scorer.
// The relative ordering QuestionTextWeight >= OptionWeight >= TagWeight >=
// ExplanationWeight is the load-bearing invariant; the literal values are
// heuristic and can be overridden from the config file.
type Config struct {
	// Field weights
	QuestionTextWeight float64 `yaml:"question_text_weight"` // default: 10
	OptionWeight       float64 `yaml:"option_weight"`        // default: 6
	TagWeight          float64 `yaml:"tag_weight"`           // default: 4
	ExplanationWeight  float64 `yaml:"explanation_weight"`   // default: 2

	// Tag matching
	ExactTagBonus  float64 `yaml:"exact_tag_bonus"`  // default: 20
	FuzzyTagFactor float64 `yaml:"fuzzy_tag_factor"` // default: 0.5

	// Positional multipliers for question text matches
	EarlyZoneChars  int     `yaml:"early_zone_chars"` // default: 50
	LateZoneChars   int     `yaml:"late_zone_chars"`  // default: 50
	EarlyMultiplier float64 `yaml:"early_multiplier"` // default: 1.5
	LateMultiplier  float64 `yaml:"late_multiplier"`  // default: 0.8

	// Whole-word occurrences in question text get a small extra boost over
	// bare substring occurrences.
	WordBoundaryBonus float64 `yaml:"word_boundary_bonus"` // default: 1.25

	// Tokenization bounds
	MaxTerms      int `yaml:"max_terms"`       // default: 15
	MinTermLength int `yaml:"min_term_length"` // default: 2

	// Normalization: raw score is divided by
	// (sum of field weights) * termCount * NormalizationHeadroom, then clamped
	// to [0,1]. Scores below MinScore are floored to exactly 0.
	NormalizationHeadroom float64 `yaml:"normalization_headroom"` // default: 1.5
	MinScore              float64 `yaml:"min_score"`              // default: 0.05

	// Highlighting
	MaxHighlightsPerField int `yaml:"max_highlights_per_field"` // default: 10
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		QuestionTextWeight: 10,
		OptionWeight:       6,
		TagWeight:          4,
		ExplanationWeight:  2,

		ExactTagBonus:  20,
		FuzzyTagFactor: 0.5,

		EarlyZoneChars:  50,
		LateZoneChars:   50,
		EarlyMultiplier: 1.5,
		LateMultiplier:  0.8,

		WordBoundaryBonus: 1.25,

		MaxTerms:      15,
		MinTermLength: 2,

		NormalizationHeadroom: 1.5,
		MinScore:              0.05,

		MaxHighlightsPerField: 10,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.QuestionTextWeight == 0 {
		c.QuestionTextWeight = defaults.QuestionTextWeight
	}
	if c.OptionWeight == 0 {
		c.OptionWeight = defaults.OptionWeight
	}
	if c.TagWeight == 0 {
		c.TagWeight = defaults.TagWeight
	}
	if c.ExplanationWeight == 0 {
		c.ExplanationWeight = defaults.ExplanationWeight
	}
	if c.ExactTagBonus == 0 {
		c.ExactTagBonus = defaults.ExactTagBonus
	}
	if c.FuzzyTagFactor == 0 {
		c.FuzzyTagFactor = defaults.FuzzyTagFactor
	}
	if c.EarlyZoneChars == 0 {
		c.EarlyZoneChars = defaults.EarlyZoneChars
	}
	if c.LateZoneChars == 0 {
		c.LateZoneChars = defaults.LateZoneChars
	}
	if c.EarlyMultiplier == 0 {
		c.EarlyMultiplier = defaults.EarlyMultiplier
	}
	if c.LateMultiplier == 0 {
		c.LateMultiplier = defaults.LateMultiplier
	}
	if c.WordBoundaryBonus == 0 {
		c.WordBoundaryBonus = defaults.WordBoundaryBonus
	}
	if c.MaxTerms == 0 {
		c.MaxTerms = defaults.MaxTerms
	}
	if c.MinTermLength == 0 {
		c.MinTermLength = defaults.MinTermLength
	}
	if c.NormalizationHeadroom == 0 {
		c.NormalizationHeadroom = defaults.NormalizationHeadroom
	}
	if c.MinScore == 0 {
		c.MinScore = defaults.MinScore
	}
	if c.MaxHighlightsPerField == 0 {
		c.MaxHighlightsPerField = defaults.MaxHighlightsPerField
	}
}

// sumFieldWeights returns the sum of the four field weights, used as the
// per-term normalization base.
func (c *Config) sumFieldWeights() float64 {
	return c.QuestionTextWeight + c.OptionWeight + c.TagWeight + c.ExplanationWeight
}
