package scoring

import (
	"strings"

	"github.com/prepstack/prepsearch/internal/models"
)

// SearchableText is the lowercase, comparable projection of a question record.
type SearchableText struct {
	QuestionText string
	Options      []string
	Explanation  string
	Tags         []string
}

// ExtractSearchableText normalizes a question's fields for matching.
// Pure function of the record; absent fields become empty values.
func ExtractSearchableText(q *models.QuestionRecord) SearchableText {
	text := SearchableText{
		QuestionText: strings.ToLower(q.QuestionText),
		Explanation:  strings.ToLower(q.Explanation),
	}
	if len(q.Options) > 0 {
		text.Options = make([]string, len(q.Options))
		for i, opt := range q.Options {
			text.Options[i] = strings.ToLower(opt)
		}
	}
	if len(q.Tags) > 0 {
		text.Tags = make([]string, len(q.Tags))
		for i, tag := range q.Tags {
			text.Tags[i] = strings.ToLower(tag)
		}
	}
	return text
}
