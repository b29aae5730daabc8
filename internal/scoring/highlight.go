package scoring

import "github.com/prepstack/prepsearch/internal/models"

// highlightCollector accumulates matched substrings per field, deduplicated
// and capped. A nil collector is a no-op, so the scorer can share one code
// path whether or not highlights were requested.
type highlightCollector struct {
	maxPerField int
	fields      map[string][]string
	seen        map[string]map[string]bool
}

func newHighlightCollector(maxPerField int) *highlightCollector {
	return &highlightCollector{
		maxPerField: maxPerField,
		fields:      make(map[string][]string),
		seen:        make(map[string]map[string]bool),
	}
}

// add records a matched substring for a text field, subject to the per-field cap.
func (hc *highlightCollector) add(field, match string) {
	if hc == nil || match == "" {
		return
	}
	if len(hc.fields[field]) >= hc.maxPerField {
		return
	}
	hc.record(field, match)
}

// addTag records a matched tag. Tags are deduplicated but not capped; a tag
// set is already small and every matched tag is useful for display.
func (hc *highlightCollector) addTag(tag string) {
	if hc == nil || tag == "" {
		return
	}
	hc.record(FieldTags, tag)
}

func (hc *highlightCollector) record(field, match string) {
	if hc.seen[field] == nil {
		hc.seen[field] = make(map[string]bool)
	}
	if hc.seen[field][match] {
		return
	}
	hc.seen[field][match] = true
	hc.fields[field] = append(hc.fields[field], match)
}

// highlights returns the collected matches, or nil when empty or when the
// collector itself is nil (highlighting not requested).
func (hc *highlightCollector) highlights() models.Highlights {
	if hc == nil || len(hc.fields) == 0 {
		return nil
	}
	return models.Highlights(hc.fields)
}
