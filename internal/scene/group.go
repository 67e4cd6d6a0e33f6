package scene

import "sort"

// Category is all detections sharing one label within a single narration
// call, plus the highest (clamped) confidence among them. Categories are
// built fresh per invocation and never persisted.
type Category struct {
	// Label is the shared category name, passed through verbatim.
	Label string `json:"label"`

	// Detections are the member instances in input order.
	Detections []Detection `json:"detections"`

	// MaxConfidence is the highest clamped confidence among the members.
	// Used as the ranking key.
	MaxConfidence float64 `json:"max_confidence"`
}

// Count returns the number of instances in the category.
func (c Category) Count() int {
	return len(c.Detections)
}

// Group buckets detections by label, preserving the first-seen order of
// labels. That encounter order is the deterministic tie-break used by Rank,
// so it must survive grouping.
//
// Labels are not validated: an empty or placeholder label ("???", "unknown")
// still forms a category under that literal string.
func Group(dets []Detection) []Category {
	index := make(map[string]int, len(dets))
	groups := make([]Category, 0, len(dets))

	for _, d := range dets {
		i, seen := index[d.Label]
		if !seen {
			i = len(groups)
			index[d.Label] = i
			groups = append(groups, Category{Label: d.Label})
		}
		groups[i].Detections = append(groups[i].Detections, d)
		if c := clampConfidence(d.Confidence); c > groups[i].MaxConfidence {
			groups[i].MaxConfidence = c
		}
	}
	return groups
}

// Rank orders categories by MaxConfidence, highest first.
//
// Ties are broken by original group insertion order: the sort is stable and
// compares confidences with plain floating-point equality, no epsilon. Two
// categories whose best members score identically keep their first-seen
// relative order.
func Rank(groups []Category) []Category {
	ranked := make([]Category, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MaxConfidence > ranked[j].MaxConfidence
	})
	return ranked
}
