package scene

import "fmt"

// CategorySummary is the per-category portion of a Description, suitable for
// UI overlays alongside the spoken narration.
type CategorySummary struct {
	Label         string  `json:"label"`
	Count         int     `json:"count"`
	MaxConfidence float64 `json:"max_confidence"`
}

// Description is the full result of narrating one detection list.
type Description struct {
	// Narration is the spoken-form text, ready to hand to a speech
	// synthesizer or display in a text overlay.
	Narration string `json:"narration"`

	// TotalObjects is the number of detections that survived filtering.
	TotalObjects int `json:"total_objects"`

	// Categories lists the ranked categories, most confident first.
	Categories []CategorySummary `json:"categories"`
}

// Narrate runs the full pipeline — filter, group, rank, compose — and
// returns the narration plus its structured breakdown.
//
// The pipeline is a pure function of its arguments: no state survives
// between calls, identical input always produces the identical string, and
// no input causes an error. Malformed values (NaN coordinates, out-of-range
// confidences, inverted boxes) are clamped into the defined degenerate
// behaviors rather than rejected, because the consumer is an accessibility
// feature where a crash or silence is worse than an imperfect sentence.
//
// The narration reads, in order:
//
//  1. An overview: "I can see 2 objects: 1 person and 1 cup".
//  2. A detail clause placing the top-ranked category, either a single
//     instance's zone and distance or the aggregate spread of several.
//  3. A relation clause tying the runner-up category to the top one:
//     "There is a cup above". When the runner-up has several instances the
//     direction is dropped in favor of "There are also 3 cups nearby".
//
// Clauses join with ". " and the result carries no trailing period.
func (c Config) Narrate(dets []Detection, frame Frame) *Description {
	filtered := Filter(dets, c.Threshold)
	ranked := Rank(Group(filtered))

	desc := &Description{
		TotalObjects: len(filtered),
		Categories:   make([]CategorySummary, 0, len(ranked)),
	}
	for _, cat := range ranked {
		desc.Categories = append(desc.Categories, CategorySummary{
			Label:         cat.Label,
			Count:         cat.Count(),
			MaxConfidence: cat.MaxConfidence,
		})
	}

	if len(ranked) == 0 {
		desc.Narration = c.EmptyScenePhrase
		return desc
	}

	clauses := []string{
		c.overviewClause(len(filtered), ranked),
		c.detailClause(ranked[0], frame),
	}
	if len(ranked) > 1 {
		clauses = append(clauses, relationClause(ranked[0], ranked[1], frame))
	}

	desc.Narration = joinClauses(clauses)
	return desc
}

// Describe is the string-only form of Narrate.
func (c Config) Describe(dets []Detection, frame Frame) string {
	return c.Narrate(dets, frame).Narration
}

// Describe narrates a detection list with DefaultConfig.
func Describe(dets []Detection, frame Frame) string {
	return DefaultConfig().Describe(dets, frame)
}

// overviewClause builds "I can see {total} {object|objects}: ..." listing at
// most MaxCategories ranked categories.
func (c Config) overviewClause(total int, ranked []Category) string {
	noun := "objects"
	if total == 1 {
		noun = "object"
	}

	limit := c.MaxCategories
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	items := make([]string, 0, limit)
	for _, cat := range ranked[:limit] {
		items = append(items, fmt.Sprintf("%d %s", cat.Count(), pluralize(cat.Label, cat.Count())))
	}

	return fmt.Sprintf("I can see %d %s: %s", total, noun, joinList(items))
}

// detailClause places the top-ranked category in the frame. A lone instance
// gets its zone and distance; several instances get their aggregate spread.
func (c Config) detailClause(top Category, frame Frame) string {
	if top.Count() == 1 {
		z := c.Classify(top.Detections[0].Box, frame)
		return fmt.Sprintf("The %s is %s", top.Label, z.phrase())
	}

	var fp footprint
	for _, d := range top.Detections {
		fp.add(c.Classify(d.Box, frame))
	}
	return fmt.Sprintf("The %d %s are %s", top.Count(), pluralize(top.Label, top.Count()), fp.phrase())
}

// relationClause ties the second-ranked category to the top one. The
// direction comes from the first instance of each. A plural runner-up skips
// the direction entirely; that matches the reference behavior and keeps the
// sentence short enough to speak.
func relationClause(top, second Category, frame Frame) string {
	if second.Count() > 1 {
		return fmt.Sprintf("There are also %d %s nearby", second.Count(), pluralize(second.Label, second.Count()))
	}
	rel := RelationIn(top.Detections[0].Box, second.Detections[0].Box, frame)
	return fmt.Sprintf("There is a %s %s", second.Label, rel)
}

// joinClauses glues non-empty clauses with ". ".
func joinClauses(clauses []string) string {
	out := ""
	for _, cl := range clauses {
		if cl == "" {
			continue
		}
		if out != "" {
			out += ". "
		}
		out += cl
	}
	return out
}
