package scene

// DistanceBand maps a minimum box-area-to-frame-area ratio to a spoken
// distance phrase. Bands are evaluated in order; the first band whose
// MinAreaRatio the ratio exceeds wins.
type DistanceBand struct {
	// MinAreaRatio is the exclusive lower bound for this band.
	MinAreaRatio float64

	// Phrase is the spoken form, e.g. "very close".
	Phrase string
}

// DefaultDistanceBands is the five-tier table used when Config.DistanceBands
// is nil. The coarser three-tier variant some callers prefer is expressed by
// supplying a shorter table, not by forking the classifier.
var DefaultDistanceBands = []DistanceBand{
	{MinAreaRatio: 0.30, Phrase: "very close"},
	{MinAreaRatio: 0.10, Phrase: "close"},
	{MinAreaRatio: 0.05, Phrase: "nearby"},
	{MinAreaRatio: 0.01, Phrase: "at medium distance"},
}

// FarAwayPhrase is spoken when a box falls below every configured band, and
// for degenerate (zero-area) boxes.
const FarAwayPhrase = "far away"

// Config carries every tunable of the narration pipeline. The behavioral
// variants observed in the field (mirrored front cameras, coarser distance
// tables, different thresholds) are all expressed here rather than as
// separate code paths.
type Config struct {
	// Threshold is the minimum confidence for a detection to be narrated.
	Threshold float64

	// MaxCategories caps how many categories the overview clause lists.
	MaxCategories int

	// Mirrored swaps the left/right zone labels, compensating for a
	// mirrored front-camera preview. Deciding whether the preview is
	// mirrored belongs to the camera layer; this core just honors the flag.
	Mirrored bool

	// LeftSplit and RightSplit divide the horizontal axis into
	// left / center / right. A center strictly below LeftSplit is left,
	// strictly above RightSplit is right; everything else, boundaries
	// included, is center.
	LeftSplit  float64
	RightSplit float64

	// TopSplit and BottomSplit divide the vertical axis the same way.
	TopSplit    float64
	BottomSplit float64

	// DistanceBands overrides DefaultDistanceBands when non-nil. Must be
	// sorted by MinAreaRatio descending.
	DistanceBands []DistanceBand

	// EmptyScenePhrase is returned when nothing survives filtering.
	EmptyScenePhrase string
}

// DefaultConfig returns the canonical configuration: 0.5 threshold, top three
// categories, thirds-based zone grid, five-tier distance table, non-mirrored.
func DefaultConfig() Config {
	return Config{
		Threshold:        0.5,
		MaxCategories:    3,
		LeftSplit:        0.33,
		RightSplit:       0.66,
		TopSplit:         0.33,
		BottomSplit:      0.66,
		EmptyScenePhrase: "No objects detected in view",
	}
}

// bands returns the configured distance table or the default.
func (c Config) bands() []DistanceBand {
	if c.DistanceBands != nil {
		return c.DistanceBands
	}
	return DefaultDistanceBands
}
