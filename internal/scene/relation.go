package scene

// Relation phrases for the dominant axis between two box centers.
const (
	RelationLeft  = "to the left"
	RelationRight = "to the right"
	RelationAbove = "above"
	RelationBelow = "below"
)

// Relation describes where box b sits relative to box a, for boxes in unit
// (normalized) coordinates. Equivalent to RelationIn(a, b, Unit).
func Relation(a, b Box) string {
	return RelationIn(a, b, Unit)
}

// RelationIn describes where box b sits relative to box a within the given
// frame, as a spoken phrase.
//
// The center offsets are expressed as fractions of the frame before
// comparison, so the same scene narrates identically in pixel and normalized
// space regardless of aspect ratio. The dominant axis wins: when the
// horizontal fraction exceeds the vertical one in magnitude, the phrase is
// "to the left"/"to the right", otherwise "above"/"below". Equal magnitudes,
// including coincident centers, resolve to the vertical branch because
// |dx| > |dy| is false on equality; that tie-break is part of the contract.
func RelationIn(a, b Box, frame Frame) string {
	f := frame.normalized()
	dx := (b.CenterX() - a.CenterX()) / f.Width
	dy := (b.CenterY() - a.CenterY()) / f.Height

	if abs(dx) > abs(dy) {
		if dx > 0 {
			return RelationRight
		}
		return RelationLeft
	}
	if dy > 0 {
		return RelationBelow
	}
	return RelationAbove
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
