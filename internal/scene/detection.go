package scene

import "math"

// Box represents an axis-aligned bounding box around a detected object.
//
// Coordinates follow the standard image convention: the origin is at the
// top-left, X increases rightward, Y increases downward. Values may be
// normalized to [0,1] or expressed in pixels, as long as they share the
// reference frame passed alongside (see Frame).
type Box struct {
	Top    float64 `json:"top"`    // Top edge
	Left   float64 `json:"left"`   // Left edge
	Bottom float64 `json:"bottom"` // Bottom edge
	Right  float64 `json:"right"`  // Right edge
}

// Width returns the horizontal extent of the box, clamped to be non-negative.
func (b Box) Width() float64 {
	w := b.Right - b.Left
	if w < 0 || math.IsNaN(w) {
		return 0
	}
	return w
}

// Height returns the vertical extent of the box, clamped to be non-negative.
func (b Box) Height() float64 {
	h := b.Bottom - b.Top
	if h < 0 || math.IsNaN(h) {
		return 0
	}
	return h
}

// Area returns Width × Height. Degenerate boxes yield 0, never a negative value.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return (b.Left + b.Right) / 2
}

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// Detection represents one object instance recognized by an external
// classifier. The label is treated as an opaque non-empty string; validating
// label semantics is the classifier's job, not this package's.
type Detection struct {
	// Label is the category name (e.g. "person", "cup").
	Label string `json:"label"`

	// Confidence is the detector score, nominally in [0,1]. Out-of-range
	// values are clamped before use; NaN clamps to 0.
	Confidence float64 `json:"confidence"`

	// Box is the bounding box in the coordinate space of the Frame.
	Box Box `json:"bounding_box"`
}

// Frame describes the reference viewport the detection boxes live in.
//
// A zero or negative dimension means the boxes are already normalized, and
// the frame is taken to be the unit square.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Unit is the implicit 1×1 frame for pre-normalized boxes.
var Unit = Frame{Width: 1, Height: 1}

// normalized returns the frame with non-positive dimensions replaced by the
// unit square so downstream ratios never divide by zero.
func (f Frame) normalized() Frame {
	if f.Width <= 0 || f.Height <= 0 || math.IsNaN(f.Width) || math.IsNaN(f.Height) {
		return Unit
	}
	return f
}

// clampConfidence forces a detector score into [0,1]. NaN maps to 0 so a
// broken classifier downgrades a detection instead of poisoning the ranking.
func clampConfidence(c float64) float64 {
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Filter returns the detections whose (clamped) confidence is at or above
// threshold, preserving input order.
//
// The comparison is inclusive: a detection with confidence exactly equal to
// the threshold passes. Empty input yields an empty (non-nil) slice, never an
// error.
func Filter(dets []Detection, threshold float64) []Detection {
	kept := make([]Detection, 0, len(dets))
	for _, d := range dets {
		if clampConfidence(d.Confidence) >= threshold {
			kept = append(kept, d)
		}
	}
	return kept
}
