package scene

import "math"

// Horizontal is the coarse horizontal position of a box center.
type Horizontal string

// Vertical is the coarse vertical position of a box center.
type Vertical string

// Zone labels for the 3×3 grid.
const (
	HorizontalLeft   Horizontal = "left"
	HorizontalCenter Horizontal = "center"
	HorizontalRight  Horizontal = "right"

	VerticalTop    Vertical = "top"
	VerticalMiddle Vertical = "middle"
	VerticalBottom Vertical = "bottom"
)

// Zone is the coarse spatial classification of one bounding box: a cell of
// the 3×3 grid plus a spoken distance band.
type Zone struct {
	Horizontal Horizontal `json:"horizontal"`
	Vertical   Vertical   `json:"vertical"`

	// Distance is the spoken distance band, e.g. "close" or "far away".
	Distance string `json:"distance"`

	// AreaRatio is the box area divided by the frame area, clamped to be
	// non-negative. Zero for degenerate boxes.
	AreaRatio float64 `json:"area_ratio"`

	// Degenerate is set when the box had zero width or height and the
	// distance defaulted to far away.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Classify maps a bounding box to its Zone within the given frame.
//
// The box center is expressed as a fraction of the frame, then bucketed by
// the configured split points. The comparison is strict on the low side:
// a center at exactly LeftSplit resolves to center, not left. With Mirrored
// set, left and right swap after bucketing.
//
// Distance comes from the area ratio and the configured band table. A box
// with zero width or height never divides by zero; it classifies as far away
// and is flagged Degenerate.
func (c Config) Classify(box Box, frame Frame) Zone {
	f := frame.normalized()

	fx := box.CenterX() / f.Width
	fy := box.CenterY() / f.Height

	var h Horizontal
	switch {
	case fx < c.LeftSplit:
		h = HorizontalLeft
	case fx > c.RightSplit:
		h = HorizontalRight
	default:
		// NaN centers land here too: an unclassifiable box reads as
		// the middle of the view rather than a crash.
		h = HorizontalCenter
	}
	if c.Mirrored {
		switch h {
		case HorizontalLeft:
			h = HorizontalRight
		case HorizontalRight:
			h = HorizontalLeft
		}
	}

	var v Vertical
	switch {
	case fy < c.TopSplit:
		v = VerticalTop
	case fy > c.BottomSplit:
		v = VerticalBottom
	default:
		v = VerticalMiddle
	}

	z := Zone{Horizontal: h, Vertical: v, Distance: FarAwayPhrase}

	area := box.Area()
	if area <= 0 || math.IsNaN(area) {
		z.Degenerate = true
		return z
	}

	ratio := area / (f.Width * f.Height)
	z.AreaRatio = ratio
	for _, band := range c.bands() {
		if ratio > band.MinAreaRatio {
			z.Distance = band.Phrase
			break
		}
	}
	return z
}

// phrase renders the zone as a spoken spatial description, e.g.
// "on the left side at the top, very close".
func (z Zone) phrase() string {
	return z.horizontalPhrase() + " " + z.verticalPhrase() + ", " + z.Distance
}

func (z Zone) horizontalPhrase() string {
	switch z.Horizontal {
	case HorizontalLeft:
		return "on the left side"
	case HorizontalRight:
		return "on the right side"
	default:
		return "in the center"
	}
}

func (z Zone) verticalPhrase() string {
	switch z.Vertical {
	case VerticalTop:
		return "at the top"
	case VerticalBottom:
		return "at the bottom"
	default:
		return "in the middle"
	}
}
