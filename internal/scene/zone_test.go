package scene

import (
	"math"
	"testing"
)

// boxAt builds a box of the given size centered at (cx, cy) in unit space.
func boxAt(cx, cy, w, h float64) Box {
	return Box{
		Top:    cy - h/2,
		Left:   cx - w/2,
		Bottom: cy + h/2,
		Right:  cx + w/2,
	}
}

func TestClassify_Grid(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		cx, cy float64
		wantH  Horizontal
		wantV  Vertical
	}{
		{"top left", 0.1, 0.1, HorizontalLeft, VerticalTop},
		{"center middle", 0.5, 0.5, HorizontalCenter, VerticalMiddle},
		{"bottom right", 0.9, 0.9, HorizontalRight, VerticalBottom},
		{"left middle", 0.2, 0.5, HorizontalLeft, VerticalMiddle},
		{"center bottom", 0.5, 0.95, HorizontalCenter, VerticalBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := cfg.Classify(boxAt(tt.cx, tt.cy, 0.1, 0.1), Unit)
			if z.Horizontal != tt.wantH || z.Vertical != tt.wantV {
				t.Errorf("Got %s/%s, want %s/%s", z.Horizontal, z.Vertical, tt.wantH, tt.wantV)
			}
		})
	}
}

func TestClassify_SplitBoundaryIsCenter(t *testing.T) {
	// The split comparison is strict: a center at exactly 0.33 is not
	// less than 0.33, so it resolves to center. The box spans 0..0.66 so
	// its center is bit-for-bit the same value as the 0.33 split.
	box := Box{Top: 0.45, Left: 0, Bottom: 0.55, Right: 0.66}
	z := DefaultConfig().Classify(box, Unit)
	if z.Horizontal != HorizontalCenter {
		t.Errorf("Center at exactly 0.33 should be center, got %s", z.Horizontal)
	}
}

func TestClassify_Mirrored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mirrored = true

	z := cfg.Classify(boxAt(0.1, 0.5, 0.1, 0.1), Unit)
	if z.Horizontal != HorizontalRight {
		t.Errorf("Mirrored left should read right, got %s", z.Horizontal)
	}
	z = cfg.Classify(boxAt(0.9, 0.5, 0.1, 0.1), Unit)
	if z.Horizontal != HorizontalLeft {
		t.Errorf("Mirrored right should read left, got %s", z.Horizontal)
	}
	// Vertical axis is unaffected by mirroring.
	z = cfg.Classify(boxAt(0.5, 0.1, 0.1, 0.1), Unit)
	if z.Vertical != VerticalTop {
		t.Errorf("Mirroring must not touch vertical, got %s", z.Vertical)
	}
}

func TestClassify_DistanceBands(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		w, h float64
		want string
	}{
		{"very close", 0.7, 0.5, "very close"},       // 0.35
		{"close", 0.5, 0.4, "close"},                 // 0.20
		{"nearby", 0.3, 0.2, "nearby"},               // 0.06
		{"medium", 0.2, 0.1, "at medium distance"},   // 0.02
		{"far away", 0.05, 0.05, "far away"},         // 0.0025
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := cfg.Classify(boxAt(0.5, 0.5, tt.w, tt.h), Unit)
			if z.Distance != tt.want {
				t.Errorf("Area %v: got %q, want %q", tt.w*tt.h, z.Distance, tt.want)
			}
		})
	}
}

func TestClassify_DegenerateBox(t *testing.T) {
	// Zero width must not divide by zero; the box reads as far away.
	box := Box{Top: 0.2, Left: 0.5, Bottom: 0.8, Right: 0.5}
	z := DefaultConfig().Classify(box, Unit)

	if z.Distance != FarAwayPhrase {
		t.Errorf("Zero-width box: got %q, want %q", z.Distance, FarAwayPhrase)
	}
	if !z.Degenerate {
		t.Error("Zero-width box should be flagged degenerate")
	}
}

func TestClassify_NaNCenter(t *testing.T) {
	box := Box{Top: math.NaN(), Left: math.NaN(), Bottom: math.NaN(), Right: math.NaN()}
	z := DefaultConfig().Classify(box, Unit)

	// An unclassifiable center lands in the middle of the grid and the
	// output string stays free of NaN artifacts.
	if z.Horizontal != HorizontalCenter || z.Vertical != VerticalMiddle {
		t.Errorf("NaN center: got %s/%s, want center/middle", z.Horizontal, z.Vertical)
	}
	if z.Distance != FarAwayPhrase {
		t.Errorf("NaN area: got %q, want %q", z.Distance, FarAwayPhrase)
	}
}

func TestClassify_PixelFrame(t *testing.T) {
	// Pixel-space boxes classify identically to their normalized twins.
	frame := Frame{Width: 640, Height: 480}
	box := Box{Top: 48, Left: 64, Bottom: 144, Right: 192} // center (0.2, 0.2)

	z := DefaultConfig().Classify(box, frame)
	if z.Horizontal != HorizontalLeft || z.Vertical != VerticalTop {
		t.Errorf("Got %s/%s, want left/top", z.Horizontal, z.Vertical)
	}
}

func TestClassify_CustomBands(t *testing.T) {
	// The coarser two-tier variant is a configuration, not a fork.
	cfg := DefaultConfig()
	cfg.DistanceBands = []DistanceBand{
		{MinAreaRatio: 0.25, Phrase: "very close"},
		{MinAreaRatio: 0.10, Phrase: "close"},
	}

	z := cfg.Classify(boxAt(0.5, 0.5, 0.3, 0.2), Unit) // 0.06
	if z.Distance != FarAwayPhrase {
		t.Errorf("Below every custom band should be far away, got %q", z.Distance)
	}
}
