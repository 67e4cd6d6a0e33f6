package scene

import (
	"math"
	"testing"
)

// det is a shorthand constructor used across the package tests.
func det(label string, conf float64, top, left, bottom, right float64) Detection {
	return Detection{
		Label:      label,
		Confidence: conf,
		Box:        Box{Top: top, Left: left, Bottom: bottom, Right: right},
	}
}

func TestFilter_InclusiveThreshold(t *testing.T) {
	dets := []Detection{
		det("person", 0.5, 0, 0, 1, 1),
		det("cup", 0.49, 0, 0, 1, 1),
	}

	kept := Filter(dets, 0.5)
	if len(kept) != 1 {
		t.Fatalf("Expected 1 detection at threshold 0.5, got %d", len(kept))
	}
	if kept[0].Label != "person" {
		t.Errorf("Expected person to pass, got %s", kept[0].Label)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	dets := []Detection{
		det("a", 0.9, 0, 0, 1, 1),
		det("b", 0.3, 0, 0, 1, 1),
		det("c", 0.8, 0, 0, 1, 1),
		det("d", 0.7, 0, 0, 1, 1),
	}

	kept := Filter(dets, 0.5)
	want := []string{"a", "c", "d"}
	if len(kept) != len(want) {
		t.Fatalf("Expected %d detections, got %d", len(want), len(kept))
	}
	for i, label := range want {
		if kept[i].Label != label {
			t.Errorf("Position %d: got %s, want %s", i, kept[i].Label, label)
		}
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	kept := Filter(nil, 0.5)
	if kept == nil {
		t.Fatal("Filter should return an empty slice, not nil")
	}
	if len(kept) != 0 {
		t.Errorf("Expected 0 detections, got %d", len(kept))
	}
}

func TestFilter_ClampsConfidence(t *testing.T) {
	dets := []Detection{
		det("over", 1.7, 0, 0, 1, 1),    // clamps to 1.0, passes
		det("under", -0.2, 0, 0, 1, 1),  // clamps to 0, dropped
		det("nan", math.NaN(), 0, 0, 1, 1), // clamps to 0, dropped
	}

	kept := Filter(dets, 0.5)
	if len(kept) != 1 || kept[0].Label != "over" {
		t.Errorf("Expected only the over-range detection to pass, got %v", kept)
	}
}

func TestBox_DegenerateExtents(t *testing.T) {
	tests := []struct {
		name string
		box  Box
	}{
		{"zero width", Box{Top: 0.1, Left: 0.5, Bottom: 0.9, Right: 0.5}},
		{"inverted", Box{Top: 0.9, Left: 0.9, Bottom: 0.1, Right: 0.1}},
		{"nan edge", Box{Top: math.NaN(), Left: 0, Bottom: 1, Right: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := tt.box.Area(); a != 0 {
				t.Errorf("Area: got %v, want 0", a)
			}
		})
	}
}

func TestFrame_Normalized(t *testing.T) {
	if f := (Frame{Width: 0, Height: 100}).normalized(); f != Unit {
		t.Errorf("Zero-width frame should normalize to unit, got %+v", f)
	}
	if f := (Frame{Width: 640, Height: 480}).normalized(); f.Width != 640 || f.Height != 480 {
		t.Errorf("Valid frame should pass through, got %+v", f)
	}
}
