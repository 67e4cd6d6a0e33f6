package overlay

import (
	"fmt"
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rudrakshass/HearMeOut/internal/scene"
)

// ColorHintResult names the dominant color of a detection region.
//
// The Name field is speakable as-is, so the narrator can enrich a category
// with it: "a red cup".
type ColorHintResult struct {
	// Name is the spoken color name, e.g. "red" or "dark blue".
	Name string `json:"name"`

	// Hex is the quantized dominant color as "#RRGGBB".
	Hex string `json:"hex"`

	// Coverage is the fraction of region pixels sharing the dominant
	// color after quantization (0..1).
	Coverage float64 `json:"coverage"`
}

// DominantColor finds the most common color inside a detection box and names
// it in plain language.
//
// The box is projected onto the snapshot like Render does. Pixels are
// quantized to 16-unit RGB buckets so near-identical shades count together,
// the most frequent bucket wins, and the winner is named via its HSL
// representation. A box with no visible area is an error; a caller that got
// a detection from the narration pipeline should only see that for
// degenerate boxes.
func DominantColor(img image.Image, box scene.Box, frame scene.Frame) (*ColorHintResult, error) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	r, ok := projectBox(box, frame, width, height)
	if !ok {
		return nil, fmt.Errorf("detection box has no visible area in a %dx%d snapshot", width, height)
	}

	min := img.Bounds().Min
	counts := make(map[[3]uint8]int)
	total := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pr, pg, pb, _ := img.At(min.X+x, min.Y+y).RGBA()
			key := [3]uint8{
				uint8((pr >> 8) / 16 * 16),
				uint8((pg >> 8) / 16 * 16),
				uint8((pb >> 8) / 16 * 16),
			}
			counts[key]++
			total++
		}
	}

	type freq struct {
		key [3]uint8
		n   int
	}
	ordered := make([]freq, 0, len(counts))
	for k, n := range counts {
		ordered = append(ordered, freq{key: k, n: n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].n != ordered[j].n {
			return ordered[i].n > ordered[j].n
		}
		return ordered[i].key[0] < ordered[j].key[0] // deterministic on count ties
	})

	win := ordered[0]
	c := colorful.Color{
		R: float64(win.key[0]) / 255,
		G: float64(win.key[1]) / 255,
		B: float64(win.key[2]) / 255,
	}

	return &ColorHintResult{
		Name:     colorName(c),
		Hex:      c.Hex(),
		Coverage: float64(win.n) / float64(total),
	}, nil
}

// colorName maps a color to a short spoken name using its HSL components.
func colorName(c colorful.Color) string {
	h, s, l := c.Hsl()

	switch {
	case l < 0.12:
		return "black"
	case l > 0.92:
		return "white"
	case s < 0.12:
		if l < 0.4 {
			return "dark gray"
		}
		if l > 0.7 {
			return "light gray"
		}
		return "gray"
	}

	name := hueName(h)
	switch {
	case l < 0.3:
		return "dark " + name
	case l > 0.75:
		return "light " + name
	case s < 0.35:
		return "pale " + name
	}
	return name
}

// hueName buckets a hue angle (degrees) into a basic color term.
func hueName(h float64) string {
	switch {
	case h < 15 || h >= 345:
		return "red"
	case h < 45:
		return "orange"
	case h < 70:
		return "yellow"
	case h < 160:
		return "green"
	case h < 200:
		return "teal"
	case h < 255:
		return "blue"
	case h < 290:
		return "purple"
	default:
		return "pink"
	}
}
