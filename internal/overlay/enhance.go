package overlay

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// EnhanceResult contains the enhanced snapshot.
type EnhanceResult struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
	Contrast    float64 `json:"contrast"`
	Brightness  float64 `json:"brightness"`
}

// Enhance applies a contrast and brightness boost for low-vision viewing.
//
// Both parameters are relative changes: 0 leaves the image untouched, 0.3
// boosts by 30%, negative values reduce. Values are clamped to [-1, 1].
// Typical low-vision presets sit around contrast 0.3, brightness 0.1.
func Enhance(img image.Image, contrast, brightness float64) (*EnhanceResult, error) {
	contrast = clampUnit(contrast)
	brightness = clampUnit(brightness)

	out := adjust.Contrast(img, contrast)
	out = adjust.Brightness(out, brightness)

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}

	return &EnhanceResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
		Contrast:    contrast,
		Brightness:  brightness,
	}, nil
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
