package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/rudrakshass/HearMeOut/internal/scene"
)

// RenderOptions controls how detections are drawn onto a snapshot.
type RenderOptions struct {
	// ShowGrid draws the 3×3 zone grid lines at the configured splits.
	ShowGrid bool

	// LeftSplit, RightSplit, TopSplit, BottomSplit position the grid
	// lines as fractions of the snapshot. Zero values fall back to the
	// narration defaults (0.33/0.66).
	LeftSplit, RightSplit, TopSplit, BottomSplit float64

	// Thickness is the box border width in pixels. Zero means 2.
	Thickness int

	// Scale resizes the output (e.g. 0.5 to halve). Zero means 1.0.
	Scale float64
}

// RenderResult contains the annotated snapshot.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// Boxes is the number of detection boxes drawn.
	Boxes int `json:"boxes"`
}

// boxPalette cycles per detection so adjacent boxes stay distinguishable.
var boxPalette = []color.RGBA{
	{R: 255, G: 64, B: 64, A: 255},
	{R: 64, G: 160, B: 255, A: 255},
	{R: 64, G: 200, B: 96, A: 255},
	{R: 255, G: 180, B: 32, A: 255},
	{R: 200, G: 96, B: 255, A: 255},
}

// Render draws detection boxes, and optionally the zone grid, over a
// snapshot and returns the result as base64 PNG.
//
// Detection boxes are interpreted in the given frame and projected onto the
// snapshot's pixel grid; pass a zero frame for pre-normalized boxes. Boxes
// that project outside the snapshot are clipped, and degenerate boxes are
// skipped rather than failing the whole render.
func Render(img image.Image, dets []scene.Detection, frame scene.Frame, opts RenderOptions) (*RenderResult, error) {
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	width := canvas.Bounds().Dx()
	height := canvas.Bounds().Dy()

	if opts.ShowGrid {
		drawGrid(canvas, opts)
	}

	thickness := opts.Thickness
	if thickness <= 0 {
		thickness = 2
	}

	drawn := 0
	for i, d := range dets {
		r, ok := projectBox(d.Box, frame, width, height)
		if !ok {
			continue
		}
		drawRect(canvas, r, boxPalette[i%len(boxPalette)], thickness)
		drawn++
	}

	out := image.Image(canvas)
	if opts.Scale > 0 && opts.Scale != 1.0 {
		out = imaging.Resize(out,
			int(float64(width)*opts.Scale), int(float64(height)*opts.Scale),
			imaging.Lanczos)
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}

	return &RenderResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
		Boxes:       drawn,
	}, nil
}

// projectBox maps a detection box from its frame onto a width×height pixel
// grid, clipping to the image. Returns false for boxes with no visible area.
func projectBox(b scene.Box, frame scene.Frame, width, height int) (image.Rectangle, bool) {
	f := frame
	if f.Width <= 0 || f.Height <= 0 {
		f = scene.Unit
	}

	x1 := int(b.Left / f.Width * float64(width))
	y1 := int(b.Top / f.Height * float64(height))
	x2 := int(b.Right / f.Width * float64(width))
	y2 := int(b.Bottom / f.Height * float64(height))

	r := image.Rect(x1, y1, x2, y2).Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}

// drawRect draws a rectangle outline with the given border thickness.
func drawRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setClipped(img, x, r.Min.Y+t, c)
			setClipped(img, x, r.Max.Y-1-t, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setClipped(img, r.Min.X+t, y, c)
			setClipped(img, r.Max.X-1-t, y, c)
		}
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// drawGrid draws the four zone split lines in semi-transparent white.
func drawGrid(img *image.RGBA, opts RenderOptions) {
	left, right := opts.LeftSplit, opts.RightSplit
	top, bottom := opts.TopSplit, opts.BottomSplit
	if left <= 0 {
		left = 0.33
	}
	if right <= 0 {
		right = 0.66
	}
	if top <= 0 {
		top = 0.33
	}
	if bottom <= 0 {
		bottom = 0.66
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	gridColor := color.RGBA{R: 255, G: 255, B: 255, A: 160}

	for _, fx := range []float64{left, right} {
		x := int(fx * float64(width))
		for y := 0; y < height; y++ {
			img.Set(x, y, gridColor)
		}
	}
	for _, fy := range []float64{top, bottom} {
		y := int(fy * float64(height))
		for x := 0; x < width; x++ {
			img.Set(x, y, gridColor)
		}
	}
}

// encodePNG encodes an image as base64 PNG.
func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
