package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Bounds represents a word's bounding box in snapshot pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is one recognized word with its location and confidence.
type Word struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the recognition confidence scaled to 0..1.
	Confidence float64 `json:"confidence"`

	// Bounds is the word's bounding box in the snapshot.
	Bounds Bounds `json:"bounds"`
}

// TextResult contains everything recognized in one snapshot.
type TextResult struct {
	// FullText is the raw recognized text with Tesseract's own layout.
	FullText string `json:"full_text"`

	// Words is every recognized word in recognition order.
	Words []Word `json:"words"`

	// WordCount is len(Words), for quick inspection.
	WordCount int `json:"word_count"`

	// Language is the OCR language that was used.
	Language string `json:"language"`
}

// ExtractText runs OCR over an image file and returns the recognized words.
//
// The language is a Tesseract language code ("eng", "deu", ...); empty
// defaults to "eng". Words with empty text after trimming are dropped —
// Tesseract emits whitespace-only boxes around line breaks.
func ExtractText(path, language string) (*TextResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot access image: %w", err)
	}
	if language == "" {
		language = "eng"
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set OCR language %q: %w", language, err)
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	fullText, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get word boxes: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: b.Confidence / 100.0,
			Bounds: Bounds{
				X1: b.Box.Min.X,
				Y1: b.Box.Min.Y,
				X2: b.Box.Max.X,
				Y2: b.Box.Max.Y,
			},
		})
	}

	return &TextResult{
		FullText:  strings.TrimSpace(fullText),
		Words:     words,
		WordCount: len(words),
		Language:  language,
	}, nil
}
