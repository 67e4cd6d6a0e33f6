package ocr

import (
	"sort"
	"strings"
)

// NoTextPhrase is spoken when a snapshot contains no readable text.
const NoTextPhrase = "No readable text found"

// ReadingOrder groups word boxes into lines and orders them the way a person
// reads: lines top to bottom, words within a line left to right.
//
// Two words share a line when their vertical centers are within half the
// taller word's height of each other. That tolerates the slight baseline
// jitter camera snapshots have without merging adjacent lines.
func ReadingOrder(words []Word) [][]Word {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return centerY(sorted[i]) < centerY(sorted[j])
	})

	lines := make([][]Word, 0)
	for _, w := range sorted {
		placed := false
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			if sameLine(last[0], w) {
				lines[len(lines)-1] = append(last, w)
				placed = true
			}
		}
		if !placed {
			lines = append(lines, []Word{w})
		}
	}

	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].Bounds.X1 < line[j].Bounds.X1
		})
	}
	return lines
}

// Narrate composes the spoken form of an OCR result: the recognized lines in
// reading order, prefixed so the listener knows text follows. An empty
// result yields the fixed no-text phrase, never an empty string.
func Narrate(result *TextResult) string {
	if result == nil || len(result.Words) == 0 {
		return NoTextPhrase
	}

	lines := ReadingOrder(result.Words)
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		texts := make([]string, 0, len(line))
		for _, w := range line {
			texts = append(texts, w.Text)
		}
		parts = append(parts, strings.Join(texts, " "))
	}

	return "The text reads: " + strings.Join(parts, ", ")
}

func centerY(w Word) float64 {
	return float64(w.Bounds.Y1+w.Bounds.Y2) / 2
}

func height(w Word) float64 {
	return float64(w.Bounds.Y2 - w.Bounds.Y1)
}

// sameLine reports whether two words sit on the same text line.
func sameLine(a, b Word) bool {
	tolerance := height(a)
	if h := height(b); h > tolerance {
		tolerance = h
	}
	return abs(centerY(a)-centerY(b)) <= tolerance/2
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
