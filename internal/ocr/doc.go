// Package ocr reads printed text from a snapshot and prepares it for speech.
//
// Beyond narrating objects, HearMeOut reads signs, labels, and documents
// aloud. This package wraps the Tesseract OCR engine (via gosseract/v2) for
// the recognition step and adds the speech-side logic Tesseract does not do:
// sorting word boxes into reading order (lines top to bottom, words left to
// right) and composing the spoken form.
//
// Recognition requires Tesseract to be installed with CGO enabled; the
// reading-order and narration steps are pure and work on any word boxes,
// including ones produced by a different recognizer.
package ocr
