// Package overlay renders visual companions to the spoken narration.
//
// HearMeOut is used by blind and low-vision users side by side with sighted
// helpers; the narration speaks, and this package draws. It operates on a
// still camera snapshot supplied by the caller:
//
//   - Render draws detection boxes and the 3×3 zone grid over the snapshot
//     so a helper can see what the narration refers to
//   - Enhance applies a contrast/brightness boost for low-vision viewing
//   - DominantColor samples a detection region and names its color so the
//     narrator can mention it ("a red cup")
//
// All image output is base64-encoded PNG, ready for embedding in a UI layer.
// Detection boxes arrive in the same coordinate frame the narration core
// uses (normalized or pixel space with an explicit frame) and are projected
// onto the snapshot's pixel grid here.
package overlay
