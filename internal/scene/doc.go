// Package scene turns raw object detections into a spoken scene description.
//
// The package is the narration core of HearMeOut: an external detector hands
// over a list of labeled, scored bounding boxes, and this package composes a
// natural-language sentence suitable for reading aloud to a blind user, e.g.
//
//	I can see 2 objects: 1 person and 1 cup. The person is in the center
//	in the middle, close. There is a cup above
//
// # Pipeline
//
// Narration runs four ordered stages, each a pure function:
//
//  1. Filter: drop detections below the confidence threshold
//  2. Group: bucket detections by label, preserving first-seen label order
//  3. Rank: order categories by their most confident member, descending
//  4. Compose: overview, spatial detail for the top category, and a
//     directional relation to the runner-up
//
// Data flows one way and nothing persists between calls: the same input
// always yields the same string, and concurrent callers are safe as long as
// each passes its own slice.
//
// # Spatial model
//
// A box center maps into a 3×3 grid (left/center/right × top/middle/bottom)
// using configurable split points, and the box's share of the frame area maps
// into a distance band ("very close" through "far away"). Categories with
// several instances are summarized by their aggregate footprint ("across the
// entire view", "on both sides") instead of being narrated one by one.
//
// # Degenerate input
//
// The pipeline never fails. Confidences clamp into [0,1] (NaN to 0), zero-
// area boxes classify as far away rather than dividing by zero, a
// non-positive frame falls back to the unit square, and an empty detection
// list yields a fixed "no objects" phrase. For an accessibility consumer an
// imperfect sentence beats a crash.
//
// # Configuration
//
// Config carries every tunable: threshold, zone split points, the distance
// band table, the mirrored-preview flag, and the overview category cap.
// Variants that historically forked this logic (front-camera mirroring, a
// coarser distance table) are plain configuration here.
package scene
