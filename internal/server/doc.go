// Package server exposes the narration toolkit over JSON-RPC 2.0 on
// stdin/stdout, following the MCP conventions (initialize, tools/list,
// tools/call, ping).
//
// The server is the hand-off boundary described in the system design: an
// upstream collaborator (camera pipeline plus inference engine) produces a
// detection list and frame size, calls scene_describe, and passes the
// returned narration to a speech synthesizer. The server holds no state
// between requests; every tool call is a pure function of its arguments
// (plus, for the snapshot tools, the image file they name).
//
// # Tools
//
//   - scene_describe: full narration of a detection list
//   - scene_zones: per-detection zone and distance classification
//   - scene_relation: directional phrase between two boxes
//   - scene_overlay: detection boxes and zone grid drawn over a snapshot
//   - scene_enhance: low-vision contrast/brightness boost for a snapshot
//   - scene_color_hint: spoken color name for a detection region
//   - scene_read_text: OCR a snapshot and compose the spoken reading
//
// # Protocol
//
// Requests are newline-delimited JSON-RPC 2.0 objects on stdin; responses go
// to stdout. Logging goes to stderr so it never corrupts the protocol
// stream. Tool results are wrapped in MCP's content format:
//
//	{"content": [{"type": "text", "text": "<JSON result>"}]}
package server
