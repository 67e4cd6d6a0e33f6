package server

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/rudrakshass/HearMeOut/internal/ocr"
	"github.com/rudrakshass/HearMeOut/internal/overlay"
	"github.com/rudrakshass/HearMeOut/internal/scene"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "scene_describe").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool. Tool execution errors return a JSON-RPC error response with code
// -32000; the narration tools themselves never fail on detection content,
// only on malformed JSON or unreadable snapshot files.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.WithField("tool", params.Name).WithError(err).Warn("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Narration
	case "scene_describe":
		return s.handleSceneDescribe(args)
	case "scene_zones":
		return s.handleSceneZones(args)
	case "scene_relation":
		return s.handleSceneRelation(args)

	// Snapshot companions
	case "scene_overlay":
		return s.handleSceneOverlay(args)
	case "scene_enhance":
		return s.handleSceneEnhance(args)
	case "scene_color_hint":
		return s.handleSceneColorHint(args)

	// Text reading
	case "scene_read_text":
		return s.handleSceneReadText(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadImage reads and decodes a snapshot from disk. Supported formats are
// PNG, JPEG, and GIF.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// narrationConfig applies per-call overrides on top of the server defaults.
// A zero threshold means "not provided" and keeps the default, matching the
// schema's documented behavior.
func (s *Server) narrationConfig(threshold float64, mirrored bool) scene.Config {
	cfg := s.narration
	if threshold > 0 {
		cfg.Threshold = threshold
	}
	if mirrored {
		cfg.Mirrored = true
	}
	return cfg
}

// === Narration Handlers ===

type sceneDescribeArgs struct {
	Detections []scene.Detection `json:"detections"`
	Frame      scene.Frame       `json:"frame"`
	Threshold  float64           `json:"threshold"`
	Mirrored   bool              `json:"mirrored"`
}

func (s *Server) handleSceneDescribe(args json.RawMessage) (interface{}, error) {
	var a sceneDescribeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg := s.narrationConfig(a.Threshold, a.Mirrored)
	return cfg.Narrate(a.Detections, a.Frame), nil
}

type sceneZonesArgs struct {
	Detections []scene.Detection `json:"detections"`
	Frame      scene.Frame       `json:"frame"`
	Mirrored   bool              `json:"mirrored"`
}

// zoneEntry pairs a detection's label with its classification.
type zoneEntry struct {
	Label string     `json:"label"`
	Zone  scene.Zone `json:"zone"`
}

func (s *Server) handleSceneZones(args json.RawMessage) (interface{}, error) {
	var a sceneZonesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg := s.narrationConfig(0, a.Mirrored)

	zones := make([]zoneEntry, 0, len(a.Detections))
	for _, d := range a.Detections {
		zones = append(zones, zoneEntry{
			Label: d.Label,
			Zone:  cfg.Classify(d.Box, a.Frame),
		})
	}
	return map[string]interface{}{"zones": zones}, nil
}

type sceneRelationArgs struct {
	BoxA  scene.Box   `json:"box_a"`
	BoxB  scene.Box   `json:"box_b"`
	Frame scene.Frame `json:"frame"`
}

func (s *Server) handleSceneRelation(args json.RawMessage) (interface{}, error) {
	var a sceneRelationArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"relation": scene.RelationIn(a.BoxA, a.BoxB, a.Frame),
	}, nil
}

// === Snapshot Companion Handlers ===

type sceneOverlayArgs struct {
	Path       string            `json:"path"`
	Detections []scene.Detection `json:"detections"`
	Frame      scene.Frame       `json:"frame"`
	ShowGrid   bool              `json:"show_grid"`
	Scale      float64           `json:"scale"`
}

func (s *Server) handleSceneOverlay(args json.RawMessage) (interface{}, error) {
	var a sceneOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return overlay.Render(img, a.Detections, a.Frame, overlay.RenderOptions{
		ShowGrid:    a.ShowGrid,
		LeftSplit:   s.narration.LeftSplit,
		RightSplit:  s.narration.RightSplit,
		TopSplit:    s.narration.TopSplit,
		BottomSplit: s.narration.BottomSplit,
		Scale:       a.Scale,
	})
}

type sceneEnhanceArgs struct {
	Path       string  `json:"path"`
	Contrast   float64 `json:"contrast"`
	Brightness float64 `json:"brightness"`
}

func (s *Server) handleSceneEnhance(args json.RawMessage) (interface{}, error) {
	var a sceneEnhanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Contrast == 0 {
		a.Contrast = 0.3
	}
	if a.Brightness == 0 {
		a.Brightness = 0.1
	}
	img, err := loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return overlay.Enhance(img, a.Contrast, a.Brightness)
}

type sceneColorHintArgs struct {
	Path  string      `json:"path"`
	Box   scene.Box   `json:"box"`
	Frame scene.Frame `json:"frame"`
}

func (s *Server) handleSceneColorHint(args json.RawMessage) (interface{}, error) {
	var a sceneColorHintArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return overlay.DominantColor(img, a.Box, a.Frame)
}

// === Text Reading Handlers ===

type sceneReadTextArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

// readTextResult couples the raw OCR output with its spoken form.
type readTextResult struct {
	Narration string          `json:"narration"`
	Text      *ocr.TextResult `json:"text"`
}

func (s *Server) handleSceneReadText(args json.RawMessage) (interface{}, error) {
	var a sceneReadTextArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result, err := ocr.ExtractText(a.Path, a.Language)
	if err != nil {
		return nil, err
	}
	return readTextResult{
		Narration: ocr.Narrate(result),
		Text:      result,
	}, nil
}
