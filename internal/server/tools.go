package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// boxSchema describes one bounding box argument.
func boxSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"top":    map[string]interface{}{"type": "number"},
			"left":   map[string]interface{}{"type": "number"},
			"bottom": map[string]interface{}{"type": "number"},
			"right":  map[string]interface{}{"type": "number"},
		},
		"required":    []string{"top", "left", "bottom", "right"},
		"description": desc,
	}
}

// detectionsSchema describes the detection-list argument shared by the
// narration tools.
func detectionsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"label":        map[string]interface{}{"type": "string", "description": "Category name from the detector, e.g. 'person'"},
				"confidence":   map[string]interface{}{"type": "number", "description": "Detector score 0-1"},
				"bounding_box": boxSchema("Bounding box in the supplied frame's coordinates"),
			},
			"required": []string{"label", "confidence", "bounding_box"},
		},
		"description": "Detections from the upstream object detector",
	}
}

// frameSchema describes the viewport argument. Omitting it (or passing zero
// dimensions) means the boxes are already normalized to the unit square.
func frameSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"width":  map[string]interface{}{"type": "number"},
			"height": map[string]interface{}{"type": "number"},
		},
		"description": "Viewport the boxes are expressed in. Omit for normalized boxes.",
	}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Narration
		{
			Name:        "scene_describe",
			Description: "Compose a spoken scene description from a detection list: object counts, the most prominent object's position and distance, and where the runner-up sits relative to it. The result is ready to hand to a speech synthesizer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"detections": detectionsSchema(),
					"frame":      frameSchema(),
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Minimum confidence to narrate (0-1, default 0.5)",
						"default":     0.5,
					},
					"mirrored": map[string]interface{}{
						"type":        "boolean",
						"description": "Swap left/right for a mirrored front-camera preview",
						"default":     false,
					},
				},
				"required": []string{"detections"},
			},
		},
		{
			Name:        "scene_zones",
			Description: "Classify each detection into its 3x3 zone (left/center/right, top/middle/bottom) and distance band. Useful for overlays and debugging the narration.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"detections": detectionsSchema(),
					"frame":      frameSchema(),
					"mirrored": map[string]interface{}{
						"type":        "boolean",
						"description": "Swap left/right for a mirrored front-camera preview",
						"default":     false,
					},
				},
				"required": []string{"detections"},
			},
		},
		{
			Name:        "scene_relation",
			Description: "Describe where the second box sits relative to the first ('to the left', 'above', ...).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"box_a": boxSchema("Reference box"),
					"box_b": boxSchema("Box being placed relative to box_a"),
					"frame": frameSchema(),
				},
				"required": []string{"box_a", "box_b"},
			},
		},

		// Snapshot companions
		{
			Name:        "scene_overlay",
			Description: "Draw detection boxes and an optional zone grid over a snapshot image. Returns base64 PNG for display next to the spoken narration.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image",
					},
					"detections": detectionsSchema(),
					"frame":      frameSchema(),
					"show_grid": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the 3x3 zone grid lines",
						"default":     false,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional output scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "detections"},
			},
		},
		{
			Name:        "scene_enhance",
			Description: "Apply a contrast/brightness boost to a snapshot for low-vision viewing. Returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image",
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Relative contrast change, -1 to 1 (default 0.3)",
						"default":     0.3,
					},
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Relative brightness change, -1 to 1 (default 0.1)",
						"default":     0.1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "scene_color_hint",
			Description: "Name the dominant color inside a detection region ('red', 'dark blue', ...), so the narration can mention it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image",
					},
					"box":   boxSchema("Detection region to sample"),
					"frame": frameSchema(),
				},
				"required": []string{"path", "box"},
			},
		},

		// Text reading
		{
			Name:        "scene_read_text",
			Description: "Recognize printed text in a snapshot and compose the spoken reading ('The text reads: ...'). Lines are ordered top to bottom, words left to right.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the snapshot image",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint (default 'eng')",
						"default":     "eng",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
