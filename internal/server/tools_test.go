package server

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()
	if len(tools) == 0 {
		t.Fatal("No tools defined")
	}

	seen := make(map[string]bool)
	for _, tool := range tools {
		if tool.Name == "" {
			t.Error("Tool with empty name")
		}
		if seen[tool.Name] {
			t.Errorf("Duplicate tool name: %s", tool.Name)
		}
		seen[tool.Name] = true

		if tool.Description == "" {
			t.Errorf("Tool %s has no description", tool.Name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("Tool %s schema is not an object", tool.Name)
		}
	}

	for _, name := range []string{
		"scene_describe", "scene_zones", "scene_relation",
		"scene_overlay", "scene_enhance", "scene_color_hint",
		"scene_read_text",
	} {
		if !seen[name] {
			t.Errorf("Missing tool %s", name)
		}
	}
}

func TestGetToolDefinitions_SchemasMarshal(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if _, err := json.Marshal(tool); err != nil {
			t.Errorf("Tool %s schema does not marshal: %v", tool.Name, err)
		}
	}
}

func TestEveryDefinedToolIsDispatchable(t *testing.T) {
	s := newTestServer()

	for _, tool := range GetToolDefinitions() {
		// Empty arguments may fail execution, but never with "unknown
		// tool" — that would mean the schema table and the dispatcher
		// drifted apart.
		_, err := s.executeTool(tool.Name, json.RawMessage(`{}`))
		if err != nil && strings.Contains(err.Error(), "unknown tool") {
			t.Errorf("Tool %s is defined but not dispatchable", tool.Name)
		}
	}
}
