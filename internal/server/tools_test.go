package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_hsl_to_hex",
		"color_hex_to_hsl",
		"color_validate_hex",
		"color_contrast",
		"palette_check_contrast",
		"palette_legibility",
		"palette_random",
		"palette_default",
		"palette_export",
		"palette_swatch",
		"theme_stylesheet",
		"theme_toggle_dark",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema missing 'properties' map")
			}
		})
	}
}

// Every executeTool case must be advertised and every advertised tool must
// be handled.
func TestToolDefinitions_AllDispatched(t *testing.T) {
	s := New(nil)
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, nil)
		if err != nil && err.Error() == "unknown tool: "+tool.Name {
			t.Errorf("tool %s is listed but not dispatched", tool.Name)
		}
	}
}

func TestToolDefinitions_RequiredArgs(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{"color_hsl_to_hex", []string{"hsl"}},
		{"color_hex_to_hsl", []string{"hex"}},
		{"color_validate_hex", []string{"hex"}},
		{"color_contrast", []string{"color1", "color2"}},
		{"palette_check_contrast", []string{"palette"}},
		{"palette_legibility", []string{"palette"}},
		{"palette_export", []string{"palette"}},
		{"palette_swatch", []string{"palette"}},
		{"theme_stylesheet", []string{"theme"}},
		{"theme_toggle_dark", []string{"theme"}},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := toolMap[tt.tool]
			if !ok {
				t.Fatalf("tool %s not found", tt.tool)
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema missing 'required' list")
			}
			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, want := range tt.required {
				found := false
				for _, r := range required {
					if r == want {
						found = true
					}
				}
				if !found {
					t.Errorf("%q not required", want)
				}
				if _, ok := props[want]; !ok {
					t.Errorf("%q has no property schema", want)
				}
			}
		})
	}
}

func TestPaletteSchema_Roles(t *testing.T) {
	schema := paletteSchema()
	props := schema["properties"].(map[string]interface{})
	for _, role := range []string{"primary", "secondary", "accent", "bg", "text"} {
		if _, ok := props[role]; !ok {
			t.Errorf("palette schema missing %s", role)
		}
	}
}
