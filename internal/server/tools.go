package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// hslProperty describes an HSL string argument.
func hslProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ` as "<h> <s>% <l>%", e.g. "265 85% 50%"`,
	}
}

// paletteSchema describes the five-role palette object.
func paletteSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"primary":   hslProperty("Primary brand color"),
			"secondary": hslProperty("Secondary color"),
			"accent":    hslProperty("Accent color"),
			"bg":        hslProperty("Page background"),
			"text":      hslProperty("Body text color"),
		},
		"required":    []string{"primary", "secondary", "accent", "bg", "text"},
		"description": "Theme palette. Every role is an HSL string.",
	}
}

// themeSchema describes a theme document. Missing fields take defaults.
func themeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"colors":    paletteSchema(),
			"isDark":    map[string]interface{}{"type": "boolean"},
			"isRounded": map[string]interface{}{"type": "boolean"},
			"fontSize": map[string]interface{}{
				"type": "string",
				"enum": []string{"sm", "md", "lg"},
			},
			"fontFamily": map[string]interface{}{
				"type":        "string",
				"description": "One of PlusJakartaSans, Roboto, Georgia, Courier, Verdana, ComicSans",
			},
			"fontWeight": map[string]interface{}{
				"type": "string",
				"enum": []string{"400", "500", "600", "700", "800"},
			},
			"customFontName": map[string]interface{}{"type": "string"},
			"customFontUrl":  map[string]interface{}{"type": "string"},
		},
		"description": "Theme document. Omitted fields take the editor defaults (dark, rounded, md, PlusJakartaSans, 400).",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Conversion
		{
			Name:        "color_hsl_to_hex",
			Description: "Convert an HSL color string to #RRGGBB. Unparseable input yields #000000.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hsl": hslProperty("Color"),
				},
				"required": []string{"hsl"},
			},
		},
		{
			Name:        "color_hex_to_hsl",
			Description: "Convert a hex color (#RGB or #RRGGBB, '#' optional) to an HSL string.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, e.g. #6D13EC",
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_validate_hex",
			Description: "Check whether a string is a 3- or 6-digit hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{"type": "string"},
				},
				"required": []string{"hex"},
			},
		},

		// Accessibility
		{
			Name:        "color_contrast",
			Description: "Compute the WCAG contrast ratio of two HSL colors and its AA/AAA level.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": hslProperty("First color"),
					"color2": hslProperty("Second color"),
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "palette_check_contrast",
			Description: "Check text-on-background, button text, primary-on-background and accent-on-background contrast for a palette, and flag accent roles that look alike.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"palette": paletteSchema(),
				},
				"required": []string{"palette"},
			},
		},
		{
			Name:        "palette_legibility",
			Description: "Render sample text for each contrast pair of a palette and read it back with OCR.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"palette": paletteSchema(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Defaults to the server setting.",
					},
				},
				"required": []string{"palette"},
			},
		},

		// Palette Generation
		{
			Name:        "palette_random",
			Description: "Generate a harmonious palette (complementary, triadic, analogous or split-complementary). Background and text are the fixed defaults for the chosen mode.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dark": map[string]interface{}{
						"type":        "boolean",
						"description": "Use the dark-mode background and text. Default false.",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "palette_default",
			Description: "Return the default palette for light or dark mode.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"dark": map[string]interface{}{"type": "boolean", "default": false},
				},
			},
		},

		// Export
		{
			Name:        "palette_export",
			Description: "Export a palette as CSS custom properties, a Tailwind config snippet, or JSON.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"palette": paletteSchema(),
					"format": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"css", "tailwind", "json"},
						"default": "css",
					},
				},
				"required": []string{"palette"},
			},
		},
		{
			Name:        "palette_swatch",
			Description: "Render a palette as a PNG swatch (one band per role) or a contrast sheet, returned base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"palette": paletteSchema(),
					"mode": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"bands", "contrast"},
						"default": "bands",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (0-8]. Default 1.0",
						"default":     1.0,
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Render in grayscale to preview luminance differences only.",
						"default":     false,
					},
				},
				"required": []string{"palette"},
			},
		},

		// Theme
		{
			Name:        "theme_stylesheet",
			Description: "Project a theme onto its CSS custom properties and return the declarations and a :root stylesheet.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"theme": themeSchema(),
				},
				"required": []string{"theme"},
			},
		},
		{
			Name:        "theme_toggle_dark",
			Description: "Switch a theme between light and dark mode. Default backgrounds and text follow the mode; custom ones are kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"theme": themeSchema(),
				},
				"required": []string{"theme"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
