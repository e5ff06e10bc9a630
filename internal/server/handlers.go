package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
	"github.com/ironsheep/palette-tools-mcp/internal/legibility"
	"github.com/ironsheep/palette-tools-mcp/internal/swatch"
	"github.com/ironsheep/palette-tools-mcp/internal/theme"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_hsl_to_hex", "palette_random").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Validates palettes and themes before use
//  4. Calls the appropriate colormodel/theme/swatch/legibility function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color Conversion
	case "color_hsl_to_hex":
		return s.handleHSLToHex(args)
	case "color_hex_to_hsl":
		return s.handleHexToHSL(args)
	case "color_validate_hex":
		return s.handleValidateHex(args)

	// Accessibility
	case "color_contrast":
		return s.handleColorContrast(args)
	case "palette_check_contrast":
		return s.handlePaletteCheckContrast(args)
	case "palette_legibility":
		return s.handlePaletteLegibility(args)

	// Palette Generation
	case "palette_random":
		return s.handlePaletteRandom(args)
	case "palette_default":
		return s.handlePaletteDefault(args)

	// Export
	case "palette_export":
		return s.handlePaletteExport(args)
	case "palette_swatch":
		return s.handlePaletteSwatch(args)

	// Theme
	case "theme_stylesheet":
		return s.handleThemeStylesheet(args)
	case "theme_toggle_dark":
		return s.handleThemeToggleDark(args)

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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// randomPalette draws from the shared generator. rand.Rand is not safe for
// concurrent use.
func (s *Server) randomPalette(dark bool) (theme.Palette, colormodel.HarmonySet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return theme.RandomPalette(s.rng, dark)
}

// === Color Conversion Handlers ===

type hslArgs struct {
	HSL string `json:"hsl"`
}

// ConversionResult pairs both notations of one color.
type ConversionResult struct {
	HSL   string `json:"hsl"`
	Hex   string `json:"hex"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleHSLToHex(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, ok := colormodel.ParseHSL(a.HSL)
	return &ConversionResult{
		HSL:   a.HSL,
		Hex:   colormodel.HSLToHex(a.HSL),
		Valid: ok,
	}, nil
}

type hexArgs struct {
	Hex string `json:"hex"`
}

func (s *Server) handleHexToHSL(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if !colormodel.ValidateHexColor(a.Hex) {
		return nil, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", a.Hex)
	}
	hex := colormodel.ExpandHex(a.Hex)
	return &ConversionResult{
		HSL:   colormodel.HexToHSL(hex),
		Hex:   hex,
		Valid: true,
	}, nil
}

func (s *Server) handleValidateHex(args json.RawMessage) (interface{}, error) {
	var a hexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	valid := colormodel.ValidateHexColor(a.Hex)
	result := map[string]interface{}{
		"hex":   a.Hex,
		"valid": valid,
	}
	if valid {
		result["normalized"] = colormodel.ExpandHex(a.Hex)
	}
	return result, nil
}

// === Accessibility Handlers ===

type colorContrastArgs struct {
	Color1 string `json:"color1"`
	Color2 string `json:"color2"`
}

// ContrastResult reports the contrast between two colors.
type ContrastResult struct {
	Color1  string                   `json:"color1"`
	Color2  string                   `json:"color2"`
	Ratio   float64                  `json:"ratio"`
	Display string                   `json:"display"`
	Level   colormodel.ContrastLevel `json:"level"`
	PassAA  bool                     `json:"pass_aa"`
	PassAAA bool                     `json:"pass_aaa"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if _, ok := colormodel.ParseHSL(a.Color1); !ok {
		return nil, fmt.Errorf("color1 %q is not an HSL string", a.Color1)
	}
	if _, ok := colormodel.ParseHSL(a.Color2); !ok {
		return nil, fmt.Errorf("color2 %q is not an HSL string", a.Color2)
	}

	ratio := colormodel.ContrastRatio(a.Color1, a.Color2)
	return &ContrastResult{
		Color1:  a.Color1,
		Color2:  a.Color2,
		Ratio:   roundTo2(ratio),
		Display: fmt.Sprintf("%.2f:1", ratio),
		Level:   colormodel.Level(ratio),
		PassAA:  ratio >= colormodel.MinContrastAA,
		PassAAA: ratio >= colormodel.MinContrastAAA,
	}, nil
}

type paletteArgs struct {
	Palette *theme.Palette `json:"palette"`
}

// palette returns the validated palette argument.
func (a paletteArgs) palette() (theme.Palette, error) {
	if a.Palette == nil {
		return theme.Palette{}, fmt.Errorf("palette is required")
	}
	if err := a.Palette.Validate(); err != nil {
		return theme.Palette{}, err
	}
	return *a.Palette, nil
}

func (s *Server) handlePaletteCheckContrast(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.palette()
	if err != nil {
		return nil, err
	}
	report := theme.CheckContrast(p)
	return &report, nil
}

type paletteLegibilityArgs struct {
	paletteArgs
	Language string `json:"language"`
}

func (s *Server) handlePaletteLegibility(args json.RawMessage) (interface{}, error) {
	var a paletteLegibilityArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.palette()
	if err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.ocrLanguage
	}

	results, err := legibility.CheckPalette(p, a.Language)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"language": a.Language,
		"results":  results,
	}, nil
}

// === Palette Generation Handlers ===

type darkArgs struct {
	Dark bool `json:"dark"`
}

// RandomPaletteResult is a generated palette with the harmony behind it.
type RandomPaletteResult struct {
	Palette theme.Palette         `json:"palette"`
	Harmony colormodel.HarmonySet `json:"harmony"`
	Hex     map[string]string     `json:"hex"`
}

func (s *Server) handlePaletteRandom(args json.RawMessage) (interface{}, error) {
	var a darkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, set := s.randomPalette(a.Dark)
	return &RandomPaletteResult{
		Palette: p,
		Harmony: set,
		Hex:     hexMap(p),
	}, nil
}

func (s *Server) handlePaletteDefault(args json.RawMessage) (interface{}, error) {
	var a darkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p := theme.DefaultPaletteFor(a.Dark)
	return map[string]interface{}{
		"palette": p,
		"hex":     hexMap(p),
	}, nil
}

// hexMap keys each role's hex value by role name.
func hexMap(p theme.Palette) map[string]string {
	out := make(map[string]string, 5)
	for _, r := range p.Roles() {
		out[r.Name] = colormodel.HSLToHex(r.Value)
	}
	return out
}

// === Export Handlers ===

type paletteExportArgs struct {
	paletteArgs
	Format string `json:"format"`
}

func (s *Server) handlePaletteExport(args json.RawMessage) (interface{}, error) {
	var a paletteExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.palette()
	if err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = theme.FormatCSS
	}

	out, err := theme.Export(p, a.Format)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"format":  a.Format,
		"content": out,
	}, nil
}

type paletteSwatchArgs struct {
	paletteArgs
	Mode      string  `json:"mode"`
	Scale     float64 `json:"scale"`
	Grayscale bool    `json:"grayscale"`
}

func (s *Server) handlePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a paletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.palette()
	if err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	opts := swatch.Options{Scale: a.Scale, Grayscale: a.Grayscale}

	switch a.Mode {
	case "", "bands":
		return swatch.RenderPalette(p, opts)
	case "contrast":
		return swatch.RenderContrastSheet(p, opts)
	default:
		return nil, fmt.Errorf("unknown swatch mode %q: use bands or contrast", a.Mode)
	}
}

// === Theme Handlers ===

type themeArgs struct {
	Theme json.RawMessage `json:"theme"`
}

// decode decodes the theme argument, filling defaults for omitted fields.
func (a themeArgs) decode() (theme.Theme, error) {
	if len(a.Theme) == 0 {
		return theme.Theme{}, fmt.Errorf("theme is required")
	}
	return theme.Decode(bytes.NewReader(a.Theme))
}

func (s *Server) handleThemeStylesheet(args json.RawMessage) (interface{}, error) {
	var a themeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	t, err := a.decode()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"declarations": theme.StyleDeclarations(t),
		"stylesheet":   theme.ThemeStylesheet(t),
	}, nil
}

func (s *Server) handleThemeToggleDark(args json.RawMessage) (interface{}, error) {
	var a themeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	t, err := a.decode()
	if err != nil {
		return nil, err
	}
	toggled := theme.ToggleDark(t)
	return &toggled, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
