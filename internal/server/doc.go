// Package server implements the MCP (Model Context Protocol) server for the
// palette tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color engine,
// the theme projections and the swatch renderer through the MCP protocol, so
// an MCP client can build, check and export theme palettes.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Conversion:
//   - color_hsl_to_hex: HSL string to #RRGGBB
//   - color_hex_to_hsl: #RGB or #RRGGBB to HSL string
//   - color_validate_hex: Check and normalize a hex color
//
// Accessibility:
//   - color_contrast: WCAG ratio and level of two colors
//   - palette_check_contrast: Contrast report plus look-alike accent roles
//   - palette_legibility: OCR read-back of rendered sample text
//
// Palette Generation:
//   - palette_random: Harmony-based random palette
//   - palette_default: Light or dark default palette
//
// Export:
//   - palette_export: CSS variables, Tailwind config or JSON
//   - palette_swatch: PNG swatch or contrast sheet
//
// Theme:
//   - theme_stylesheet: Custom properties and :root stylesheet
//   - theme_toggle_dark: Switch mode, following default backgrounds
//
// # Random Source
//
// All palette_random calls share one generator guarded by a mutex. A non-zero
// PALETTE_MCP_SEED makes the sequence reproducible.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
