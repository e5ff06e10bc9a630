package theme

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
)

// Export formats accepted by Export.
const (
	FormatCSS      = "css"
	FormatTailwind = "tailwind"
	FormatJSON     = "json"
)

// Declaration is one CSS custom property.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// StyleDeclarations projects a theme onto the custom properties the preview
// stylesheet reads.
func StyleDeclarations(t Theme) []Declaration {
	radius := "0px"
	if t.IsRounded {
		radius = "1rem"
	}

	family := t.CustomFontName
	if family == "" {
		family = FontFamilies[t.FontFamily]
	}
	if family == "" {
		family = "inherit"
	}

	return []Declaration{
		{"--color-primary", t.Colors.Primary},
		{"--color-secondary", t.Colors.Secondary},
		{"--color-accent", t.Colors.Accent},
		{"--color-bg", t.Colors.Bg},
		{"--color-text", t.Colors.Text},
		{"--font-size", t.FontSize.Pixels()},
		{"--radius", radius},
		{"--font-family", family},
		{"--font-weight", t.FontWeight},
	}
}

// ThemeStylesheet renders every declaration inside a :root block. Dark
// themes get the class hint the preview uses to switch its base styles, and
// a custom font gets its @font-face rule.
func ThemeStylesheet(t Theme) string {
	var b strings.Builder

	if t.CustomFontURL != "" {
		name := t.CustomFontName
		if name == "" {
			name = "CustomFont"
		}
		fmt.Fprintf(&b, "@font-face {\n  font-family: '%s';\n  src: url('%s') format('truetype');\n  font-weight: normal;\n}\n\n", name, t.CustomFontURL)
	}

	b.WriteString(":root {\n")
	for _, d := range StyleDeclarations(t) {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Property, d.Value)
	}
	b.WriteString("}")

	if t.IsDark {
		b.WriteString("\n\n/* apply to <html class=\"dark\"> */")
	}
	return b.String()
}

// CSSVariables renders the palette as a :root block of HSL custom properties.
func CSSVariables(p Palette) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-accent: %s;
  --color-bg: %s;
  --color-text: %s;
}`, p.Primary, p.Secondary, p.Accent, p.Bg, p.Text)
}

// TailwindConfig renders a tailwind.config snippet mapping the palette to hex
// colors.
func TailwindConfig(p Palette) string {
	return fmt.Sprintf(`export default {
  theme: {
    extend: {
      colors: {
        primary: '%s',
        secondary: '%s',
        accent: '%s',
        background: '%s',
        text: '%s',
      }
    }
  }
}`,
		colormodel.HSLToHex(p.Primary),
		colormodel.HSLToHex(p.Secondary),
		colormodel.HSLToHex(p.Accent),
		colormodel.HSLToHex(p.Bg),
		colormodel.HSLToHex(p.Text),
	)
}

// ColorEntry is one role of the JSON export.
type ColorEntry struct {
	Role string `json:"role"`
	HSL  string `json:"hsl"`
	Hex  string `json:"hex"`
}

// PaletteJSON renders every role with both its HSL and hex form.
func PaletteJSON(p Palette) ([]byte, error) {
	roles := p.Roles()
	entries := make([]ColorEntry, 0, len(roles))
	for _, r := range roles {
		entries = append(entries, ColorEntry{
			Role: r.Name,
			HSL:  r.Value,
			Hex:  colormodel.HSLToHex(r.Value),
		})
	}

	b, err := json.MarshalIndent(map[string]interface{}{"colors": entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return b, nil
}

// Export renders the palette in the named format.
func Export(p Palette, format string) (string, error) {
	switch format {
	case FormatCSS, "":
		return CSSVariables(p), nil
	case FormatTailwind:
		return TailwindConfig(p), nil
	case FormatJSON:
		b, err := PaletteJSON(p)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want css, tailwind or json)", format)
	}
}
