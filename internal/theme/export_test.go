package theme

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCSSVariables(t *testing.T) {
	want := `:root {
  --color-primary: 265 85% 50%;
  --color-secondary: 190 85% 50%;
  --color-accent: 20 90% 50%;
  --color-bg: 0 0% 100%;
  --color-text: 0 0% 10%;
}`
	if got := CSSVariables(DefaultPalette()); got != want {
		t.Errorf("CSSVariables =\n%s\nwant\n%s", got, want)
	}
}

func TestTailwindConfig(t *testing.T) {
	want := `export default {
  theme: {
    extend: {
      colors: {
        primary: '#6D13EC',
        secondary: '#13C8EC',
        accent: '#F2590D',
        background: '#FFFFFF',
        text: '#1A1A1A',
      }
    }
  }
}`
	if got := TailwindConfig(DefaultPalette()); got != want {
		t.Errorf("TailwindConfig =\n%s\nwant\n%s", got, want)
	}
}

func TestTailwindConfig_UnparseableRoleIsBlack(t *testing.T) {
	p := DefaultPalette()
	p.Accent = "not a color"
	if got := TailwindConfig(p); !strings.Contains(got, "accent: '#000000'") {
		t.Errorf("unparseable accent not exported as black:\n%s", got)
	}
}

func TestPaletteJSON(t *testing.T) {
	b, err := PaletteJSON(DefaultDarkPalette())
	if err != nil {
		t.Fatalf("PaletteJSON failed: %v", err)
	}

	var doc struct {
		Colors []ColorEntry `json:"colors"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(doc.Colors) != 5 {
		t.Fatalf("got %d entries, want 5", len(doc.Colors))
	}
	if doc.Colors[0].Role != "primary" || doc.Colors[0].Hex != "#6D13EC" {
		t.Errorf("first entry = %+v", doc.Colors[0])
	}
	if doc.Colors[3].Role != "bg" || doc.Colors[3].Hex != "#1F1F1F" {
		t.Errorf("bg entry = %+v", doc.Colors[3])
	}
}

func TestExport(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		format string
		want   string
	}{
		{"", "--color-primary"},
		{FormatCSS, "--color-primary"},
		{FormatTailwind, "export default"},
		{FormatJSON, `"role": "primary"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Export(p, tt.format)
			if err != nil {
				t.Fatalf("Export(%q) failed: %v", tt.format, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Export(%q) missing %q:\n%s", tt.format, tt.want, got)
			}
		})
	}

	if _, err := Export(p, "scss"); err == nil {
		t.Error("Export should reject unknown formats")
	}
}

func TestStyleDeclarations(t *testing.T) {
	th := Default()
	th.IsRounded = false
	th.FontSize = FontSizeSmall
	th.FontFamily = "Georgia"
	th.FontWeight = "700"

	got := map[string]string{}
	for _, d := range StyleDeclarations(th) {
		got[d.Property] = d.Value
	}

	want := map[string]string{
		"--color-primary": "265 85% 50%",
		"--color-bg":      DarkBackground,
		"--color-text":    DarkText,
		"--font-size":     "14px",
		"--radius":        "0px",
		"--font-family":   `Georgia, "Times New Roman", serif`,
		"--font-weight":   "700",
	}
	for prop, val := range want {
		if got[prop] != val {
			t.Errorf("%s = %q, want %q", prop, got[prop], val)
		}
	}
}

func TestStyleDeclarations_FontFallbacks(t *testing.T) {
	th := Default()
	th.CustomFontName = "Brand Sans"
	if got := familyOf(StyleDeclarations(th)); got != "Brand Sans" {
		t.Errorf("custom font family = %q", got)
	}

	th = Default()
	th.FontFamily = "Unknown"
	if got := familyOf(StyleDeclarations(th)); got != "inherit" {
		t.Errorf("unknown family = %q, want inherit", got)
	}
}

func TestThemeStylesheet(t *testing.T) {
	th := Default()
	th.CustomFontURL = "https://example.com/brand.ttf"

	got := ThemeStylesheet(th)
	for _, want := range []string{
		"@font-face",
		"font-family: 'CustomFont'",
		":root {\n  --color-primary: 265 85% 50%;",
		"  --radius: 1rem;\n",
		"class=\"dark\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, got)
		}
	}

	th = Default()
	th.IsDark = false
	if strings.Contains(ThemeStylesheet(th), "dark") {
		t.Error("light stylesheet should not carry the dark hint")
	}
}

func familyOf(decls []Declaration) string {
	for _, d := range decls {
		if d.Property == "--font-family" {
			return d.Value
		}
	}
	return ""
}
