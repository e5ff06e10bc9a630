package theme

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestPalette_Validate(t *testing.T) {
	if err := DefaultPalette().Validate(); err != nil {
		t.Fatalf("default palette invalid: %v", err)
	}

	p := DefaultPalette()
	p.Accent = "orange"
	p.Text = ""
	err := p.Validate()
	if err == nil {
		t.Fatal("Validate should reject bad roles")
	}
	for _, want := range []string{"accent", "text: missing color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}

	p = DefaultPalette()
	p.Bg = "0 0% 140%"
	if err := p.Validate(); err == nil {
		t.Error("Validate should reject lightness above 100%")
	}
}

func TestDefaultPaletteFor(t *testing.T) {
	light := DefaultPaletteFor(false)
	if light.Bg != LightBackground || light.Text != LightText {
		t.Errorf("light defaults = %+v", light)
	}
	dark := DefaultPaletteFor(true)
	if dark.Bg != DarkBackground || dark.Text != DarkText {
		t.Errorf("dark defaults = %+v", dark)
	}
	if dark.Primary != light.Primary || dark.Secondary != light.Secondary || dark.Accent != light.Accent {
		t.Error("light and dark defaults should share primary, secondary and accent")
	}
}

func TestRandomPalette_PinsBackgroundAndText(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		dark := i%2 == 0
		p, set := RandomPalette(rng, dark)

		want := DefaultPaletteFor(dark)
		if p.Bg != want.Bg || p.Text != want.Text {
			t.Fatalf("random palette (dark=%v) bg/text = %q/%q, want %q/%q", dark, p.Bg, p.Text, want.Bg, want.Text)
		}
		if p.Primary != set.Primary || p.Secondary != set.Secondary || p.Accent != set.Accent {
			t.Fatalf("palette %+v does not carry harmony %+v", p, set)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("random palette invalid: %v", err)
		}
	}
}

func TestDecode_Defaults(t *testing.T) {
	got, err := Decode(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != Default() {
		t.Errorf("Decode({}) = %+v, want %+v", got, Default())
	}
}

func TestDecode_PartialDocument(t *testing.T) {
	doc := `{
		"isDark": false,
		"isRounded": false,
		"fontSize": "lg",
		"colors": {"primary": "10 90% 50%", "secondary": "40 90% 50%", "accent": "70 90% 50%", "bg": "0 0% 100%", "text": "0 0% 10%"}
	}`

	got, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.IsDark || got.IsRounded {
		t.Errorf("explicit false flags lost: %+v", got)
	}
	if got.FontSize != FontSizeLarge {
		t.Errorf("FontSize = %q, want lg", got.FontSize)
	}
	if got.FontWeight != "400" || got.FontFamily != DefaultFontFamily {
		t.Errorf("missing typography not defaulted: %+v", got)
	}
	if got.Colors.Primary != "10 90% 50%" {
		t.Errorf("Primary = %q", got.Colors.Primary)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed json", `{"isDark":`, "failed to decode"},
		{"bad font size", `{"fontSize": "xl"}`, "fontSize"},
		{"bad font weight", `{"fontWeight": "450"}`, "fontWeight"},
		{"bad color", `{"colors": {"primary": "blue", "secondary": "1 1% 1%", "accent": "1 1% 1%", "bg": "1 1% 1%", "text": "1 1% 1%"}}`, "primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("Decode should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEncode_DecodesBack(t *testing.T) {
	in := Default()
	in.CustomFontName = "Brand Sans"
	in.CustomFontURL = "https://example.com/brand.ttf"

	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out != in {
		t.Errorf("decoded %+v, want %+v", out, in)
	}
}

func TestToggleDark(t *testing.T) {
	dark := Default()

	light := ToggleDark(dark)
	if light.IsDark {
		t.Fatal("ToggleDark did not switch to light")
	}
	if light.Colors.Bg != LightBackground || light.Colors.Text != LightText {
		t.Errorf("light bg/text = %q/%q", light.Colors.Bg, light.Colors.Text)
	}

	back := ToggleDark(light)
	if back != dark {
		t.Errorf("toggling twice = %+v, want %+v", back, dark)
	}

	custom := Default()
	custom.Colors.Bg = "220 20% 15%"
	custom.Colors.Text = "0 0% 90%"
	toggled := ToggleDark(custom)
	if toggled.Colors.Bg != "220 20% 15%" || toggled.Colors.Text != "0 0% 90%" {
		t.Errorf("custom background overwritten: %+v", toggled.Colors)
	}
}

func TestWithRandomPalette_HonorsMode(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	got := WithRandomPalette(Default(), rng)
	if got.Colors.Bg != DarkBackground || got.Colors.Text != DarkText {
		t.Errorf("dark theme got bg/text %q/%q", got.Colors.Bg, got.Colors.Text)
	}

	light := Default()
	light.IsDark = false
	got = WithRandomPalette(light, rng)
	if got.Colors.Bg != LightBackground || got.Colors.Text != LightText {
		t.Errorf("light theme got bg/text %q/%q", got.Colors.Bg, got.Colors.Text)
	}
}

func TestResetPalette(t *testing.T) {
	th := Default()
	th.Colors.Primary = "1 1% 1%"
	if got := ResetPalette(th); got.Colors != DefaultDarkPalette() {
		t.Errorf("ResetPalette = %+v", got.Colors)
	}
}

func TestSetFontFamily_DropsCustomFont(t *testing.T) {
	th := Default()
	th.CustomFontName = "Brand"
	th.CustomFontURL = "data:font/ttf;base64,AAAA"

	got := SetFontFamily(th, "Georgia")
	if got.FontFamily != "Georgia" || got.CustomFontName != "" || got.CustomFontURL != "" {
		t.Errorf("SetFontFamily = %+v", got)
	}
}
