package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// FontSize is the base text size tier.
type FontSize string

const (
	FontSizeSmall  FontSize = "sm"
	FontSizeMedium FontSize = "md"
	FontSizeLarge  FontSize = "lg"
)

// Pixels returns the CSS size for the tier.
func (f FontSize) Pixels() string {
	switch f {
	case FontSizeSmall:
		return "14px"
	case FontSizeLarge:
		return "18px"
	default:
		return "16px"
	}
}

func (f FontSize) valid() bool {
	return f == FontSizeSmall || f == FontSizeMedium || f == FontSizeLarge
}

// FontWeights are the accepted font-weight values.
var FontWeights = []string{"400", "500", "600", "700", "800"}

// FontFamilies maps the editor's family keys to CSS font stacks.
var FontFamilies = map[string]string{
	"PlusJakartaSans": `"Plus Jakarta Sans", sans-serif`,
	"Roboto":          `"Roboto", sans-serif`,
	"Georgia":         `Georgia, "Times New Roman", serif`,
	"Courier":         `"Courier New", monospace`,
	"Verdana":         `Verdana, Geneva, sans-serif`,
	"ComicSans":       `"Comic Sans MS", cursive`,
}

// DefaultFontFamily is the family key used when none is set.
const DefaultFontFamily = "PlusJakartaSans"

// Theme is the full editable state minus text content.
type Theme struct {
	Colors         Palette  `json:"colors"`
	IsDark         bool     `json:"isDark"`
	IsRounded      bool     `json:"isRounded"`
	FontSize       FontSize `json:"fontSize"`
	FontFamily     string   `json:"fontFamily"`
	FontWeight     string   `json:"fontWeight"`
	CustomFontURL  string   `json:"customFontUrl,omitempty"`
	CustomFontName string   `json:"customFontName,omitempty"`
}

// Default returns the starting theme: dark, rounded, medium text.
func Default() Theme {
	return Theme{
		Colors:     DefaultDarkPalette(),
		IsDark:     true,
		IsRounded:  true,
		FontSize:   FontSizeMedium,
		FontFamily: DefaultFontFamily,
		FontWeight: "400",
	}
}

// Validate checks the palette and the typography enums.
func (t Theme) Validate() error {
	var errs []error
	if err := t.Colors.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("colors: %w", err))
	}
	if !t.FontSize.valid() {
		errs = append(errs, fmt.Errorf("fontSize: %q is not one of sm, md, lg", t.FontSize))
	}
	if !validWeight(t.FontWeight) {
		errs = append(errs, fmt.Errorf("fontWeight: %q is not one of %v", t.FontWeight, FontWeights))
	}
	return errors.Join(errs...)
}

func validWeight(w string) bool {
	for _, fw := range FontWeights {
		if w == fw {
			return true
		}
	}
	return false
}

// rawTheme uses pointers so absent booleans can be told apart from false.
type rawTheme struct {
	Colors         *Palette `json:"colors"`
	IsDark         *bool    `json:"isDark"`
	IsRounded      *bool    `json:"isRounded"`
	FontSize       FontSize `json:"fontSize"`
	FontFamily     string   `json:"fontFamily"`
	FontWeight     string   `json:"fontWeight"`
	CustomFontURL  string   `json:"customFontUrl"`
	CustomFontName string   `json:"customFontName"`
}

// Decode reads a theme document. Missing fields take the values of Default;
// present fields must be valid.
func Decode(r io.Reader) (Theme, error) {
	var raw rawTheme
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Theme{}, fmt.Errorf("failed to decode theme: %w", err)
	}

	t := Default()
	if raw.Colors != nil {
		t.Colors = *raw.Colors
	}
	if raw.IsDark != nil {
		t.IsDark = *raw.IsDark
	}
	if raw.IsRounded != nil {
		t.IsRounded = *raw.IsRounded
	}
	if raw.FontSize != "" {
		t.FontSize = raw.FontSize
	}
	if raw.FontFamily != "" {
		t.FontFamily = raw.FontFamily
	}
	if raw.FontWeight != "" {
		t.FontWeight = raw.FontWeight
	}
	t.CustomFontURL = raw.CustomFontURL
	t.CustomFontName = raw.CustomFontName

	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	return t, nil
}

// Encode writes the theme as indented JSON.
func (t Theme) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	return nil
}

// ToggleDark flips the mode. Background and text follow only while they hold
// the previous mode's pinned background, so a custom background is kept.
func ToggleDark(t Theme) Theme {
	t.IsDark = !t.IsDark
	if t.IsDark && t.Colors.Bg == LightBackground {
		t.Colors.Bg = DarkBackground
		t.Colors.Text = DarkText
	}
	if !t.IsDark && t.Colors.Bg == DarkBackground {
		t.Colors.Bg = LightBackground
		t.Colors.Text = LightText
	}
	return t
}

// WithRandomPalette replaces the colors with a generated harmony honoring
// the theme's mode.
func WithRandomPalette(t Theme, rng *rand.Rand) Theme {
	t.Colors, _ = RandomPalette(rng, t.IsDark)
	return t
}

// ResetPalette restores the default palette for the theme's mode.
func ResetPalette(t Theme) Theme {
	t.Colors = DefaultPaletteFor(t.IsDark)
	return t
}

// SetFontFamily selects a family and drops any custom font.
func SetFontFamily(t Theme, family string) Theme {
	t.FontFamily = family
	t.CustomFontURL = ""
	t.CustomFontName = ""
	return t
}
