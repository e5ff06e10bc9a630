// Package theme holds the editor's theme records and everything derived from
// them: load-boundary validation, dark-mode defaults, CSS custom-property
// projection, export formats and the WCAG contrast report.
package theme

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
)

// Pinned background/text values for each mode.
const (
	LightBackground = "0 0% 100%"
	LightText       = "0 0% 10%"
	DarkBackground  = "0 0% 12%"
	DarkText        = "0 0% 95%"
)

// Palette is the five-role color set of a theme. Every value is an HSL
// string in the canonical "<h> <s>% <l>%" form.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Bg        string `json:"bg"`
	Text      string `json:"text"`
}

// Role pairs a palette role name with its value.
type Role struct {
	Name  string
	Value string
}

// Roles returns the palette's roles in display order.
func (p Palette) Roles() []Role {
	return []Role{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"bg", p.Bg},
		{"text", p.Text},
	}
}

// Validate checks that every role holds a parseable HSL value with
// saturation and lightness within 0-100.
func (p Palette) Validate() error {
	var errs []error
	for _, r := range p.Roles() {
		c, ok := colormodel.ParseHSL(r.Value)
		switch {
		case r.Value == "":
			errs = append(errs, fmt.Errorf("%s: missing color", r.Name))
		case !ok:
			errs = append(errs, fmt.Errorf("%s: %q is not an HSL color", r.Name, r.Value))
		case c.S > 100 || c.L > 100:
			errs = append(errs, fmt.Errorf("%s: %q saturation and lightness must be 0-100%%", r.Name, r.Value))
		}
	}
	return errors.Join(errs...)
}

// DefaultPalette returns the light-mode starting palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   "265 85% 50%",
		Secondary: "190 85% 50%",
		Accent:    "20 90% 50%",
		Bg:        LightBackground,
		Text:      LightText,
	}
}

// DefaultDarkPalette returns the dark-mode starting palette.
func DefaultDarkPalette() Palette {
	p := DefaultPalette()
	p.Bg = DarkBackground
	p.Text = DarkText
	return p
}

// DefaultPaletteFor picks the light or dark default.
func DefaultPaletteFor(dark bool) Palette {
	if dark {
		return DefaultDarkPalette()
	}
	return DefaultPalette()
}

// RandomPalette runs the harmony generator. Background and text are not
// randomized; they take the pinned values for the requested mode.
func RandomPalette(rng *rand.Rand, dark bool) (Palette, colormodel.HarmonySet) {
	set := colormodel.RandomHarmony(rng)
	return PaletteFromHarmony(set, dark), set
}

// PaletteFromHarmony fills a palette from a generated harmony set.
func PaletteFromHarmony(set colormodel.HarmonySet, dark bool) Palette {
	p := Palette{
		Primary:   set.Primary,
		Secondary: set.Secondary,
		Accent:    set.Accent,
		Bg:        LightBackground,
		Text:      LightText,
	}
	if dark {
		p.Bg = DarkBackground
		p.Text = DarkText
	}
	return p
}
