package colormodel

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FallbackHex is the value HSLToHex returns for unparseable input.
const FallbackHex = "#000000"

var (
	hslPattern = regexp.MustCompile(`(\d+)\s+(\d+)%\s+(\d+)%`)
	hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)
)

// RGB represents a color with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex formats the color as "#RRGGBB" with uppercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// String returns the canonical "<h> <s>% <l>%" form.
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// ParseHSL finds the first "<h> <s>% <l>%" triple in s.
//
// The search is not anchored, so wrapped forms such as "hsl(0 0% 100%)" parse
// as well. Components are returned as written; no range checks are applied.
func ParseHSL(s string) (HSL, bool) {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return HSL{}, false
	}

	var vals [3]int
	for i := range vals {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return HSL{}, false
		}
		vals[i] = v
	}
	return HSL{H: vals[0], S: vals[1], L: vals[2]}, true
}

// HSLToHex converts an HSL string to "#RRGGBB".
//
// Hue is taken modulo 360 and saturation/lightness are clamped to 0-100.
// Input with no HSL triple yields FallbackHex.
func HSLToHex(hsl string) string {
	c, ok := ParseHSL(hsl)
	if !ok {
		return FallbackHex
	}
	return HSLToRGB(c).Hex()
}

// HSLToRGB converts an HSL value to RGB using the six 60-degree hue sectors.
func HSLToRGB(c HSL) RGB {
	h := math.Mod(float64(c.H), 360)
	if h < 0 {
		h += 360
	}
	s := clampUnit(float64(c.S) / 100)
	l := clampUnit(float64(c.L) / 100)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
	}
}

// HexToHSL converts a 6-digit hex string, with or without '#', to the
// canonical HSL string.
//
// The input is not validated. A channel that cannot be read as two hex digits
// is treated as 0, so malformed input produces a well-formed but meaningless
// result. Use ValidateHexColor or ParseHex when the input is untrusted.
func HexToHSL(hex string) string {
	cleaned := strings.Replace(hex, "#", "", 1)
	return RGBToHSL(RGB{
		R: readChannel(cleaned, 0),
		G: readChannel(cleaned, 2),
		B: readChannel(cleaned, 4),
	}).String()
}

// RGBToHSL converts 8-bit RGB values to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Lightness is (max + min) / 2
//  3. Saturation is 0 for grays, otherwise scaled by lightness
//  4. Hue comes from whichever component is max
//
// All three components are rounded to the nearest integer. A hue that rounds
// up to 360 is reported as 0.
func RGBToHSL(c RGB) HSL {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2.0

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = 2.0 + (bf-rf)/d
		default:
			h = 4.0 + (rf-gf)/d
		}
		h /= 6
	}

	return HSL{
		H: roundHalfUp(h*360) % 360,
		S: roundHalfUp(s * 100),
		L: roundHalfUp(l * 100),
	}
}

// ParseHex strictly parses "#RGB", "#RRGGBB" or the same without '#'.
func ParseHex(hex string) (RGB, error) {
	if !ValidateHexColor(hex) {
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}
	full := strings.TrimPrefix(ExpandHex(hex), "#")
	val, err := strconv.ParseUint(full, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val)}, nil
}

// ValidateHexColor reports whether hex is exactly 3 or 6 hex digits,
// optionally prefixed with '#'.
func ValidateHexColor(hex string) bool {
	return hexPattern.MatchString(hex)
}

// ExpandHex returns the "#RRGGBB" form of a 3- or 6-digit hex color.
// Input that is not a valid hex color is returned unchanged.
func ExpandHex(hex string) string {
	if !ValidateHexColor(hex) {
		return hex
	}
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + strings.ToUpper(digits)
}

// FormatHex normalizes a hex string for display: '#' removed wherever it
// first appears, digits uppercased, one '#' prefixed.
func FormatHex(hex string) string {
	return "#" + strings.ToUpper(strings.Replace(hex, "#", "", 1))
}

func readChannel(s string, at int) uint8 {
	if len(s) < at+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[at:at+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// toByte maps a 0-1 channel to 0-255, rounding half up.
func toByte(v float64) uint8 {
	n := roundHalfUp(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
