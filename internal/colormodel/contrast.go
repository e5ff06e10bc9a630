package colormodel

import "math"

// WCAG 2.0 contrast thresholds for normal-size text.
const (
	MinContrastAA  = 4.5
	MinContrastAAA = 7.0
)

// ContrastLevel is the WCAG conformance tier a contrast ratio reaches.
type ContrastLevel string

const (
	LevelAAA  ContrastLevel = "AAA"
	LevelAA   ContrastLevel = "AA"
	LevelFail ContrastLevel = "Fail"
)

// Level classifies a contrast ratio: >= 7 is AAA, >= 4.5 is AA.
func Level(ratio float64) ContrastLevel {
	switch {
	case ratio >= MinContrastAAA:
		return LevelAAA
	case ratio >= MinContrastAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// RelativeLuminance returns the WCAG relative luminance of c, in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts an sRGB channel to linear light.
func linearize(v uint8) float64 {
	x := float64(v) / 255
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio of two HSL strings.
//
// Both colors go through HSLToHex first, so unparseable input is measured as
// black. The result is symmetric and always >= 1.
func ContrastRatio(color1, color2 string) float64 {
	l1 := RelativeLuminance(hslToRGB(color1))
	l2 := RelativeLuminance(hslToRGB(color2))

	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// HasGoodContrast reports whether the pair meets WCAG AA for normal text.
func HasGoodContrast(color1, color2 string) bool {
	return ContrastRatio(color1, color2) >= MinContrastAA
}

// hslToRGB round-trips through the hex form so contrast is measured on the
// same 8-bit color a stylesheet would render.
func hslToRGB(hsl string) RGB {
	c, err := ParseHex(HSLToHex(hsl))
	if err != nil {
		return RGB{}
	}
	return c
}
