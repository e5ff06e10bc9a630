package colormodel

import (
	"fmt"
	"math/rand"
)

// Harmony names a fixed set of hue offsets from a base hue.
type Harmony string

const (
	Complementary      Harmony = "complementary"
	Triadic            Harmony = "triadic"
	Analogous          Harmony = "analogous"
	SplitComplementary Harmony = "split-complementary"
)

// Harmonies lists every scheme in the order the generator draws from.
var Harmonies = []Harmony{Complementary, Triadic, Analogous, SplitComplementary}

// accentShift is the hue offset used to synthesize a third color for
// two-color schemes.
const accentShift = 45

// Ranges of the generator's shared saturation and lightness, half-open.
const (
	MinSaturation = 75
	MaxSaturation = 100
	MinLightness  = 48
	MaxLightness  = 63
)

// Offsets returns the hue offsets of the scheme. Unknown schemes fall back to
// triadic.
func (h Harmony) Offsets() []int {
	switch h {
	case Complementary:
		return []int{0, 180}
	case Analogous:
		return []int{0, 30, 330}
	case SplitComplementary:
		return []int{0, 150, 210}
	default:
		return []int{0, 60, 120}
	}
}

// ParseHarmony maps a scheme name to a Harmony.
func ParseHarmony(name string) (Harmony, error) {
	for _, h := range Harmonies {
		if string(h) == name {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown harmony %q", name)
}

// HarmonySet is the output of the harmony generator: three HSL strings that
// share one saturation and one lightness.
type HarmonySet struct {
	Harmony    Harmony `json:"harmony"`
	BaseHue    int     `json:"base_hue"`
	Saturation int     `json:"saturation"`
	Lightness  int     `json:"lightness"`
	Primary    string  `json:"primary"`
	Secondary  string  `json:"secondary"`
	Accent     string  `json:"accent"`
}

// RandomHarmony draws a base hue, a scheme, a saturation and a lightness
// from rng and builds the matching HarmonySet.
func RandomHarmony(rng *rand.Rand) HarmonySet {
	baseHue := rng.Intn(360)
	scheme := Harmonies[rng.Intn(len(Harmonies))]
	saturation := MinSaturation + rng.Intn(MaxSaturation-MinSaturation)
	lightness := MinLightness + rng.Intn(MaxLightness-MinLightness)
	return BuildHarmony(scheme, baseHue, saturation, lightness)
}

// BuildHarmony lays out a scheme deterministically. When the scheme yields
// only two colors the accent sits at baseHue+45.
func BuildHarmony(scheme Harmony, baseHue, saturation, lightness int) HarmonySet {
	colors := make([]string, 0, 3)
	for _, offset := range scheme.Offsets() {
		colors = append(colors, HSL{H: wrapHue(baseHue + offset), S: saturation, L: lightness}.String())
	}
	if len(colors) < 3 {
		colors = append(colors, HSL{H: wrapHue(baseHue + accentShift), S: saturation, L: lightness}.String())
	}

	return HarmonySet{
		Harmony:    scheme,
		BaseHue:    wrapHue(baseHue),
		Saturation: saturation,
		Lightness:  lightness,
		Primary:    colors[0],
		Secondary:  colors[1],
		Accent:     colors[2],
	}
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
