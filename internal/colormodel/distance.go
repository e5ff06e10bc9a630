package colormodel

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Distance returns the CIEDE2000 color difference between two HSL strings,
// measured on their rendered 8-bit colors, in conventional Delta E units.
// Around 2 is a just-noticeable difference and identical colors return 0.
func Distance(color1, color2 string) float64 {
	// go-colorful keeps Lab lightness in 0-1, so its distances are 1/100 of
	// the usual scale.
	return 100 * toColorful(hslToRGB(color1)).DistanceCIEDE2000(toColorful(hslToRGB(color2)))
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
