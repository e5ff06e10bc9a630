package theme

import (
	"fmt"
	"math"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
)

// ButtonText is the fixed label color drawn on primary buttons.
const ButtonText = "0 0% 100%"

// MinDistinctDistance is the CIEDE2000 distance below which two palette
// roles are reported as hard to tell apart.
const MinDistinctDistance = 10.0

// ContrastPair names a foreground/background combination the preview draws.
type ContrastPair struct {
	Name       string `json:"name"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// ContrastPairs returns the combinations checked for a palette, in report
// order.
func ContrastPairs(p Palette) []ContrastPair {
	return []ContrastPair{
		{"Text on Background", p.Text, p.Bg},
		{"Primary Button Text", ButtonText, p.Primary},
		{"Primary on Background", p.Primary, p.Bg},
		{"Accent on Background", p.Accent, p.Bg},
	}
}

// ContrastResult is the measured outcome for one pair.
type ContrastResult struct {
	ContrastPair
	Ratio   float64                  `json:"ratio"`
	Display string                   `json:"display"`
	Passes  bool                     `json:"passes"`
	Level   colormodel.ContrastLevel `json:"level"`
}

// SimilarRoles flags two roles that are nearly the same color.
type SimilarRoles struct {
	First    string  `json:"first"`
	Second   string  `json:"second"`
	Distance float64 `json:"distance"`
}

// Report is the accessibility summary of a palette.
type Report struct {
	Results []ContrastResult `json:"results"`
	Similar []SimilarRoles   `json:"similar,omitempty"`
	Passed  int              `json:"passed"`
	Failed  int              `json:"failed"`
}

// CheckContrast measures every pair from ContrastPairs and flags the accent
// roles (primary, secondary, accent) that sit too close together.
func CheckContrast(p Palette) Report {
	pairs := ContrastPairs(p)
	report := Report{Results: make([]ContrastResult, 0, len(pairs))}

	for _, pair := range pairs {
		ratio := colormodel.ContrastRatio(pair.Foreground, pair.Background)
		res := ContrastResult{
			ContrastPair: pair,
			Ratio:        math.Round(ratio*100) / 100,
			Display:      formatRatio(ratio),
			Passes:       colormodel.HasGoodContrast(pair.Foreground, pair.Background),
			Level:        colormodel.Level(ratio),
		}
		if res.Passes {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}

	accents := p.Roles()[:3]
	for i := 0; i < len(accents); i++ {
		for j := i + 1; j < len(accents); j++ {
			d := colormodel.Distance(accents[i].Value, accents[j].Value)
			if d < MinDistinctDistance {
				report.Similar = append(report.Similar, SimilarRoles{
					First:    accents[i].Name,
					Second:   accents[j].Name,
					Distance: math.Round(d*100) / 100,
				})
			}
		}
	}

	return report
}

// formatRatio renders a ratio the way the contrast panel shows it, "7.11:1".
func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
