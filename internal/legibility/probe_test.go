package legibility

import (
	"strings"
	"testing"

	"github.com/ironsheep/palette-tools-mcp/internal/theme"
)

// skipWithoutTesseract skips the test when err came from a missing engine or
// language data rather than from the probe itself.
func skipWithoutTesseract(t *testing.T, err error) {
	t.Helper()
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") ||
		strings.Contains(msg, "language") || strings.Contains(msg, "tessdata") {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestProbe_BlackOnWhite(t *testing.T) {
	res, err := Probe("0 0% 0%", "0 0% 100%", "")
	if err != nil {
		skipWithoutTesseract(t, err)
		t.Fatalf("Probe failed: %v", err)
	}

	if res.Expected != ProbeWord {
		t.Errorf("Expected = %q", res.Expected)
	}
	if res.Ratio < 20.99 {
		t.Errorf("Ratio = %f, want 21", res.Ratio)
	}
	// Full contrast leaves recognition as the only deciding factor.
	if res.Legible != res.Matched {
		t.Errorf("Legible = %v but Matched = %v (read %q)", res.Legible, res.Matched, res.Recognized)
	}
}

func TestProbe_LowContrastIsNotLegible(t *testing.T) {
	res, err := Probe("0 0% 60%", "0 0% 70%", "")
	if err != nil {
		skipWithoutTesseract(t, err)
		t.Fatalf("Probe failed: %v", err)
	}
	if res.Legible {
		t.Errorf("ratio %.2f pair reported legible", res.Ratio)
	}
}

func TestCheckPalette_InvalidPalette(t *testing.T) {
	p := theme.DefaultPalette()
	p.Bg = "white"
	if _, err := CheckPalette(p, ""); err == nil {
		t.Error("CheckPalette should reject an invalid palette")
	}
}

func TestCheckPalette_Names(t *testing.T) {
	results, err := CheckPalette(theme.DefaultPalette(), DefaultLanguage)
	if err != nil {
		skipWithoutTesseract(t, err)
		t.Fatalf("CheckPalette failed: %v", err)
	}

	pairs := theme.ContrastPairs(theme.DefaultPalette())
	if len(results) != len(pairs) {
		t.Fatalf("got %d results, want %d", len(results), len(pairs))
	}
	for i := range pairs {
		if results[i].Name != pairs[i].Name {
			t.Errorf("result %d name = %q, want %q", i, results[i].Name, pairs[i].Name)
		}
	}
}
