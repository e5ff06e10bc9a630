// Package legibility checks whether text drawn in a palette's colors can be
// read back by Tesseract OCR (via gosseract/v2).
//
// Each probe renders a known word with swatch.RenderPair, enlarged so the
// bitmap face is comfortably above Tesseract's minimum glyph size, and
// compares the recognized text with the word that was drawn. OCR alone is
// not a conformance test: a pair is reported legible only when the word was
// recognized and the pair also meets WCAG AA.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
package legibility

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
	"github.com/ironsheep/palette-tools-mcp/internal/swatch"
	"github.com/ironsheep/palette-tools-mcp/internal/theme"
)

// DefaultLanguage is the Tesseract language used when none is given.
const DefaultLanguage = "eng"

// ProbeWord is the text drawn for every probe.
const ProbeWord = "Sample"

// probeScale enlarges the 7x13 face to roughly 50px glyphs.
const probeScale = 4

// Result is the outcome of probing one foreground/background pair.
type Result struct {
	Name       string  `json:"name,omitempty"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Expected   string  `json:"expected"`
	Recognized string  `json:"recognized"`
	Matched    bool    `json:"matched"`
	Ratio      float64 `json:"ratio"`
	Legible    bool    `json:"legible"`
}

// Probe renders ProbeWord in fg on bg and reads it back with OCR.
func Probe(fg, bg, language string) (*Result, error) {
	if language == "" {
		language = DefaultLanguage
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, swatch.RenderPair(fg, bg, ProbeWord, probeScale)); err != nil {
		return nil, fmt.Errorf("failed to encode probe image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	recognized := strings.TrimSpace(text)
	matched := strings.EqualFold(recognized, ProbeWord)
	ratio := colormodel.ContrastRatio(fg, bg)

	return &Result{
		Foreground: fg,
		Background: bg,
		Expected:   ProbeWord,
		Recognized: recognized,
		Matched:    matched,
		Ratio:      ratio,
		Legible:    matched && ratio >= colormodel.MinContrastAA,
	}, nil
}

// CheckPalette probes every pair from theme.ContrastPairs, in order.
func CheckPalette(p theme.Palette, language string) ([]Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	pairs := theme.ContrastPairs(p)
	results := make([]Result, 0, len(pairs))
	for _, pair := range pairs {
		res, err := Probe(pair.Foreground, pair.Background, language)
		if err != nil {
			return nil, fmt.Errorf("failed to probe %q: %w", pair.Name, err)
		}
		res.Name = pair.Name
		results = append(results, *res)
	}
	return results, nil
}
