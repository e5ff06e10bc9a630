// Package swatch renders palettes and foreground/background pairs into
// images, the stand-in for the editor's color swatches and contrast samples.
//
// Labels are drawn with the fixed 7x13 bitmap face from x/image, so output is
// deterministic across platforms. Encoded results are PNG, base64 encoded for
// transport inside JSON responses.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/palette-tools-mcp/internal/colormodel"
	"github.com/ironsheep/palette-tools-mcp/internal/theme"
)

// Band geometry at scale 1.
const (
	BandWidth  = 120
	BandHeight = 160
	padding    = 6
	MaxScale   = 8.0
)

const (
	black = "0 0% 0%"
	white = "0 0% 100%"
)

// Options controls palette rendering.
type Options struct {
	// Scale multiplies the output size. Zero means 1.
	Scale float64
	// Grayscale drops hue so only luminance differences remain visible.
	Grayscale bool
}

// Result contains an encoded swatch image.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderPalette draws one vertical band per palette role, labeled with the
// role name and hex value in whichever of black or white reads better.
func RenderPalette(p theme.Palette, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	roles := p.Roles()

	img := image.NewRGBA(image.Rect(0, 0, BandWidth*len(roles), BandHeight))
	for i, r := range roles {
		band := image.Rect(i*BandWidth, 0, (i+1)*BandWidth, BandHeight)
		draw.Draw(img, band, image.NewUniform(toRGBA(r.Value)), image.Point{}, draw.Src)

		ink := toRGBA(LabelColor(r.Value))
		drawText(img, band.Min.X+padding, BandHeight-padding-basicfont.Face7x13.Height, r.Name, ink)
		drawText(img, band.Min.X+padding, BandHeight-padding, colormodel.HSLToHex(r.Value), ink)
	}

	return finish(img, opts)
}

// RenderContrastSheet stacks one sample strip per contrast pair checked by
// theme.CheckContrast, each showing its name and ratio in the pair's colors.
func RenderContrastSheet(p theme.Palette, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	report := theme.CheckContrast(p)
	strips := make([]image.Image, 0, len(report.Results))
	width := 0
	for _, res := range report.Results {
		label := fmt.Sprintf("%s %s %s", res.Name, res.Display, res.Level)
		strip := RenderPair(res.Foreground, res.Background, label, 1)
		strips = append(strips, strip)
		if w := strip.Bounds().Dx(); w > width {
			width = w
		}
	}

	stripHeight := basicfont.Face7x13.Height + 2*padding
	sheet := image.NewRGBA(image.Rect(0, 0, width, stripHeight*len(strips)))
	for i, strip := range strips {
		row := image.Rect(0, i*stripHeight, width, (i+1)*stripHeight)
		// Pad short strips with their own background.
		draw.Draw(sheet, row, image.NewUniform(strip.At(0, 0)), image.Point{}, draw.Src)
		draw.Draw(sheet, row, strip, image.Point{}, draw.Src)
	}

	return finish(sheet, opts)
}

// RenderPair draws text in fg on a bg strip sized to fit it, enlarged by an
// integer scale. Colors are HSL strings; unparseable ones render black.
func RenderPair(fg, bg, text string, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil() + 2*padding
	height := face.Height + 2*padding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(bg)), image.Point{}, draw.Src)
	drawText(img, padding, padding+face.Ascent, text, toRGBA(fg))

	if scale == 1 {
		return img
	}
	return imaging.Resize(img, width*scale, height*scale, imaging.NearestNeighbor)
}

// LabelColor returns black or white, whichever contrasts more with bg.
func LabelColor(bg string) string {
	if colormodel.ContrastRatio(black, bg) >= colormodel.ContrastRatio(white, bg) {
		return black
	}
	return white
}

// Encode converts an image to a PNG Result.
func Encode(img image.Image) (*Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func finish(img image.Image, opts Options) (*Result, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("scale %v outside (0, %v]", scale, MaxScale)
	}

	out := img
	if scale != 1 {
		w := int(float64(img.Bounds().Dx()) * scale)
		h := int(float64(img.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v collapses the image", scale)
		}
		out = imaging.Resize(img, w, h, imaging.NearestNeighbor)
	}
	if opts.Grayscale {
		out = effect.Grayscale(out)
	}
	return Encode(out)
}

func drawText(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func toRGBA(hsl string) color.RGBA {
	c, err := colormodel.ParseHex(colormodel.HSLToHex(hsl))
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
