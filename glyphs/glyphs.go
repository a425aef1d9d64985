// Package glyphs measures how much ink characters put on screen, to check
// that a character ramp really runs from darkest to lightest in a given
// font.
package glyphs

import (
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultCell is the cell size in pixels used when none is given.
const DefaultCell = 32

// LoadFont loads a TrueType font from path. An empty path loads the
// embedded Go Mono font.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes := gomono.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return f, nil
}

// Render draws r into a cell x cell alpha image at a font size of cell
// pixels, with the baseline placed from the font's ascent and descent.
func Render(ttfFont *truetype.Font, r rune, cell int) *image.Alpha {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(cell),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, cell, cell))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(cell))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	descent := metrics.Descent.Round()
	baselineY := (cell + ascent - descent) / 2

	// DrawString only fails when no font is set.
	_, _ = ctx.DrawString(string(r), freetype.Pt(0, baselineY))
	return img
}

// Coverage is the fraction of a cell x cell square that r inks, in [0, 1].
func Coverage(ttfFont *truetype.Font, r rune, cell int) float64 {
	if cell < 1 {
		cell = DefaultCell
	}
	img := Render(ttfFont, r, cell)
	var sum int
	for _, a := range img.Pix {
		sum += int(a)
	}
	return float64(sum) / float64(255*cell*cell)
}

// GlyphCoverage is the ink coverage of one character.
type GlyphCoverage struct {
	Char     rune
	Coverage float64
}

// RampCoverage measures every character of ramp, in ramp order.
func RampCoverage(ttfFont *truetype.Font, ramp string, cell int) []GlyphCoverage {
	out := make([]GlyphCoverage, 0, len(ramp))
	for _, r := range ramp {
		out = append(out, GlyphCoverage{Char: r, Coverage: Coverage(ttfFont, r, cell)})
	}
	return out
}

// Inversions returns the indices i where character i inks less than
// character i+1, i.e. where a ramp ordered darkest first gets darker.
func Inversions(cov []GlyphCoverage) []int {
	var idx []int
	for i := 0; i+1 < len(cov); i++ {
		if cov[i].Coverage < cov[i+1].Coverage {
			idx = append(idx, i)
		}
	}
	return idx
}

// Monotonic reports whether coverage never increases along the ramp.
func Monotonic(cov []GlyphCoverage) bool {
	return len(Inversions(cov)) == 0
}
