package img2ascii

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wbrown/img2ascii/imageutil"
)

// White is the background gray level of a painted image.
const White = 255

// Decoder paints ASCII art back into a grayscale image.
type Decoder struct {
	// Format is the raster format written by Decode.
	Format imageutil.Format
}

// DecoderOption is a functional option for configuring a Decoder.
type DecoderOption func(*Decoder)

// NewDecoder creates a Decoder that writes PNG unless configured
// otherwise.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{Format: imageutil.FormatPNG}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithFormat sets the output raster format.
func WithFormat(f imageutil.Format) DecoderOption {
	return func(d *Decoder) {
		d.Format = f
	}
}

// Paint renders art as a Width x Height gray image. Every pixel starts
// white; ramp characters overwrite it with their intensity, saturated at
// 255. Other characters and the area past the end of short lines stay
// white.
func (d *Decoder) Paint(art Art) *imageutil.GrayImage {
	img := imageutil.NewFilledGrayImage(art.Width(), art.Height(), White)
	for y, line := range art.Lines {
		x := 0
		for _, c := range line {
			if v, ok := IntensityForChar(c); ok {
				img.SetGrayValue(x, y, uint8(min(v, White)))
			}
			x++
		}
	}
	return img
}

// DecodeString parses text and paints it.
func (d *Decoder) DecodeString(text string) *imageutil.GrayImage {
	return d.Paint(ParseArt(text))
}

// Decode reads ASCII art from r and writes the painted image to w.
func (d *Decoder) Decode(w io.Writer, r io.Reader) error {
	text, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: failed to read ascii art: %w", ErrIO, err)
	}
	return WriteImage(w, d.DecodeString(string(text)), d.Format)
}

// DecodeBytes paints text and returns the encoded image.
func (d *Decoder) DecodeBytes(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteImage(&buf, d.DecodeString(string(text)), d.Format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteImage encodes img to w. Raster formats cannot hold a zero-area
// image, so an empty image is written as a single white pixel.
func WriteImage(w io.Writer, img *imageutil.GrayImage, format imageutil.Format) error {
	if img.Empty() {
		img = imageutil.NewFilledGrayImage(1, 1, White)
	}
	if err := imageutil.Encode(w, img.Gray, format); err != nil {
		return fmt.Errorf("%w: failed to encode image: %w", ErrIO, err)
	}
	return nil
}
