package img2ascii

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// DefaultWidth is the target width in characters when none is configured.
const DefaultWidth = 100

// Encoder turns images into ASCII art. An Encoder is immutable once built
// and safe for concurrent use.
type Encoder struct {
	// TargetWidth is the number of characters per output line.
	TargetWidth int
	// Filter is the resampling filter used to shrink the source.
	Filter imageutil.Filter
	// Policy maps gray levels to ramp indices.
	Policy QuantizePolicy
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption func(*Encoder)

// NewEncoder creates an Encoder. Defaults: TargetWidth=100,
// Filter=catmullrom, Policy=PolicyDivide32.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{
		TargetWidth: DefaultWidth,
		Filter:      imageutil.DefaultFilter,
		Policy:      PolicyDivide32,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithTargetWidth sets the target width in characters.
func WithTargetWidth(width int) EncoderOption {
	return func(e *Encoder) {
		e.TargetWidth = width
	}
}

// WithFilter sets the resampling filter.
func WithFilter(f imageutil.Filter) EncoderOption {
	return func(e *Encoder) {
		e.Filter = f
	}
}

// WithPolicy sets the quantization policy.
func WithPolicy(p QuantizePolicy) EncoderOption {
	return func(e *Encoder) {
		e.Policy = p
	}
}

// TargetSize returns the character grid for a source of the given
// bounds: TargetWidth columns and floor(h/w*TargetWidth) rows.
func (e *Encoder) TargetSize(bounds image.Rectangle) (width, height int, err error) {
	if e.TargetWidth < 1 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidWidth, e.TargetWidth)
	}
	if bounds.Empty() {
		return 0, 0, fmt.Errorf("%w: image has no pixels", ErrDecode)
	}
	aspectRatio := float64(bounds.Dy()) / float64(bounds.Dx())
	return e.TargetWidth, int(aspectRatio * float64(e.TargetWidth)), nil
}

// Art samples img down to the character grid and quantizes every pixel.
// Alpha is dropped before sampling, so transparent pixels count as the
// color they store. The result has one line per row followed by an empty line, so that
// Art.String ends with a newline exactly like the encoded text.
func (e *Encoder) Art(img image.Image) (Art, error) {
	width, height, err := e.TargetSize(img.Bounds())
	if err != nil {
		return Art{}, err
	}

	resized, err := imageutil.Resize(imageutil.Flatten(img), width, height, e.Filter)
	if err != nil {
		return Art{}, err
	}
	gray := imageutil.ToGrayscale(resized)

	var table [256]rune
	for i := range table {
		table[i] = DefaultRamp.Quantize(e.Policy, uint8(i))
	}

	lines := make([]string, 0, height+1)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for _, v := range row {
			sb.WriteRune(table[v])
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, "")

	return Art{Lines: lines}, nil
}

// Encode writes the ASCII art for img to w, one newline-terminated line
// per row.
func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	art, err := e.Art(img)
	if err != nil {
		return err
	}
	if _, err := art.WriteTo(w); err != nil {
		return fmt.Errorf("%w: failed to write ascii art: %w", ErrIO, err)
	}
	return nil
}

// EncodeBytes decodes an image from data and returns its ASCII art.
func (e *Encoder) EncodeBytes(data []byte) ([]byte, error) {
	img, _, err := imageutil.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var buf bytes.Buffer
	if err := e.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeReader reads an image from r and writes its ASCII art to w.
func (e *Encoder) EncodeReader(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: failed to read image: %w", ErrIO, err)
	}
	out, err := e.EncodeBytes(data)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: failed to write ascii art: %w", ErrIO, err)
	}
	return nil
}
