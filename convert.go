package img2ascii

import (
	"context"
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/storage"
)

// Converter runs conversions between artifacts named by path. The
// destination is rendered completely in memory before it is handed to the
// store, so a failed conversion never touches it.
type Converter struct {
	store   storage.Store
	encoder *Encoder
	decoder *Decoder
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithStore sets where artifacts are read from and written to.
func WithStore(s storage.Store) ConverterOption {
	return func(c *Converter) {
		c.store = s
	}
}

// WithEncoder sets the Encoder used by ImageToASCII.
func WithEncoder(e *Encoder) ConverterOption {
	return func(c *Converter) {
		c.encoder = e
	}
}

// WithDecoder sets the Decoder used by ASCIIToImage. Its Format is
// ignored; the destination path picks the format.
func WithDecoder(d *Decoder) ConverterOption {
	return func(c *Converter) {
		c.decoder = d
	}
}

// NewConverter creates a Converter over storage.Default with default
// Encoder and Decoder.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		store:   storage.Default(),
		encoder: NewEncoder(),
		decoder: NewDecoder(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ImageToASCII reads the image at src and writes its ASCII art to dst.
func (c *Converter) ImageToASCII(ctx context.Context, src, dst string) error {
	data, err := c.store.ReadAll(ctx, src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	text, err := c.encoder.EncodeBytes(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	if err := c.store.WriteAll(ctx, dst, text); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// ASCIIToImage reads the ASCII art at src and writes the painted image to
// dst in the format its extension names.
func (c *Converter) ASCIIToImage(ctx context.Context, src, dst string) error {
	format, err := imageutil.FormatForPath(dst)
	if err != nil {
		return err
	}
	text, err := c.store.ReadAll(ctx, src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	d := *c.decoder
	d.Format = format
	data, err := d.DecodeBytes(text)
	if err != nil {
		return err
	}
	if err := c.store.WriteAll(ctx, dst, data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// ImageToASCII converts the image at src into ASCII art of the given
// width and writes it to dst.
func ImageToASCII(ctx context.Context, src, dst string, width int) error {
	return NewConverter(WithEncoder(NewEncoder(WithTargetWidth(width)))).ImageToASCII(ctx, src, dst)
}

// ASCIIToImage paints the ASCII art at src and writes the image to dst.
func ASCIIToImage(ctx context.Context, src, dst string) error {
	return NewConverter().ASCIIToImage(ctx, src, dst)
}
