package imageutil

import (
	"image"
	"image/color"
)

// Luma returns the BT.601 luminance of a premultiplied RGBA sample.
// The channels are un-premultiplied first so partial alpha does not darken
// the result. A fully transparent sample has no color left and reads as
// black; Flatten a source first to keep the colors it stores.
//
// Integer form: Y = (299*R + 587*G + 114*B + 500) / 1000.
func Luma(c color.RGBA) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	if c.A != 0 && c.A != 0xff {
		a := int(c.A)
		r = r * 0xff / a
		g = g * 0xff / a
		b = b * 0xff / a
	}
	lum := (299*r + 587*g + 114*b + 500) / 1000
	if lum > 255 {
		lum = 255
	}
	return uint8(lum)
}

// ToGrayscale converts an RGBA image to grayscale using Luma.
func ToGrayscale(img *RGBAImage) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+width*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := range dst {
			i := x * 4
			dst[x] = Luma(color.RGBA{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]})
		}
	}

	return gray
}

// Flatten returns an opaque copy of img anchored at the origin. Every pixel
// keeps its straight color and drops its alpha, so a fully transparent
// pixel keeps the color it stores instead of turning black.
func Flatten(img image.Image) *RGBAImage {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return RGBAImageFromImage(img)
	}

	b := img.Bounds()
	out := NewRGBAImage(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := straightAt(img, x, y)
			i := out.PixOffset(x-b.Min.X, y-b.Min.Y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// straightAt reads the un-premultiplied color at (x, y). Images that store
// straight color are read directly; the rest go through their premultiplied
// At, which has already lost the color of transparent pixels.
func straightAt(img image.Image, x, y int) color.NRGBA {
	switch m := img.(type) {
	case *image.NRGBA:
		return m.NRGBAAt(x, y)
	case *image.NRGBA64:
		c := m.NRGBA64At(x, y)
		return color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
	case *image.Paletted:
		if c, ok := m.At(x, y).(color.NRGBA); ok {
			return c
		}
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
