package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrUnsupportedFormat is returned when an image cannot be written in the
// format implied by a destination path.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is a lossless raster format that images can be written in.
type Format string

const (
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
)

// lossy or read-only extensions that must not be silently written as
// something else.
var rejectedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// FormatForPath picks the output format from a destination path. A
// trailing ".zst" is ignored. Unknown extensions default to PNG.
func FormatForPath(path string) (Format, error) {
	name := strings.TrimSuffix(strings.ToLower(path), ".zst")
	ext := filepath.Ext(name)
	switch {
	case ext == ".tif" || ext == ".tiff":
		return FormatTIFF, nil
	case ext == ".bmp":
		return FormatBMP, nil
	case rejectedExts[ext]:
		return "", fmt.Errorf("%w: %s (use .png, .tiff or .bmp)", ErrUnsupportedFormat, ext)
	default:
		return FormatPNG, nil
	}
}

// Decode decodes an image from raw bytes. Supports PNG, JPEG, GIF, BMP,
// TIFF and WebP.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG, "":
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
