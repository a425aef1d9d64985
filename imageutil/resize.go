package imageutil

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter names a resampling filter.
type Filter string

const (
	// FilterNearest uses nearest-neighbor sampling. Fastest, and the
	// closest to plain point sampling of the source grid.
	FilterNearest Filter = "nearest"

	// FilterBiLinear uses bilinear interpolation.
	FilterBiLinear Filter = "bilinear"

	// FilterCatmullRom uses the Catmull-Rom bicubic kernel. This is the
	// default; it is the closest equivalent to the bicubic resize most
	// imaging libraries apply by default.
	FilterCatmullRom Filter = "catmullrom"

	// FilterLanczos uses a Lanczos3 kernel.
	FilterLanczos Filter = "lanczos"

	// FilterBox averages every source pixel covered by a destination
	// pixel.
	FilterBox Filter = "box"

	// FilterArea uses OpenCV's INTER_AREA. Only available when built with
	// the gocv tag.
	FilterArea Filter = "area"
)

// DefaultFilter is the filter used when none is configured.
const DefaultFilter = FilterCatmullRom

type resampler func(src image.Image, width, height int) (*image.RGBA, error)

var resamplers = map[Filter]resampler{
	FilterNearest:    scaleWith(draw.NearestNeighbor),
	FilterBiLinear:   scaleWith(draw.BiLinear),
	FilterCatmullRom: scaleWith(draw.CatmullRom),
	FilterLanczos:    resizeLanczos,
	FilterBox:        resizeBox,
}

// Filters returns the names of the available filters, sorted.
func Filters() []Filter {
	names := make([]Filter, 0, len(resamplers))
	for f := range resamplers {
		names = append(names, f)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseFilter resolves a filter by name. The empty string selects
// DefaultFilter.
func ParseFilter(name string) (Filter, error) {
	if name == "" {
		return DefaultFilter, nil
	}
	f := Filter(strings.ToLower(name))
	if _, ok := resamplers[f]; !ok {
		if f == FilterArea {
			return "", fmt.Errorf("filter %q requires a build with -tags gocv", name)
		}
		return "", fmt.Errorf("unknown filter %q (available: %v)", name, Filters())
	}
	return f, nil
}

// Resize resamples src to exactly width x height using the given filter.
// A zero width or height yields an empty image without touching src.
func Resize(src image.Image, width, height int, f Filter) (*RGBAImage, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if f == "" {
		f = DefaultFilter
	}
	scale, ok := resamplers[f]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", f)
	}
	if width == 0 || height == 0 || src.Bounds().Empty() {
		return NewRGBAImage(width, height), nil
	}
	if w, ok := src.(*RGBAImage); ok {
		src = w.RGBA
	}
	dst, err := scale(src, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to resize with %s: %w", f, err)
	}
	return RGBAImageFromImage(dst), nil
}

func scaleWith(scaler draw.Scaler) resampler {
	return func(src image.Image, width, height int) (*image.RGBA, error) {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst, nil
	}
}

func resizeLanczos(src image.Image, width, height int) (*image.RGBA, error) {
	out := resize.Resize(uint(width), uint(height), src, resize.Lanczos3)
	return RGBAImageFromImage(out).RGBA, nil
}

func resizeBox(src image.Image, width, height int) (*image.RGBA, error) {
	g := gift.New(gift.Resize(width, height, gift.BoxResampling))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst, nil
}
