//go:build gocv

package imageutil

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

func init() {
	resamplers[FilterArea] = resizeArea
}

// resizeArea resamples through OpenCV's INTER_AREA, which averages pixel
// areas when shrinking.
func resizeArea(src image.Image, width, height int) (*image.RGBA, error) {
	mat, err := gocv.ImageToMatRGBA(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to mat: %w", err)
	}
	defer mat.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(mat, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationArea)
	if dst.Empty() {
		return nil, fmt.Errorf("opencv produced an empty image")
	}

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert mat to image: %w", err)
	}
	return RGBAImageFromImage(out).RGBA, nil
}
