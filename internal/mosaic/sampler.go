package mosaic

import (
	"image"

	"github.com/ironsheep/photo-mosaic/internal/colorspace"
)

// Region represents a rectangular pixel region within an image.
//
// (X, Y) is the top-left corner in the image's own coordinate space, and
// Width and Height must both be positive.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the region as a standard image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// AverageColor computes the per-channel mean color of a pixel region.
//
// The region must lie fully within the image bounds and cover at least
// one pixel; otherwise a *RegionBoundsError is returned. Channel sums are
// accumulated in uint64, which cannot overflow for any image addressable
// with int coordinates.
func AverageColor(img image.Image, region Region) (colorspace.RGB, error) {
	bounds := img.Bounds()
	if region.Width <= 0 || region.Height <= 0 || !region.Rect().In(bounds) {
		return colorspace.RGB{}, &RegionBoundsError{Region: region, Bounds: bounds}
	}

	var rSum, gSum, bSum uint64
	for x := region.X; x < region.X+region.Width; x++ {
		for y := region.Y; y < region.Y+region.Height; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}

	n := float64(region.Width) * float64(region.Height)
	return colorspace.RGB{
		R: float64(rSum) / n / 255,
		G: float64(gSum) / n / 255,
		B: float64(bSum) / n / 255,
	}, nil
}
