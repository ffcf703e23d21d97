package mosaic

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyPool reports a nearest-match lookup against a pool with no
// remaining entries. The engine validates pool size before assigning any
// tile, so seeing this error means an internal invariant was broken.
var ErrEmptyPool = errors.New("mosaic: nearest-match lookup on empty pool")

// InsufficientPoolError reports that the library pool holds fewer entries
// than the mosaic has tiles. Every tile consumes one unique entry, so the
// run is rejected before any assignment is made.
type InsufficientPoolError struct {
	Required  int // total tiles in the planned grid
	Available int // entries in the pool at the start of the run
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("mosaic: not enough library images: %d tiles require %d images, but only %d available",
		e.Required, e.Required, e.Available)
}

// TileSizeError reports a grid configuration whose tiles would be smaller
// than a single pixel.
type TileSizeError struct {
	Width           int // source image width
	Height          int // source image height
	MinTilesPerSide int
}

func (e *TileSizeError) Error() string {
	return fmt.Sprintf("mosaic: cannot divide %dx%d source into %d tiles per side: tile side would be smaller than one pixel",
		e.Width, e.Height, e.MinTilesPerSide)
}

// RegionBoundsError reports a sampling region that does not lie fully
// within the image it was applied to.
type RegionBoundsError struct {
	Region Region
	Bounds image.Rectangle
}

func (e *RegionBoundsError) Error() string {
	return fmt.Sprintf("mosaic: region %dx%d at (%d,%d) outside image bounds %v",
		e.Region.Width, e.Region.Height, e.Region.X, e.Region.Y, e.Bounds)
}
