package mosaic

import "fmt"

// Grid describes the tile geometry of a mosaic: square tiles of TileSide
// pixels arranged TilesWide by TilesHigh. Trailing pixels of the source
// that do not form a complete tile are excluded from the mosaic rather
// than stretched.
type Grid struct {
	TileSide  int // side length of each square tile in pixels
	TilesWide int
	TilesHigh int
}

// TotalTiles returns the number of tiles in the grid.
func (g Grid) TotalTiles() int {
	return g.TilesWide * g.TilesHigh
}

// Width returns the pixel width of the covered (and output) area.
func (g Grid) Width() int {
	return g.TilesWide * g.TileSide
}

// Height returns the pixel height of the covered (and output) area.
func (g Grid) Height() int {
	return g.TilesHigh * g.TileSide
}

// ComputeGrid plans the tile grid for a source image.
//
// The shorter side of the source is divided into minTilesPerSide equal
// sections, which fixes the tile side length; the longer side then holds
// proportionally more tiles, so tiles are always square. A *TileSizeError
// is returned when the source is too small for the requested density.
func ComputeGrid(srcWidth, srcHeight, minTilesPerSide int) (Grid, error) {
	if minTilesPerSide < 1 {
		return Grid{}, fmt.Errorf("mosaic: min tiles per side must be positive, got %d", minTilesPerSide)
	}

	shortSide := srcWidth
	if srcHeight < shortSide {
		shortSide = srcHeight
	}

	tileSide := shortSide / minTilesPerSide
	if tileSide < 1 {
		return Grid{}, &TileSizeError{Width: srcWidth, Height: srcHeight, MinTilesPerSide: minTilesPerSide}
	}

	return Grid{
		TileSide:  tileSide,
		TilesWide: srcWidth / tileSide,
		TilesHigh: srcHeight / tileSide,
	}, nil
}
