package mosaic

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/photo-mosaic/internal/colorspace"
)

// Options controls a mosaic run.
type Options struct {
	// MinTilesPerSide is the number of tiles the shorter side of the
	// source image is divided into. Must be positive.
	MinTilesPerSide int

	// White is the reference white used when converting average colors
	// to Lab. The zero value selects the D65 daylight default.
	White colorspace.ReferenceWhite
}

// TileAssignment maps one tile region of the source image to the library
// entry selected for it.
type TileAssignment struct {
	Region Region
	Entry  *Entry
}

// Assign runs the matching engine and returns the complete tile-to-image
// mapping in assignment order.
//
// Tiles are visited column by column (outer loop over x, inner over y,
// both ascending), and for each tile the pool entry with the smallest
// CIEDE2000 distance to the tile's average color is claimed and removed.
// The pass is greedy and single-shot: an assignment is final the moment
// it is made.
//
// The pool must hold at least as many entries as the grid has tiles;
// otherwise an *InsufficientPoolError is returned before any entry is
// consumed.
func Assign(src image.Image, pool *Pool, opts Options) ([]TileAssignment, error) {
	var assignments []TileAssignment
	err := assignEach(src, pool, opts, func(a TileAssignment) error {
		assignments = append(assignments, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// Render runs the matching engine and composites the result: each
// matched library image is cropped to a square using its shorter side,
// anchored at the image's top-left corner, then stretched to exactly
// fill its tile. The output covers only complete tiles, so its size is
// TilesWide*TileSide by TilesHigh*TileSide regardless of any trailing
// source margin.
func Render(src image.Image, pool *Pool, opts Options) (*image.NRGBA, error) {
	bounds := src.Bounds()
	grid, err := ComputeGrid(bounds.Dx(), bounds.Dy(), opts.MinTilesPerSide)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(grid.Width(), grid.Height(), color.NRGBA{A: 255})

	err = assignEach(src, pool, opts, func(a TileAssignment) error {
		tile := squareTile(a.Entry.Image(), grid.TileSide)
		target := image.Rect(
			a.Region.X-bounds.Min.X,
			a.Region.Y-bounds.Min.Y,
			a.Region.X-bounds.Min.X+grid.TileSide,
			a.Region.Y-bounds.Min.Y+grid.TileSide,
		)
		draw.Draw(canvas, target, tile, tile.Bounds().Min, draw.Src)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canvas, nil
}

// assignEach plans the grid, validates the pool size, and streams one
// TileAssignment per tile to fn in the fixed engine order.
func assignEach(src image.Image, pool *Pool, opts Options, fn func(TileAssignment) error) error {
	bounds := src.Bounds()
	grid, err := ComputeGrid(bounds.Dx(), bounds.Dy(), opts.MinTilesPerSide)
	if err != nil {
		return err
	}

	if pool.Size() < grid.TotalTiles() {
		return &InsufficientPoolError{Required: grid.TotalTiles(), Available: pool.Size()}
	}

	white := opts.White
	if white == (colorspace.ReferenceWhite{}) {
		white = colorspace.D65
	}

	for tx := 0; tx < grid.TilesWide; tx++ {
		for ty := 0; ty < grid.TilesHigh; ty++ {
			region := Region{
				X:      bounds.Min.X + tx*grid.TileSide,
				Y:      bounds.Min.Y + ty*grid.TileSide,
				Width:  grid.TileSide,
				Height: grid.TileSide,
			}

			avg, err := AverageColor(src, region)
			if err != nil {
				return err
			}

			entry, err := pool.Nearest(colorspace.RGBToLab(avg, white))
			if err != nil {
				return err
			}
			pool.Remove(entry)

			if err := fn(TileAssignment{Region: region, Entry: entry}); err != nil {
				return err
			}
		}
	}
	return nil
}

// squareTile crops an image to a square using its shorter side, anchored
// at the top-left corner, and resizes it to side x side pixels.
func squareTile(img image.Image, side int) *image.NRGBA {
	bounds := img.Bounds()
	short := bounds.Dx()
	if bounds.Dy() < short {
		short = bounds.Dy()
	}

	cropped := imaging.Crop(img, image.Rect(
		bounds.Min.X,
		bounds.Min.Y,
		bounds.Min.X+short,
		bounds.Min.Y+short,
	))
	return imaging.Resize(cropped, side, side, imaging.Lanczos)
}
