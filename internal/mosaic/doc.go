// Package mosaic implements the color-matching assignment engine that
// turns a source image and a pool of library images into a photo mosaic.
//
// The engine partitions the source into a grid of equal square tiles,
// computes each tile's average color, and greedily claims the unused
// library image whose average color is perceptually closest under the
// CIEDE2000 difference. Each library image is used at most once per run.
//
// # Pipeline
//
// ComputeGrid plans the tile geometry from the source size and a density
// parameter. For every tile, AverageColor samples the region's mean
// color, the colorspace package converts it to CIE L*a*b*, and
// Pool.Nearest selects and consumes the best remaining entry. Assign
// returns the resulting tile-to-image mapping; Render additionally
// composites the matched images into the output buffer.
//
// # Determinism
//
// Tiles are processed in a fixed column-major order, and nearest-match
// ties resolve to the entry encountered first in pool order, so two runs
// over identical inputs produce identical mosaics. The assignment is
// greedy by design: it never revisits a tile, and globally optimal
// matching is out of scope.
//
// # Pool Ownership
//
// A Pool is consumed as the engine runs. Each run must be given its own
// Pool (a fresh snapshot of the library), so repeated runs against a
// long-lived library never observe each other's depletion.
//
// # Error Handling
//
// All errors are terminal for the run: a grid whose tiles would be
// smaller than one pixel (*TileSizeError), a pool smaller than the tile
// count (*InsufficientPoolError, reported before any entry is consumed),
// a sampling region outside the image (*RegionBoundsError), and the
// internal invariant violation of matching against an empty pool
// (ErrEmptyPool).
package mosaic
