package mosaic

import (
	"image"

	"github.com/ironsheep/photo-mosaic/internal/colorspace"
)

// Entry is a single candidate image in the library pool.
//
// The average color is computed once at construction and never changes,
// so entries are safe to share across pools and to read concurrently.
type Entry struct {
	img image.Image
	avg colorspace.RGB
	lab colorspace.Lab
}

// NewEntry wraps a decoded image as a pool entry, memoizing its average
// color and the Lab equivalent under the given reference white.
func NewEntry(img image.Image, white colorspace.ReferenceWhite) (*Entry, error) {
	bounds := img.Bounds()
	avg, err := AverageColor(img, Region{
		X:      bounds.Min.X,
		Y:      bounds.Min.Y,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	})
	if err != nil {
		return nil, err
	}

	return &Entry{
		img: img,
		avg: avg,
		lab: colorspace.RGBToLab(avg, white),
	}, nil
}

// Image returns the wrapped image.
func (e *Entry) Image() image.Image { return e.img }

// AverageColor returns the memoized average color of the image.
func (e *Entry) AverageColor() colorspace.RGB { return e.avg }

// Lab returns the memoized Lab form of the average color.
func (e *Entry) Lab() colorspace.Lab { return e.lab }

// Pool is a consumable set of library entries for a single mosaic run.
//
// Entries are matched with Nearest and then consumed with Remove, so one
// entry never backs two tiles. A Pool belongs to exactly one run: callers
// holding a long-lived library should hand each run its own Pool (see
// library.Snapshot) rather than reusing a depleted one.
type Pool struct {
	entries []*Entry
}

// NewPool builds a pool over its own copy of the entry slice. Later
// mutations of the caller's slice do not affect the pool.
func NewPool(entries []*Entry) *Pool {
	p := &Pool{entries: make([]*Entry, len(entries))}
	copy(p.entries, entries)
	return p
}

// Size returns the number of entries remaining in the pool.
func (p *Pool) Size() int {
	return len(p.entries)
}

// Nearest returns the remaining entry whose average color is closest to
// target under the CIEDE2000 difference. Ties are broken in favor of the
// entry encountered first in pool order, which keeps runs reproducible.
//
// Calling Nearest on an empty pool returns ErrEmptyPool; the engine's
// upfront size validation makes that unreachable in normal operation.
func (p *Pool) Nearest(target colorspace.Lab) (*Entry, error) {
	if len(p.entries) == 0 {
		return nil, ErrEmptyPool
	}

	best := p.entries[0]
	bestDelta := colorspace.DeltaE2000(target, best.lab)
	for _, e := range p.entries[1:] {
		if d := colorspace.DeltaE2000(target, e.lab); d < bestDelta {
			best = e
			bestDelta = d
		}
	}
	return best, nil
}

// Remove deletes an entry from the pool by identity, preserving the
// order of the remaining entries. Removing an entry that is not in the
// pool does nothing.
func (p *Pool) Remove(entry *Entry) {
	for i, e := range p.entries {
		if e == entry {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return
		}
	}
}
