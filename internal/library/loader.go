package library

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"log"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/photo-mosaic/internal/colorspace"
	"github.com/ironsheep/photo-mosaic/internal/mosaic"
)

// Library is a long-lived collection of candidate images loaded from a
// directory tree. It is immutable after Scan: mosaic runs consume
// per-run snapshots of it, never the library itself.
type Library struct {
	entries []*mosaic.Entry
}

// Scan walks dir (including nested directories) and loads every regular
// file that decodes as an image into a library entry. Files that fail to
// decode are logged and skipped; they are not an error. The average
// color of each entry is computed once here, under the given reference
// white.
//
// Returns an error only when the directory itself cannot be traversed.
func Scan(dir string, white colorspace.ReferenceWhite) (*Library, error) {
	lib := &Library{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		img, err := LoadImage(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}

		entry, err := mosaic.NewEntry(img, white)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}

		lib.entries = append(lib.entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan image library: %w", err)
	}

	return lib, nil
}

// Size returns the number of images in the library.
func (l *Library) Size() int {
	return len(l.entries)
}

// Snapshot returns a fresh consumable pool over the library's entries.
//
// Each mosaic run must receive its own snapshot: pools are depleted as
// the engine claims entries, and a snapshot keeps that depletion from
// leaking into the library or into other runs.
func (l *Library) Snapshot() *mosaic.Pool {
	return mosaic.NewPool(l.entries)
}

// LoadImage opens and decodes a single image file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
