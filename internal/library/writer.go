package library

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// UnsupportedFormatError reports an output path whose extension does not
// map to a supported encoder. Ext is empty when the path has no
// extension at all.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "library: output path has no extension; want .png, .jpg, .jpeg, or .bmp"
	}
	return fmt.Sprintf("library: unsupported output format %q; want .png, .jpg, .jpeg, or .bmp", e.Ext)
}

// EncoderForPath selects an image encoder from the extension of the
// target path. Run it before any scanning or matching work so that an
// unusable output path fails fast. jpegQuality only applies to JPEG
// output.
func EncoderForPath(path string, jpegQuality int) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(jpegQuality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
}

// Save writes the image to path using the given encoder, overwriting any
// existing file.
func Save(path string, img image.Image, enc imgio.Encoder) error {
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to write image to %s: %w", path, err)
	}
	return nil
}
