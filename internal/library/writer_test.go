package library

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestEncoderForPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		ok   bool
		ext  string // expected error payload when !ok
	}{
		{"png", "out.png", true, ""},
		{"jpg", "out.jpg", true, ""},
		{"jpeg", "out.jpeg", true, ""},
		{"bmp", "out.bmp", true, ""},
		{"uppercase", "OUT.PNG", true, ""},
		{"nested path", filepath.Join("a", "b", "mosaic.png"), true, ""},
		{"gif not encodable", "out.gif", false, ".gif"},
		{"unknown", "out.xyz", false, ".xyz"},
		{"no extension", "mosaic", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncoderForPath(tt.path, 90)

			if tt.ok {
				if err != nil {
					t.Fatalf("EncoderForPath(%q) failed: %v", tt.path, err)
				}
				if enc == nil {
					t.Fatal("expected a non-nil encoder")
				}
				return
			}

			var formatErr *UnsupportedFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected UnsupportedFormatError, got %v", err)
			}
			if formatErr.Ext != tt.ext {
				t.Errorf("error ext = %q, want %q", formatErr.Ext, tt.ext)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, color.NRGBA{200, 40, 40, 255})
		}
	}

	path := filepath.Join(t.TempDir(), "mosaic.png")
	enc, err := EncoderForPath(path, 90)
	if err != nil {
		t.Fatalf("EncoderForPath failed: %v", err)
	}
	if err := Save(path, img, enc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Bounds().Dx() != 6 || loaded.Bounds().Dy() != 4 {
		t.Errorf("loaded size = %dx%d, want 6x4", loaded.Bounds().Dx(), loaded.Bounds().Dy())
	}

	r, g, b, _ := loaded.At(3, 2).RGBA()
	if r>>8 != 200 || g>>8 != 40 || b>>8 != 40 {
		t.Errorf("pixel = (%d,%d,%d), want (200,40,40)", r>>8, g>>8, b>>8)
	}
}
