package mosaic

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// createUniformImage creates an in-memory test image filled with one color
func createUniformImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createQuadrantImage creates an image with different colors in each quadrant
func createQuadrantImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestAverageColor_Uniform(t *testing.T) {
	img := createUniformImage(50, 30, color.RGBA{255, 128, 64, 255})

	avg, err := AverageColor(img, Region{X: 0, Y: 0, Width: 50, Height: 30})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}

	want := [3]float64{255.0 / 255, 128.0 / 255, 64.0 / 255}
	if math.Abs(avg.R-want[0]) > 1e-9 || math.Abs(avg.G-want[1]) > 1e-9 || math.Abs(avg.B-want[2]) > 1e-9 {
		t.Errorf("average = %+v, want (%v, %v, %v)", avg, want[0], want[1], want[2])
	}
}

func TestAverageColor_Quadrants(t *testing.T) {
	img := createQuadrantImage(100, 100)

	// Whole image: each channel is at 255 in exactly half the pixels.
	avg, err := AverageColor(img, Region{X: 0, Y: 0, Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	for name, got := range map[string]float64{"R": avg.R, "G": avg.G, "B": avg.B} {
		if math.Abs(got-0.5) > 1e-9 {
			t.Errorf("%s = %v, want 0.5", name, got)
		}
	}

	// A region inside a single quadrant is pure.
	avg, err = AverageColor(img, Region{X: 10, Y: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	if avg.R != 1 || avg.G != 0 || avg.B != 0 {
		t.Errorf("top-left region = %+v, want pure red", avg)
	}
}

func TestAverageColor_WithinObservedRange(t *testing.T) {
	// Horizontal gradient: the mean of any region must lie between the
	// smallest and largest pixel values seen in that region.
	img := image.NewRGBA(image.Rect(0, 0, 64, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(x * 4)
			img.Set(x, y, color.RGBA{v, 255 - v, 128, 255})
		}
	}

	regions := []Region{
		{X: 0, Y: 0, Width: 64, Height: 16},
		{X: 5, Y: 2, Width: 20, Height: 10},
		{X: 60, Y: 0, Width: 4, Height: 16},
		{X: 31, Y: 7, Width: 1, Height: 1},
	}

	for _, region := range regions {
		avg, err := AverageColor(img, region)
		if err != nil {
			t.Fatalf("AverageColor(%+v) failed: %v", region, err)
		}

		minR, maxR := 1.0, 0.0
		minG, maxG := 1.0, 0.0
		for x := region.X; x < region.X+region.Width; x++ {
			r, g, _, _ := img.At(x, region.Y).RGBA()
			rf, gf := float64(r>>8)/255, float64(g>>8)/255
			minR, maxR = math.Min(minR, rf), math.Max(maxR, rf)
			minG, maxG = math.Min(minG, gf), math.Max(maxG, gf)
		}

		if avg.R < minR-1e-9 || avg.R > maxR+1e-9 {
			t.Errorf("region %+v: R average %v outside observed [%v, %v]", region, avg.R, minR, maxR)
		}
		if avg.G < minG-1e-9 || avg.G > maxG+1e-9 {
			t.Errorf("region %+v: G average %v outside observed [%v, %v]", region, avg.G, minG, maxG)
		}
	}
}

func TestAverageColor_InvalidRegions(t *testing.T) {
	img := createUniformImage(20, 20, color.RGBA{10, 20, 30, 255})

	tests := []struct {
		name   string
		region Region
	}{
		{"zero width", Region{X: 0, Y: 0, Width: 0, Height: 5}},
		{"zero height", Region{X: 0, Y: 0, Width: 5, Height: 0}},
		{"negative origin", Region{X: -1, Y: 0, Width: 5, Height: 5}},
		{"past right edge", Region{X: 18, Y: 0, Width: 5, Height: 5}},
		{"past bottom edge", Region{X: 0, Y: 18, Width: 5, Height: 5}},
		{"fully outside", Region{X: 100, Y: 100, Width: 5, Height: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AverageColor(img, tt.region)
			var boundsErr *RegionBoundsError
			if !errors.As(err, &boundsErr) {
				t.Fatalf("expected RegionBoundsError, got %v", err)
			}
			if boundsErr.Region != tt.region {
				t.Errorf("error region = %+v, want %+v", boundsErr.Region, tt.region)
			}
		})
	}
}
