package colorspace

import "math"

// RGB represents a color with red, green, and blue components normalized
// to the range [0, 1].
type RGB struct {
	R float64 // Red component (0-1)
	G float64 // Green component (0-1)
	B float64 // Blue component (0-1)
}

// XYZ represents a color in the CIE 1931 XYZ color space, scaled so that
// the luminance (Y) of the sRGB white point is 100.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Lab represents a color in the CIE L*a*b* color space.
//
// L* is lightness (0 = black, 100 = diffuse white), a* runs from green
// (negative) to red (positive), and b* runs from blue (negative) to
// yellow (positive). Distances in this space approximate perceived color
// differences, which is why all matching happens here rather than in RGB.
type Lab struct {
	L float64 // Lightness
	A float64 // Green-red axis
	B float64 // Blue-yellow axis
}

// ReferenceWhite is the XYZ triple of the illuminant used when converting
// XYZ coordinates to Lab. All components must be positive.
type ReferenceWhite struct {
	X float64
	Y float64
	Z float64
}

// D65 is the standard daylight illuminant, used as the default reference
// white for Lab conversion.
var D65 = ReferenceWhite{X: 94.811, Y: 100.0, Z: 107.304}

// RGBToXYZ converts a normalized sRGB color to CIE XYZ.
//
// Each channel is first gamma-decoded from the sRGB transfer curve
// (linear below 0.04045, power 2.4 above), scaled to 0-100, then mapped
// through the standard sRGB-to-XYZ matrix for D65 primaries.
func RGBToXYZ(c RGB) XYZ {
	r := linearize(c.R) * 100
	g := linearize(c.G) * 100
	b := linearize(c.B) * 100

	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// XYZToLab converts a CIE XYZ color to CIE L*a*b* relative to the given
// reference white.
func XYZToLab(c XYZ, white ReferenceWhite) Lab {
	fx := labF(c.X / white.X)
	fy := labF(c.Y / white.Y)
	fz := labF(c.Z / white.Z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGBToLab converts a normalized sRGB color straight to CIE L*a*b*
// relative to the given reference white. It is the composition of
// RGBToXYZ and XYZToLab.
func RGBToLab(c RGB, white ReferenceWhite) Lab {
	return XYZToLab(RGBToXYZ(c), white)
}

// linearize removes sRGB gamma encoding from a single channel value.
func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// labF is the forward lightness function of the Lab conversion. Below the
// CIE junction point 0.008856 the cube root is replaced by its linear
// approximation 7.787t + 16/116.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
