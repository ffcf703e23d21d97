// Package colorspace implements the color math behind mosaic matching:
// conversion from sRGB through CIE XYZ into CIE L*a*b*, and the CIEDE2000
// perceptual color difference.
//
// # Conversion Pipeline
//
// Colors enter as normalized sRGB triples (components in 0-1). RGBToXYZ
// removes the sRGB gamma curve and applies the standard D65 primaries
// matrix, producing XYZ scaled to a white luminance of 100. XYZToLab then
// normalizes against a caller-supplied reference white and maps into
// L*a*b*, where Euclidean-ish distances track human perception.
//
// # Reference White
//
// The Lab conversion is parameterized by a ReferenceWhite so callers can
// match the illuminant of their source material. D65 (standard daylight)
// is the default used throughout the mosaic engine.
//
// All functions in this package are pure: no state, no side effects, and
// safe for concurrent use.
package colorspace
