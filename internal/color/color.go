// Package color holds the numeric primitives behind WCAG relative luminance:
// the sRGB linearization curve and the CIE 1931 luminance weights.
//
// Functions in this package do no validation. Callers in package wcag check
// that channel values are finite and inside [0,1] before calling in.
package color

// Luminance weights for linear sRGB primaries (ITU-R BT.709, CIE 1931 Y).
const (
	WeightR = 0.2126
	WeightG = 0.7152
	WeightB = 0.0722
)

// Luminance combines three linearized channels into relative luminance.
func Luminance(r, g, b float64) float64 {
	return WeightR*r + WeightG*g + WeightB*b
}
