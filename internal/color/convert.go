package color

import "math"

// Constants of the WCAG 2.0 sRGB decoding curve.
//
// WCAG uses 0.03928 as the breakpoint, not the 0.04045 of IEC 61966-2-1.
// No 8-bit value falls between the two, but the WCAG figure is kept exactly.
const (
	Breakpoint  = 0.03928
	LinearSlope = 12.92
	CurveOffset = 0.055
	CurveScale  = 1.055
	CurveGamma  = 2.4
)

// Linearize converts a gamma-encoded sRGB channel to linear intensity.
// Formula: if c <= 0.03928: c/12.92; else: pow((c+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func Linearize(c float64) float64 {
	if c <= Breakpoint {
		return c / LinearSlope
	}
	return math.Pow((c+CurveOffset)/CurveScale, CurveGamma)
}
