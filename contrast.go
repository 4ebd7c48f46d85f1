package wcag

// luminanceFloor is the flare term WCAG adds to both luminances.
const luminanceFloor = 0.05

// MinContrastRatio and MaxContrastRatio bound the ratio of any two valid
// colors. 21 is white against black.
const (
	MinContrastRatio = 1.0
	MaxContrastRatio = 21.0
)

// ContrastRatio returns the WCAG contrast ratio of two relative luminances:
//
//	(max(l1, l2) + 0.05) / (min(l1, l2) + 0.05)
//
// The result is at least 1 and does not depend on argument order. It is at
// most 21 only when both luminances are in [0,1], as RelativeLuminance
// guarantees; larger finite values are accepted and can exceed 21. A
// negative or non-finite luminance yields a *LuminanceError.
func ContrastRatio(l1, l2 float64) (float64, error) {
	if !validLuminance(l1) {
		return 0, &LuminanceError{Value: l1}
	}
	if !validLuminance(l2) {
		return 0, &LuminanceError{Value: l2}
	}
	hi, lo := l1+luminanceFloor, l2+luminanceFloor
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi / lo, nil
}
