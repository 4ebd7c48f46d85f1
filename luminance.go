package wcag

import (
	"math"

	icolor "github.com/gogpu/wcag/internal/color"
)

// Linearize converts one sRGB channel intensity to linear intensity using
// the WCAG 2.0 curve:
//
//	c <= 0.03928: c / 12.92
//	otherwise:    ((c + 0.055) / 1.055) ^ 2.4
//
// It returns a *ChannelError for input outside [0,1] or not finite.
func Linearize(c float64) (float64, error) {
	if !validChannel(c) {
		return 0, &ChannelError{Value: c}
	}
	return icolor.Linearize(c), nil
}

// RelativeLuminance returns the WCAG relative luminance of c, a value in
// [0,1] where 0 is black and 1 is white:
//
//	L = 0.2126·R + 0.7152·G + 0.0722·B
//
// with R, G and B the linearized channels.
func RelativeLuminance(c Color) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return icolor.Luminance(
		icolor.Linearize(c.R),
		icolor.Linearize(c.G),
		icolor.Linearize(c.B),
	), nil
}

// RelativeLuminance8 returns the relative luminance of an 8-bit sRGB color
// using a lookup table. The result equals RelativeLuminance(RGB8(r, g, b)).
func RelativeLuminance8(r, g, b uint8) float64 {
	return icolor.Luminance(
		icolor.LinearizeByte(r),
		icolor.LinearizeByte(g),
		icolor.LinearizeByte(b),
	)
}

// validLuminance rejects negative, NaN and infinite values.
func validLuminance(l float64) bool {
	return l >= 0 && !math.IsInf(l, 1)
}
