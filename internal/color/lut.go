package color

// byteToLinearLUT provides O(1) linearization of 8-bit sRGB channels.
// Pre-computed 256 entries, 2KB memory cost.
// Converts sRGB byte [0-255] → linear float64 [0.0-1.0].
var byteToLinearLUT [256]float64

func init() {
	for i := 0; i < 256; i++ {
		byteToLinearLUT[i] = Linearize(float64(i) / 255.0)
	}
}

// LinearizeByte converts an 8-bit sRGB channel to linear intensity using
// the lookup table. The result is identical to LinearizeByteSlow.
//
// Example:
//
//	g := LinearizeByte(128) // ~0.2159 (not 0.5!)
func LinearizeByte(b uint8) float64 {
	return byteToLinearLUT[b]
}

// LinearizeByteSlow converts an 8-bit sRGB channel with math.Pow.
// Used as the reference for LUT accuracy tests and benchmarks.
func LinearizeByteSlow(b uint8) float64 {
	return Linearize(float64(b) / 255.0)
}
