package oracle

import "github.com/gogpu/wcag"

const hexDigits = "0123456789abcdef"

// Hex encodes a color as six lower-case hex digits, "rrggbb".
//
// Each channel maps to int(255*c), truncating, so 0.5 encodes as "7f".
// Channels outside [0,1] are clamped; validate the color first.
func Hex(c wcag.Color) string {
	var buf [6]byte
	for i, v := range [3]float64{c.R, c.G, c.B} {
		b := channelByte(v)
		buf[2*i] = hexDigits[b>>4]
		buf[2*i+1] = hexDigits[b&0x0f]
	}
	return string(buf[:])
}

// channelByte truncates a channel intensity to a byte.
func channelByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(255 * v)
	}
}
