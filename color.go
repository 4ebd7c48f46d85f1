package wcag

import "image/color"

// Color is an sRGB color given as three channel intensities.
// Each component is in the range [0, 1]. Color is a plain value; the
// package never mutates one.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from sRGB channel intensities, rejecting any
// channel outside [0,1] or not finite.
func NewColor(r, g, b float64) (Color, error) {
	c := Color{R: r, G: g, B: b}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// RGB8 creates a color from 8-bit sRGB channels.
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// FromColor converts a standard color.Color to a Color.
//
// Alpha is dropped after un-premultiplying: contrast is only defined for
// opaque colors, and compositing over a backdrop is the caller's job.
// A fully transparent color converts to black.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
	}
}

// Validate reports the first channel outside [0,1] or not finite.
func (c Color) Validate() error {
	if !validChannel(c.R) {
		return &ChannelError{Channel: "red", Value: c.R}
	}
	if !validChannel(c.G) {
		return &ChannelError{Channel: "green", Value: c.G}
	}
	if !validChannel(c.B) {
		return &ChannelError{Channel: "blue", Value: c.B}
	}
	return nil
}

// validChannel is false for NaN and ±Inf as well.
func validChannel(v float64) bool {
	return v >= 0 && v <= 1
}
