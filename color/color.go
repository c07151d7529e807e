// Package color provides the pad color value used throughout padcanvas.
package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGB pad color. The zero value is black
// (pad off).
type Color struct {
	R, G, B uint8
}

// Common pad colors.
var (
	Black   = Color{}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// New creates a color from 8-bit channel values.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromHSV creates a color from hue (degrees, 0-360), saturation and
// value (both 0-1). Inputs outside those ranges are clamped.
func FromHSV(h, s, v float64) Color {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	s = clamp01(s)
	v = clamp01(v)
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return Color{R: r, G: g, B: b}
}

// HSV returns the hue (degrees), saturation and value of the color.
func (c Color) HSV() (h, s, v float64) {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return cf.Hsv()
}

// Quantize6 reduces each channel to the 6-bit 0-63 range used by pad
// controller wire protocols.
func (c Color) Quantize6() (r, g, b uint8) {
	return c.R >> 2, c.G >> 2, c.B >> 2
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
