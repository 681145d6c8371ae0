package core

import "image/color"

// Color is a linear RGB triple. Channels are not bounded above while light
// accumulates; they are clamped only when converted to a pixel.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from real-valued channels
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorRGB8 creates a color from 0-255 channel values
func NewColorRGB8(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns the unit color
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Clamp returns a color with channels clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}

// RGBA converts the color to an opaque 8-bit pixel
func (c Color) RGBA() color.RGBA {
	clamped := c.Clamp()
	return color.RGBA{
		R: uint8(255 * clamped.R),
		G: uint8(255 * clamped.G),
		B: uint8(255 * clamped.B),
		A: 255,
	}
}
