// Package vga contains the raster frame model and color decoding for the
// simulated VGA output.
package vga

import (
	"image"
)

// Frame maps raster coordinates to raw color bus values. Writing to an
// already populated coordinate overwrites the earlier sample.
type Frame map[image.Point]uint8

// Set stores a color sample at the given coordinate.
func (f Frame) Set(x, y int, value uint8) {
	f[image.Point{X: x, Y: y}] = value
}

// At returns the color value at the given coordinate, 0 if the coordinate
// was never sampled.
func (f Frame) At(x, y int) uint8 {
	return f[image.Point{X: x, Y: y}]
}

// PixelCount returns the number of populated coordinates.
func (f Frame) PixelCount() int {
	return len(f)
}

// Bounds returns the bounding box of all populated coordinates, with Max
// exclusive following the image.Rectangle convention. An empty frame returns
// the zero rectangle.
func (f Frame) Bounds() image.Rectangle {
	if len(f) == 0 {
		return image.Rectangle{}
	}

	first := true
	var bounds image.Rectangle
	for p := range f {
		if first {
			bounds = image.Rectangle{Min: p, Max: p}
			first = false
			continue
		}
		if p.X < bounds.Min.X {
			bounds.Min.X = p.X
		}
		if p.Y < bounds.Min.Y {
			bounds.Min.Y = p.Y
		}
		if p.X > bounds.Max.X {
			bounds.Max.X = p.X
		}
		if p.Y > bounds.Max.Y {
			bounds.Max.Y = p.Y
		}
	}
	bounds.Max.X++
	bounds.Max.Y++
	return bounds
}
