package vga

import (
	"image"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrameSetOverwrites(t *testing.T) {
	frame := Frame{}
	frame.Set(10, 20, 0b101010)
	frame.Set(10, 20, 0b111111)

	assert.Equal(t, 1, frame.PixelCount())
	assert.Equal(t, uint8(0b111111), frame.At(10, 20))
}

func TestFrameAtUnsetCoordinate(t *testing.T) {
	frame := Frame{}
	assert.Equal(t, uint8(0), frame.At(5, 5))
}

func TestFrameBounds(t *testing.T) {
	tests := []struct {
		name   string
		pixels []image.Point
		want   image.Rectangle
	}{
		{
			name: "empty frame",
			want: image.Rectangle{},
		},
		{
			name:   "single pixel",
			pixels: []image.Point{{X: 3, Y: 7}},
			want:   image.Rect(3, 7, 4, 8),
		},
		{
			name: "spread pixels",
			pixels: []image.Point{
				{X: 10, Y: 40},
				{X: 2, Y: 8},
				{X: 30, Y: 15},
			},
			want: image.Rect(2, 8, 31, 41),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := Frame{}
			for _, p := range tt.pixels {
				frame.Set(p.X, p.Y, 1)
			}
			assert.Equal(t, tt.want, frame.Bounds())
		})
	}
}
