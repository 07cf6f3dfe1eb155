package render

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/retroenv/vcdrender/internal/vga"
)

// Default raster size of the simulated VGA mode.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Image renders the frame into an RGBA image of the given raster size with a
// black background. Coordinates outside the raster are dropped.
func Image(frame vga.Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	for p, value := range frame {
		if p.In(img.Bounds()) {
			img.SetRGBA(p.X, p.Y, vga.RGB(value))
		}
	}
	return img
}

// WritePNG encodes the frame as a PNG of the given raster size, upscaled by
// the integer factor using nearest neighbor sampling to keep pixels crisp.
func WritePNG(w io.Writer, frame vga.Frame, width, height, upscale int) error {
	img := Image(frame, width, height)

	if upscale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, width*upscale, height*upscale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	return png.Encode(w, img)
}
