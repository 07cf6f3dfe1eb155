// Package render produces terminal and image output for extracted frames.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/vcdrender/internal/vga"
)

const block = "█"

// Terminal writes the frame to w as ANSI truecolor block characters. The
// frame's bounding box is sampled every scale pixels, unset coordinates
// render as black.
func Terminal(w io.Writer, frame vga.Frame, scale int) error {
	if scale < 1 {
		scale = 1
	}

	if frame.PixelCount() == 0 {
		_, err := fmt.Fprintln(w, "empty frame")
		return err
	}

	bounds := frame.Bounds()
	if _, err := fmt.Fprintf(w, "frame bounds: X[%d:%d] Y[%d:%d] (%d pixels)\n",
		bounds.Min.X, bounds.Max.X-1, bounds.Min.Y, bounds.Max.Y-1,
		frame.PixelCount()); err != nil {

		return err
	}

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += scale {
		sb.Reset()
		for x := bounds.Min.X; x < bounds.Max.X; x += scale {
			c := vga.RGB(frame.At(x, y))
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, block)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
