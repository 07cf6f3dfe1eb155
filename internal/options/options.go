// Package options contains the program options.
package options

// Defaults for options not set on the command line.
const (
	DefaultFrames    = 1
	DefaultScale     = 2
	DefaultUpscale   = 1
	DefaultMaxPixels = 500000
)

// Program options of the renderer.
type Program struct {
	Input  string // VCD trace file
	Output string // PNG file, terminal rendering if empty

	Frames    int // number of frames to render
	Scale     int // sampling step for terminal rendering
	Upscale   int // integer upscale factor for PNG output
	MaxPixels int // pixel extraction ceiling

	Debug bool
	Quiet bool
}

// NewProgram returns program options with default values.
func NewProgram() Program {
	return Program{
		Frames:    DefaultFrames,
		Scale:     DefaultScale,
		Upscale:   DefaultUpscale,
		MaxPixels: DefaultMaxPixels,
	}
}
