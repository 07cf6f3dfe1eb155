// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/vcdrender/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.NewProgram()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: vcdrender [options] <trace file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after trace file, please pass the trace file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks option values for usable ranges
func validateOptions(opts options.Program) error {
	if opts.Frames < 1 {
		return &UsageError{msg: fmt.Sprintf("invalid frame count: %d", opts.Frames)}
	}
	if opts.Scale < 1 {
		return &UsageError{msg: fmt.Sprintf("invalid scale factor: %d", opts.Scale)}
	}
	if opts.Upscale < 1 {
		return &UsageError{msg: fmt.Sprintf("invalid upscale factor: %d", opts.Upscale)}
	}
	if opts.MaxPixels < 1 {
		return &UsageError{msg: fmt.Sprintf("invalid pixel ceiling: %d", opts.MaxPixels)}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output PNG file, rendered to the terminal if no name given")
	flags.IntVar(&opts.Frames, "frames", options.DefaultFrames, "number of frames to render")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "sampling step for terminal rendering")
	flags.IntVar(&opts.Upscale, "upscale", options.DefaultUpscale, "integer upscale factor for PNG output")
	flags.IntVar(&opts.MaxPixels, "max-pixels", options.DefaultMaxPixels, "maximum number of pixels to extract")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
