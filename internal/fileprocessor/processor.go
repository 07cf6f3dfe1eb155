// Package fileprocessor handles trace loading and frame rendering
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vcdrender/internal/options"
	"github.com/retroenv/vcdrender/internal/render"
	"github.com/retroenv/vcdrender/internal/vcd"
	"github.com/retroenv/vcdrender/internal/vga"
)

// ErrNoFrames is returned when the trace contained no renderable frames,
// either because it has no active video or the pixel ceiling cut extraction
// short.
var ErrNoFrames = errors.New("no frames extracted from trace")

// ProcessFile extracts frames from the trace file and renders the requested
// number of them to the terminal or to PNG files.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	frames, err := extractFrames(logger, opts)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return ErrNoFrames
	}

	count := opts.Frames
	if count > len(frames) {
		count = len(frames)
	}
	logger.Info("rendering frames", log.Int("count", count))

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Output == "" {
			if err := renderTerminal(frames[i], i, opts.Scale); err != nil {
				return fmt.Errorf("rendering frame %d: %w", i, err)
			}
			continue
		}

		name := OutputFilename(opts.Output, i, count)
		if err := writeImage(frames[i], name, opts.Upscale); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		logger.Info("saved frame", log.String("file", name))
	}
	return nil
}

// OutputFilename derives the per frame output name. With more than one frame
// to write, out.png becomes out_frame0.png, out_frame1.png and so on.
func OutputFilename(output string, frame, count int) string {
	if count <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s_frame%d%s", strings.TrimSuffix(output, ext), frame, ext)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("vcdrender - VGA frame renderer for VCD traces",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func extractFrames(logger *log.Logger, opts options.Program) ([]vga.Frame, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	logger.Info("parsing trace", log.String("file", opts.Input))

	extractor := vcd.NewExtractor(logger, opts.MaxPixels)
	frames, err := extractor.Extract(file)
	if err != nil {
		return nil, fmt.Errorf("extracting frames: %w", err)
	}

	logger.Info("extraction finished", log.Int("frames", len(frames)))
	return frames, nil
}

func renderTerminal(frame vga.Frame, index, scale int) error {
	fmt.Printf("Frame %d\n", index)
	return render.Terminal(os.Stdout, frame, scale)
}

func writeImage(frame vga.Frame, name string, upscale int) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}

	if err := render.WritePNG(file, frame, render.DefaultWidth, render.DefaultHeight, upscale); err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
