package vcd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/vcdrender/internal/vga"
)

const progressFrameInterval = 10

// Extractor replays a VCD trace and assembles the VGA output into frames.
type Extractor struct {
	logger    *log.Logger
	maxPixels int
}

// NewExtractor returns an extractor that stops after maxPixels color samples.
func NewExtractor(logger *log.Logger, maxPixels int) *Extractor {
	return &Extractor{
		logger:    logger,
		maxPixels: maxPixels,
	}
}

// snapshot holds the last known value of every tracked signal. The trace only
// records signals when they change, all reads go through this record.
type snapshot struct {
	hsync  uint8
	vsync  uint8
	active uint8
	color  uint8
	x      int
	y      int
}

// Extract reads the trace in a single pass and returns the sealed frames in
// temporal order. An empty result with a nil error means the trace contained
// no active video, callers treat it as the no frames condition.
func (e *Extractor) Extract(r io.Reader) ([]vga.Frame, error) {
	scanner := bufio.NewScanner(r)

	dir, err := scanHeader(scanner)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("resolved VGA signals",
		log.String("hsync", dir.HSync),
		log.String("vsync", dir.VSync),
		log.String("activevideo", dir.ActiveVideo),
		log.String("color", dir.Color))

	return e.replay(scanner, dir)
}

func (e *Extractor) replay(scanner *bufio.Scanner, dir Directory) ([]vga.Frame, error) {
	state := snapshot{hsync: 1, vsync: 1}
	// kept outside the snapshot, the snapshot value is overwritten before
	// the edge comparison could otherwise happen
	prevVSync := uint8(1)

	var frames []vga.Frame
	current := vga.Frame{}
	pixelCount := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' { // timestamp markers carry no change
			continue
		}

		switch line[0] {
		case '0', '1':
			if len(line) < 2 {
				continue
			}
			value := line[0] - '0'
			code := strings.TrimSpace(line[1:])

			switch code {
			case dir.VSync:
				// frame boundary: vsync rising edge after a falling edge,
				// a boundary seen on an empty frame is sync pre-roll
				if prevVSync == 0 && value == 1 && len(current) > 0 {
					frames = append(frames, current)
					current = vga.Frame{}
					if len(frames)%progressFrameInterval == 0 {
						e.logger.Debug("extraction progress",
							log.Int("frames", len(frames)),
							log.Int("pixels", pixelCount))
					}
				}
				prevVSync = value
				state.vsync = value

			case dir.HSync:
				state.hsync = value

			case dir.ActiveVideo:
				state.active = value
			}

		case 'b':
			// b101010 $%
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			value, ok := parseBinary(fields[0][1:])
			if !ok { // corrupt samples must not abort the replay
				continue
			}

			switch fields[1] {
			case dir.Color:
				state.color = uint8(value)
				if state.active != 1 {
					continue // blanking interval is not sampled
				}
				current.Set(state.x, state.y, state.color)
				pixelCount++
				if pixelCount >= e.maxPixels {
					if len(current) > 0 {
						frames = append(frames, current)
					}
					e.logger.Info("pixel ceiling reached",
						log.Int("max_pixels", e.maxPixels),
						log.Int("frames", len(frames)))
					return frames, nil
				}

			case dir.XPos:
				state.x = int(value)

			case dir.YPos:
				state.y = int(value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return frames, fmt.Errorf("reading trace body: %w", err)
	}

	// trace ended mid frame without a trailing vsync edge
	if len(current) > 0 {
		frames = append(frames, current)
	}

	e.logger.Debug("extraction finished",
		log.Int("frames", len(frames)),
		log.Int("pixels", pixelCount))
	return frames, nil
}

// parseBinary decodes an unsigned binary value field. An empty bit string
// decodes to 0, a malformed one reports false.
func parseBinary(bits string) (uint64, bool) {
	if bits == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
