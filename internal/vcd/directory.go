// Package vcd implements VGA frame extraction from VCD value change traces.
package vcd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
)

// signalPrefix selects the top level VGA interface signals in the trace and
// skips internal implementation signals. The filter is a plain string prefix,
// an internal signal whose flattened name starts with the prefix would still
// bind to a role.
const signalPrefix = "io_vga_"

// VGA interface signal names as declared in the trace header.
const (
	signalHSync       = signalPrefix + "hsync"
	signalVSync       = signalPrefix + "vsync"
	signalActiveVideo = signalPrefix + "activevideo"
	signalColor       = signalPrefix + "rrggbb"
	signalXPos        = signalPrefix + "x_pos"
	signalYPos        = signalPrefix + "y_pos"
)

const endOfHeaderMarker = "$enddefinitions"

// Directory maps the VGA interface signals to their trace identifier codes.
// It is built once from the trace header and read only afterwards.
type Directory struct {
	HSync       string
	VSync       string
	ActiveVideo string
	Color       string

	// coordinate counters are optional, an empty code means the design does
	// not export the counter and pixels default to coordinate (0,0)
	XPos string
	YPos string
}

// MissingSignalsError is returned when the trace header does not declare all
// mandatory VGA interface signals.
type MissingSignalsError struct {
	Missing []string // unresolved mandatory signal names
	Found   []string // all interface signals discovered in the header
}

func (e *MissingSignalsError) Error() string {
	return fmt.Sprintf("missing VGA signals in trace: %s (found: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// scanHeader reads header lines up to the end of definitions marker and
// resolves the VGA signal identifier codes. The scanner is left positioned at
// the first body line.
func scanHeader(scanner *bufio.Scanner) (Directory, error) {
	codes := map[string]string{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "$var") {
			// $var wire 1 ~# io_vga_hsync $end
			fields := strings.Fields(line)
			if len(fields) >= 5 && strings.HasPrefix(fields[4], signalPrefix) {
				codes[fields[4]] = fields[3]
			}
		}

		if strings.Contains(line, endOfHeaderMarker) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Directory{}, fmt.Errorf("reading trace header: %w", err)
	}

	dir := Directory{
		HSync:       codes[signalHSync],
		VSync:       codes[signalVSync],
		ActiveVideo: codes[signalActiveVideo],
		Color:       codes[signalColor],
		XPos:        codes[signalXPos],
		YPos:        codes[signalYPos],
	}

	var missing []string
	for _, mandatory := range []struct {
		name string
		code string
	}{
		{signalHSync, dir.HSync},
		{signalVSync, dir.VSync},
		{signalActiveVideo, dir.ActiveVideo},
		{signalColor, dir.Color},
	} {
		if mandatory.code == "" {
			missing = append(missing, mandatory.name)
		}
	}
	if len(missing) > 0 {
		found := make([]string, 0, len(codes))
		for name := range codes {
			found = append(found, name)
		}
		sort.Strings(found)
		return Directory{}, &MissingSignalsError{Missing: missing, Found: found}
	}

	return dir, nil
}
