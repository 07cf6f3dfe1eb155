package vcd

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func scanTestHeader(t *testing.T, header string) (Directory, error) {
	t.Helper()
	return scanHeader(bufio.NewScanner(strings.NewReader(header)))
}

func TestScanHeader(t *testing.T) {
	header := `$date today $end
$timescale 1ns $end
$var wire 1 ! clk $end
$var wire 6 ~& io_vga_rrggbb $end
$var wire 1 ~# io_vga_hsync $end
$var wire 1 ~$ io_vga_vsync $end
  $var wire 1 ~% io_vga_activevideo $end
$var wire 10 ~' io_vga_x_pos $end
$var wire 10 ~( io_vga_y_pos $end
$var wire 1 ~) vga_hsync $end
$enddefinitions $end
`

	dir, err := scanTestHeader(t, header)
	assert.NoError(t, err)
	assert.Equal(t, "~#", dir.HSync)
	assert.Equal(t, "~$", dir.VSync)
	assert.Equal(t, "~%", dir.ActiveVideo)
	assert.Equal(t, "~&", dir.Color)
	assert.Equal(t, "~'", dir.XPos)
	assert.Equal(t, "~(", dir.YPos)
}

func TestScanHeaderOptionalCounters(t *testing.T) {
	header := `$var wire 1 ~# io_vga_hsync $end
$var wire 1 ~$ io_vga_vsync $end
$var wire 1 ~% io_vga_activevideo $end
$var wire 6 ~& io_vga_rrggbb $end
$enddefinitions $end
`

	dir, err := scanTestHeader(t, header)
	assert.NoError(t, err)
	assert.Equal(t, "", dir.XPos)
	assert.Equal(t, "", dir.YPos)
}

func TestScanHeaderMissingSignals(t *testing.T) {
	header := `$var wire 1 ~# io_vga_hsync $end
$var wire 6 ~& io_vga_rrggbb $end
$var wire 1 ~) vga_vsync $end
$enddefinitions $end
`

	_, err := scanTestHeader(t, header)
	assert.Error(t, err)

	var missingErr *MissingSignalsError
	assert.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{signalVSync, signalActiveVideo}, missingErr.Missing)
	assert.Equal(t, []string{signalHSync, signalColor}, missingErr.Found)
	assert.True(t, strings.Contains(err.Error(), signalVSync))
}

func TestScanHeaderIgnoresInternalSignals(t *testing.T) {
	// internal probes of the timing generator share the external pin names
	// but not the interface prefix
	header := `$var wire 1 a vga_hsync $end
$var wire 1 b u_vga.io_hsync $end
$var wire 1 ~# io_vga_hsync $end
$var wire 1 ~$ io_vga_vsync $end
$var wire 1 ~% io_vga_activevideo $end
$var wire 6 ~& io_vga_rrggbb $end
$enddefinitions $end
`

	dir, err := scanTestHeader(t, header)
	assert.NoError(t, err)
	assert.Equal(t, "~#", dir.HSync)
}

func TestScanHeaderMalformedVarLines(t *testing.T) {
	header := `$var wire 1 ~#
$var
$var wire 1 ~# io_vga_hsync $end
$var wire 1 ~$ io_vga_vsync $end
$var wire 1 ~% io_vga_activevideo $end
$var wire 6 ~& io_vga_rrggbb $end
$enddefinitions $end
`

	dir, err := scanTestHeader(t, header)
	assert.NoError(t, err)
	assert.Equal(t, "~#", dir.HSync)
}
