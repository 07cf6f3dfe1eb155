package vga

import "image/color"

// RGB expands a 6 bit RRGGBB bus value to a 24 bit color. Each 2 bit channel
// is scaled to the full 8 bit range, so 0b00 maps to 0 and 0b11 to 255.
func RGB(rrggbb uint8) color.RGBA {
	rr := (rrggbb >> 4) & 0x3
	gg := (rrggbb >> 2) & 0x3
	bb := rrggbb & 0x3

	return color.RGBA{
		R: uint8(int(rr) * 255 / 3),
		G: uint8(int(gg) * 255 / 3),
		B: uint8(int(bb) * 255 / 3),
		A: 255,
	}
}
