package raster

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex converts a six digit hexadecimal colour, with an optional leading
// '#', into an opaque RGBA value. The digits are case-insensitive. ok is false
// when s is not exactly six hex digits.
func ParseHex(s string) (c color.RGBA, ok bool) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(val >> 16),
		G: uint8((val >> 8) & 0xFF),
		B: uint8(val & 0xFF),
		A: 255,
	}, true
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when c is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
