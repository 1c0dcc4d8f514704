package raster

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#1a2b3c", color.RGBA{26, 43, 60, 255}, true},
		{"1A2B3C", color.RGBA{26, 43, 60, 255}, true},
		{"#FF0000", color.RGBA{255, 0, 0, 255}, true},
		{"#000000", color.RGBA{0, 0, 0, 255}, true},
		{"zzzzzz", color.RGBA{}, false},
		{"#fff", color.RGBA{}, false},
		{"#1a2b3c4d", color.RGBA{}, false},
		{"##1a2b3c", color.RGBA{}, false},
		{"+1a2b3", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHex(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{26, 43, 60, 255}); got != "#1A2B3C" {
		t.Errorf("unexpected %q", got)
	}
	if got := Hex(color.RGBA{}); got != "#00000000" {
		t.Errorf("unexpected %q", got)
	}
}
