package window

import (
	"image/color"
	"strings"

	"github.com/example/paintpad/internal/canvas"
)

// PaletteColor is a named swatch shown in the toolbar.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var palette = []PaletteColor{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

var (
	strokeWidths = []int{1, 2, 4, 6, 8}
	brushSizes   = []int{2, 4, 8, 12, 16, 24}
)

// Palette returns a copy of the toolbar swatches.
func Palette() []PaletteColor {
	out := make([]PaletteColor, len(palette))
	copy(out, palette)
	return out
}

// LookupPalette finds a swatch by name, ignoring case.
func LookupPalette(name string) (color.RGBA, bool) {
	for _, p := range palette {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Color, true
		}
	}
	return color.RGBA{}, false
}

// WidthOptions returns the widths offered for tool. Tools that take no width
// get nil.
func WidthOptions(tool canvas.Tool) []int {
	var src []int
	switch {
	case tool.UsesBrushSize():
		src = brushSizes
	case tool == canvas.ToolPaintBucket:
		return nil
	default:
		src = strokeWidths
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}

func paletteIndex(c color.RGBA) int {
	for i, p := range palette {
		if p.Color == c {
			return i
		}
	}
	return -1
}
