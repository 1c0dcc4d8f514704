package theme

import (
	"image/color"
)

// Theme defines the colours of the window chrome around the canvas. It never
// affects the pixels of the drawing itself.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window area around the canvas
	Foreground color.RGBA // Labels

	// Toolbar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected tool, colour or width
	ButtonText             color.RGBA
	ButtonTextActive       color.RGBA
	ButtonBorder           color.RGBA

	// Notices such as "No undo available!"
	NoticeBackground color.RGBA
	NoticeText       color.RGBA

	// Checkerboard shown through transparent canvas pixels
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{200, 200, 200, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundActive: color.RGBA{150, 150, 150, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonTextActive:       color.RGBA{255, 255, 255, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		NoticeBackground:       color.RGBA{255, 255, 255, 230},
		NoticeText:             color.RGBA{0, 0, 0, 255},
		CheckerLight:           color.RGBA{220, 220, 220, 255},
		CheckerDark:            color.RGBA{192, 192, 192, 255},
	}
}
