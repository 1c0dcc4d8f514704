// Package geom converts pointer positions into canvas pixel space.
package geom

import (
	"image"
	"math"
)

// CanvasPoint maps a pointer position in window coordinates to a pixel of a
// canvas drawn with its top-left corner at origin and scaled by zoom.
// Coordinates are rounded to the nearest pixel.
func CanvasPoint(x, y float32, origin image.Point, zoom float64) image.Point {
	if zoom <= 0 {
		zoom = 1
	}
	cx := (float64(x) - float64(origin.X)) / zoom
	cy := (float64(y) - float64(origin.Y)) / zoom
	return image.Pt(int(math.Round(cx)), int(math.Round(cy)))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b image.Point) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}
