package raster

import (
	"image"
	"image/color"
)

// FloodFill repaints the 4-connected region around seed whose pixels share the
// seed's colour with fill, and returns how many pixels changed.
//
// The walk runs on a private copy of img in generational batches: every
// matching pixel of the current batch is painted and its four neighbours are
// queued for the next batch without being tested first. The copy is written
// back to img in one step once a batch comes up empty. Pixels outside the
// bounds never match, so a seed off the canvas is a no-op.
func FloodFill(img *image.RGBA, seed image.Point, fill color.RGBA) int {
	work := Clone(img)
	target, ok := pixelAt(work, seed)
	if !ok || target == fill {
		return 0
	}

	painted := 0
	batch := []image.Point{seed}
	var next []image.Point
	for len(batch) > 0 {
		for _, p := range batch {
			if c, ok := pixelAt(work, p); !ok || c != target {
				continue
			}
			setPixel(work, p, fill)
			painted++
			next = append(next,
				image.Pt(p.X+1, p.Y),
				image.Pt(p.X-1, p.Y),
				image.Pt(p.X, p.Y+1),
				image.Pt(p.X, p.Y-1),
			)
		}
		batch, next = next, batch[:0]
	}

	if painted > 0 {
		Restore(img, work)
	}
	return painted
}

// pixelAt reads the colour at p straight from the pixel slice. ok is false
// when p lies outside the image.
func pixelAt(img *image.RGBA, p image.Point) (c color.RGBA, ok bool) {
	if !p.In(img.Rect) {
		return color.RGBA{}, false
	}
	i := img.PixOffset(p.X, p.Y)
	s := img.Pix[i : i+4 : i+4]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: s[3]}, true
}

func setPixel(img *image.RGBA, p image.Point, c color.RGBA) {
	i := img.PixOffset(p.X, p.Y)
	s := img.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}
