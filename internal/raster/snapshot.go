package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// New returns a transparent zero-origin raster of the given size.
func New(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// FromImage copies src into a new zero-origin RGBA raster.
func FromImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}

// Clone returns an independent copy of img.
func Clone(img *image.RGBA) *image.RGBA {
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}

// Restore overwrites dst with the pixels of snap row by row. Both must share
// bounds; bytes outside dst.Rect are never written.
func Restore(dst, snap *image.RGBA) {
	r := dst.Rect.Intersect(snap.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := snap.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+n], snap.Pix[si:si+n])
	}
}

// Paint floods the whole raster with c.
func Paint(img *image.RGBA, c color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
