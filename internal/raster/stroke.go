package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Dab paints a width by width square brush tip centred on (x, y). Even widths
// put the extra pixel above and left of the centre.
func Dab(img *image.RGBA, x, y, width int, col color.RGBA) {
	lo := -width / 2
	hi := lo + width - 1
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(img.Rect) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

// Line strokes the segment from a to b with a square tip of the given width.
func Line(img *image.RGBA, a, b image.Point, col color.RGBA, width int) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		Dab(img, x0, y0, width, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon strokes the closed outline through pts.
func Polygon(img *image.RGBA, pts []image.Point, col color.RGBA, width int) {
	for i := range pts {
		Line(img, pts[i], pts[(i+1)%len(pts)], col, width)
	}
}

// Rectangle outlines the axis-aligned box with corners a and c.
func Rectangle(img *image.RGBA, a, c image.Point, col color.RGBA, width int) {
	Polygon(img, []image.Point{a, image.Pt(c.X, a.Y), c, image.Pt(a.X, c.Y)}, col, width)
}

// Triangle outlines the triangle spanned by a drag from start to cur: the apex
// sits halfway between them at start's height and the base runs along cur's
// height.
func Triangle(img *image.RGBA, start, cur image.Point, col color.RGBA, width int) {
	apex := image.Pt(start.X+(cur.X-start.X)/2, start.Y)
	Polygon(img, []image.Point{apex, image.Pt(start.X, cur.Y), cur}, col, width)
}

func circleThin(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	x := r
	y := 0
	err := 1 - r
	for x >= y {
		pts := [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}}
		for _, p := range pts {
			q := image.Pt(cx+p[0], cy+p[1])
			if q.In(img.Rect) {
				img.SetRGBA(q.X, q.Y, col)
			}
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// Circle outlines a circle of radius r around centre. Thick outlines are built
// from concentric rings straddling r.
func Circle(img *image.RGBA, centre image.Point, r float64, col color.RGBA, width int) {
	radius := int(math.Round(r))
	if width <= 1 {
		circleThin(img, centre.X, centre.Y, radius, col)
		return
	}
	start := -width / 2
	for i := 0; i < width; i++ {
		rr := radius + start + i
		if rr >= 0 {
			circleThin(img, centre.X, centre.Y, rr, col)
		}
	}
}

// Clear makes the size by size square whose top-left corner is at p fully
// transparent.
func Clear(img *image.RGBA, p image.Point, size int) {
	rect := image.Rect(p.X, p.Y, p.X+size, p.Y+size).Intersect(img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(img, rect, image.Transparent, image.Point{}, draw.Src)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
