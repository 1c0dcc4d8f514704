package raster

import (
	"image"
	"image/color"
	"testing"
)

func countColour(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestLineEndpoints(t *testing.T) {
	img := New(20, 20)
	Line(img, image.Pt(2, 3), image.Pt(15, 11), red, 1)
	if img.RGBAAt(2, 3) != red || img.RGBAAt(15, 11) != red {
		t.Fatal("expected both endpoints painted")
	}
	if n := countColour(img, red); n != 14 {
		t.Fatalf("expected 14 pixels on a thin line, got %d", n)
	}
}

func TestLineClipsToBounds(t *testing.T) {
	img := New(10, 10)
	Line(img, image.Pt(-5, 5), image.Pt(15, 5), red, 3)
	if n := countColour(img, red); n != 30 {
		t.Fatalf("expected a 3px band across the image, got %d pixels", n)
	}
}

func TestLineWidth(t *testing.T) {
	for _, width := range []int{1, 2, 4, 5, 8} {
		img := New(40, 40)
		Line(img, image.Pt(5, 20), image.Pt(34, 20), red, width)
		column := 0
		for y := 0; y < 40; y++ {
			if img.RGBAAt(20, y) == red {
				column++
			}
		}
		if column != width {
			t.Errorf("width %d: stroke is %d pixels thick", width, column)
		}
	}
}

func TestDabCoversWidthSquared(t *testing.T) {
	tests := []struct {
		width    int
		min, max image.Point
	}{
		{1, image.Pt(10, 10), image.Pt(10, 10)},
		{2, image.Pt(9, 9), image.Pt(10, 10)},
		{3, image.Pt(9, 9), image.Pt(11, 11)},
		{4, image.Pt(8, 8), image.Pt(11, 11)},
	}
	for _, tt := range tests {
		img := New(20, 20)
		Dab(img, 10, 10, tt.width, red)
		if n := countColour(img, red); n != tt.width*tt.width {
			t.Fatalf("width %d: expected %d pixels, got %d", tt.width, tt.width*tt.width, n)
		}
		if img.RGBAAt(tt.min.X, tt.min.Y) != red || img.RGBAAt(tt.max.X, tt.max.Y) != red {
			t.Fatalf("width %d: expected corners %v and %v painted", tt.width, tt.min, tt.max)
		}
	}
}

func TestRectangleOutline(t *testing.T) {
	img := New(12, 12)
	Rectangle(img, image.Pt(8, 8), image.Pt(2, 2), red, 1)
	if n := countColour(img, red); n != 24 {
		t.Fatalf("expected 24 outline pixels, got %d", n)
	}
	if img.RGBAAt(5, 5) == red {
		t.Fatal("rectangle interior should stay empty")
	}
}

func TestTriangleVertices(t *testing.T) {
	img := New(20, 20)
	Triangle(img, image.Pt(2, 2), image.Pt(12, 16), red, 1)
	for _, p := range []image.Point{{7, 2}, {2, 16}, {12, 16}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("expected vertex %v painted", p)
		}
	}
}

func TestCircleRadius(t *testing.T) {
	img := New(30, 30)
	Circle(img, image.Pt(15, 15), 10, red, 1)
	for _, p := range []image.Point{{25, 15}, {5, 15}, {15, 25}, {15, 5}} {
		if img.RGBAAt(p.X, p.Y) != red {
			t.Fatalf("expected %v on the circle", p)
		}
	}
	if img.RGBAAt(15, 15) == red {
		t.Fatal("centre should not be painted")
	}
}

func TestClear(t *testing.T) {
	img := solid(10, 10, white)
	Clear(img, image.Pt(8, 8), 4)
	if n := countColour(img, color.RGBA{}); n != 4 {
		t.Fatalf("expected 4 cleared pixels, got %d", n)
	}
	Clear(img, image.Pt(20, 20), 4)
	if n := countColour(img, color.RGBA{}); n != 4 {
		t.Fatalf("clearing outside the image changed pixels")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := solid(3, 3, white)
	c := Clone(img)
	c.SetRGBA(0, 0, red)
	if img.RGBAAt(0, 0) != white {
		t.Fatal("clone aliases the source")
	}
	Restore(img, c)
	if img.RGBAAt(0, 0) != red {
		t.Fatal("restore did not copy pixels")
	}
}
