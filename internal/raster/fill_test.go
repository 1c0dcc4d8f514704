package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := New(w, h)
	Paint(img, c)
	return img
}

func TestFloodFillSolidBuffer(t *testing.T) {
	img := solid(10, 10, white)
	fill, ok := ParseHex("#FF0000")
	if !ok {
		t.Fatal("expected #FF0000 to parse")
	}
	if n := FloodFill(img, image.Pt(5, 5), fill); n != 100 {
		t.Fatalf("expected 100 pixels painted, got %d", n)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := img.RGBAAt(x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, red)
			}
		}
	}
}

func TestFloodFillSameColourIsNoop(t *testing.T) {
	img := solid(8, 6, white)
	img.SetRGBA(3, 3, red)
	before := append([]uint8(nil), img.Pix...)
	for _, seed := range []image.Point{{0, 0}, {3, 3}, {7, 5}} {
		fill := img.RGBAAt(seed.X, seed.Y)
		if n := FloodFill(img, seed, fill); n != 0 {
			t.Fatalf("seed %v: expected no-op, painted %d", seed, n)
		}
		if !bytes.Equal(before, img.Pix) {
			t.Fatalf("seed %v: buffer changed", seed)
		}
	}
}

func TestFloodFillBarrier(t *testing.T) {
	// A vertical black line at x=4 splits the buffer into two white regions.
	img := solid(9, 7, white)
	for y := 0; y < 7; y++ {
		img.SetRGBA(4, y, black)
	}
	n := FloodFill(img, image.Pt(1, 3), red)
	if n != 4*7 {
		t.Fatalf("expected %d pixels painted, got %d", 4*7, n)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 9; x++ {
			got := img.RGBAAt(x, y)
			want := white
			switch {
			case x < 4:
				want = red
			case x == 4:
				want = black
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFloodFillIsFourConnected(t *testing.T) {
	// Two white pixels touching only at a corner must not both fill.
	img := solid(2, 2, black)
	img.SetRGBA(0, 0, white)
	img.SetRGBA(1, 1, white)
	if n := FloodFill(img, image.Pt(0, 0), red); n != 1 {
		t.Fatalf("expected 1 pixel painted, got %d", n)
	}
	if got := img.RGBAAt(1, 1); got != white {
		t.Fatalf("diagonal neighbour changed to %v", got)
	}
}

func TestFloodFillOutOfBoundsSeed(t *testing.T) {
	img := solid(4, 4, white)
	before := append([]uint8(nil), img.Pix...)
	for _, seed := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {10, 10}} {
		if n := FloodFill(img, seed, red); n != 0 {
			t.Fatalf("seed %v: expected no-op, painted %d", seed, n)
		}
	}
	if !bytes.Equal(before, img.Pix) {
		t.Fatal("buffer changed by out-of-bounds seeds")
	}
}

func TestFloodFillStaysInsideBounds(t *testing.T) {
	// A sub-image shares its parent's pixel slice; filling it must not leak
	// into the parent's pixels outside the sub-rectangle.
	parent := solid(6, 6, white)
	sub := parent.SubImage(image.Rect(1, 1, 5, 5)).(*image.RGBA)
	if n := FloodFill(sub, image.Pt(2, 2), red); n != 16 {
		t.Fatalf("expected 16 pixels painted, got %d", n)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 5 && y >= 1 && y < 5
			want := white
			if inside {
				want = red
			}
			if got := parent.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFloodFillMatchesAlpha(t *testing.T) {
	img := New(3, 1)
	img.SetRGBA(1, 0, color.RGBA{0, 0, 0, 1})
	if n := FloodFill(img, image.Pt(0, 0), red); n != 1 {
		t.Fatalf("expected only the transparent pixel to fill, got %d", n)
	}
}

func TestFloodFillLargeRegion(t *testing.T) {
	img := New(400, 300)
	if n := FloodFill(img, image.Pt(200, 150), red); n != 400*300 {
		t.Fatalf("expected whole buffer painted, got %d", n)
	}
}

func BenchmarkFloodFill(b *testing.B) {
	img := New(512, 512)
	colors := []color.RGBA{red, white}
	for i := 0; i < b.N; i++ {
		FloodFill(img, image.Pt(256, 256), colors[i%2])
	}
}
