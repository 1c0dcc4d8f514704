package geom

import (
	"image"
	"math"
	"testing"
)

func TestCanvasPoint(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float32
		origin image.Point
		zoom   float64
		want   image.Point
	}{
		{"identity", 10, 20, image.Point{}, 1, image.Pt(10, 20)},
		{"offset", 110, 45, image.Pt(100, 40), 1, image.Pt(10, 5)},
		{"rounds", 10.6, 3.4, image.Point{}, 1, image.Pt(11, 3)},
		{"zoomed", 60, 60, image.Pt(50, 50), 0.5, image.Pt(20, 20)},
		{"invalid zoom", 5, 5, image.Point{}, 0, image.Pt(5, 5)},
		{"left of canvas", 2, 2, image.Pt(10, 10), 1, image.Pt(-8, -8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanvasPoint(tt.x, tt.y, tt.origin, tt.zoom)
			if got != tt.want {
				t.Fatalf("CanvasPoint(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(image.Pt(0, 0), image.Pt(3, 4)); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
	if d := Distance(image.Pt(7, 7), image.Pt(7, 7)); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
	d := Distance(image.Pt(-1, 2), image.Pt(2, -2))
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected 5, got %v", d)
	}
}
