package scene

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/paintpad/internal/canvas"
)

const boxScene = `
width = 20
height = 20
background = "#FFFFFF"

[[step]]
tool = "rectangle"
color = "#FF0000"
stroke_width = 1
points = [[2, 2], [10, 10], [15, 15]]

[[step]]
tool = "fill"
color = "#00FF00"
points = [[5, 5]]
`

func play(t *testing.T, src string) (*canvas.Canvas, Result) {
	t.Helper()
	s, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, err := s.NewCanvas(0, 0)
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	res, err := s.Play(c)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	return c, res
}

func TestPlayBoxAndFill(t *testing.T) {
	c, res := play(t, boxScene)
	if res.Gestures != 2 {
		t.Fatalf("expected 2 gestures, got %d", res.Gestures)
	}
	img := c.View()
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	white := color.RGBA{255, 255, 255, 255}
	if img.RGBAAt(2, 2) != red || img.RGBAAt(15, 15) != red {
		t.Fatal("expected the final rectangle outline")
	}
	if img.RGBAAt(10, 6) == red {
		t.Fatal("intermediate preview should have been replaced")
	}
	if img.RGBAAt(8, 8) != green {
		t.Fatal("expected the rectangle interior filled")
	}
	if img.RGBAAt(18, 18) != white || img.RGBAAt(0, 0) != white {
		t.Fatal("fill leaked outside the rectangle")
	}
	if s := c.Settings(); s.Tool != canvas.ToolPaintBucket || s.Color != "#00FF00" {
		t.Fatalf("unexpected final settings %+v", s)
	}
}

func TestPlayUndo(t *testing.T) {
	c, res := play(t, boxScene+`
[[step]]
undo = true

[[step]]
undo = true

[[step]]
undo = true
ignore_empty_undo = true
`)
	if res.Undos != 2 || res.EmptyUndos != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if got := c.View().RGBAAt(2, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("expected blank canvas after undoing everything, got %v", got)
	}
}

func TestPlayEmptyUndoFails(t *testing.T) {
	s, err := Decode(strings.NewReader("width = 2\nheight = 2\n[[step]]\nundo = true\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, err := s.NewCanvas(0, 0)
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	_, err = s.Play(c)
	if !errors.Is(err, canvas.ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 1") {
		t.Fatalf("expected step index in %q", err)
	}
}

func TestPlayInvalidColor(t *testing.T) {
	s, err := Decode(strings.NewReader("[[step]]\ncolor = \"zzzzzz\"\npoints = [[0, 0]]\n"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c, err := s.NewCanvas(4, 4)
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	res, err := s.Play(c)
	if !errors.Is(err, canvas.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if res.Gestures != 0 || c.History().Len() != 0 {
		t.Fatal("a rejected step must not draw")
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("widht = 3\n"))
	if err == nil || !strings.Contains(err.Error(), "widht") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestNewCanvasFallbacks(t *testing.T) {
	s := &Scene{}
	if _, err := s.NewCanvas(0, 0); err == nil {
		t.Fatal("expected size error")
	}
	c, err := s.NewCanvas(7, 3)
	if err != nil {
		t.Fatalf("canvas: %v", err)
	}
	if c.Bounds().Dx() != 7 || c.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds %v", c.Bounds())
	}
	s = &Scene{Width: 2, Height: 2, Background: "nope"}
	if _, err := s.NewCanvas(0, 0); !errors.Is(err, canvas.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(boxScene), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Steps) != 2 || s.Steps[0].Points[1] != [2]int{10, 10} {
		t.Fatalf("unexpected steps %+v", s.Steps)
	}
}
