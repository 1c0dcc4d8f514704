// Package scene replays scripted drawing sessions described in TOML.
//
// A scene sets up a canvas and then runs a list of steps. A step may change
// any drawing setting and then either performs one gesture through its points
// (the first point starts the gesture, the rest are moves) or undoes the last
// gesture.
package scene

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/raster"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	UndoLimit  int    `toml:"undo_limit"`
	Steps      []Step `toml:"step"`
}

// Step is a single settings change plus gesture, or an undo.
type Step struct {
	Tool            string   `toml:"tool"`
	Color           string   `toml:"color"`
	StrokeWidth     int      `toml:"stroke_width"`
	BrushSize       int      `toml:"brush_size"`
	BrushErases     *bool    `toml:"brush_erases"`
	Points          [][2]int `toml:"points"`
	Undo            bool     `toml:"undo"`
	IgnoreEmptyUndo bool     `toml:"ignore_empty_undo"`
}

// Result summarises a replay.
type Result struct {
	Gestures int
	Undos    int
	// EmptyUndos counts undo steps skipped because the history was empty.
	EmptyUndos int
}

// Decode reads a scene from r. Unknown keys are rejected so typos do not
// silently change the drawing.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse scene: unknown keys %s", strings.Join(keys, ", "))
	}
	return &s, nil
}

// Load decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// NewCanvas builds the canvas the scene draws on. fallbackW and fallbackH are
// used when the scene does not set a size.
func (s *Scene) NewCanvas(fallbackW, fallbackH int) (*canvas.Canvas, error) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = fallbackW
	}
	if h <= 0 {
		h = fallbackH
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scene canvas size %dx%d is invalid", w, h)
	}
	var opts []canvas.Option
	if s.UndoLimit > 0 {
		opts = append(opts, canvas.WithUndoLimit(s.UndoLimit))
	}
	if s.Background != "" {
		bg, ok := raster.ParseHex(s.Background)
		if !ok {
			return nil, fmt.Errorf("scene background: %w: %q", canvas.ErrInvalidColor, s.Background)
		}
		opts = append(opts, canvas.WithBackground(bg))
	}
	return canvas.New(w, h, opts...), nil
}

// Play runs every step on c in order and stops at the first failing step.
func (s *Scene) Play(c *canvas.Canvas) (Result, error) {
	var res Result
	for i, st := range s.Steps {
		if err := st.apply(c, &res); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return res, nil
}

func (st Step) apply(c *canvas.Canvas, res *Result) error {
	if st.Undo {
		if len(st.Points) > 0 {
			return errors.New("undo steps cannot have points")
		}
		err := c.Undo()
		switch {
		case err == nil:
			res.Undos++
		case errors.Is(err, canvas.ErrNothingToUndo) && st.IgnoreEmptyUndo:
			res.EmptyUndos++
		default:
			return err
		}
		return nil
	}

	settings := c.Settings()
	if st.Tool != "" {
		t, err := canvas.ParseTool(st.Tool)
		if err != nil {
			return err
		}
		settings.Tool = t
	}
	if st.Color != "" {
		settings.Color = st.Color
	}
	if st.StrokeWidth > 0 {
		settings.StrokeWidth = st.StrokeWidth
	}
	if st.BrushSize > 0 {
		settings.BrushSize = st.BrushSize
	}
	if st.BrushErases != nil {
		settings.BrushErases = *st.BrushErases
	}
	if err := c.Configure(settings); err != nil {
		return err
	}

	if len(st.Points) == 0 {
		return nil
	}
	c.GestureStart(point(st.Points[0]))
	for _, p := range st.Points[1:] {
		c.GestureMove(point(p))
	}
	c.GestureEnd()
	res.Gestures++
	return nil
}

func point(p [2]int) image.Point { return image.Pt(p[0], p[1]) }
