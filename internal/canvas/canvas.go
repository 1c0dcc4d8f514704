// Package canvas owns a raster and turns pointer gestures into drawing on it.
//
// A Canvas is driven by GestureStart, GestureMove and GestureEnd. Every
// gesture first records the pre-gesture raster in a bounded undo history;
// freehand, eraser and paint-bucket tools change pixels as events arrive, while
// shape tools redraw a preview over the pre-gesture raster on each move. A
// Canvas is not safe for concurrent use.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/example/paintpad/internal/geom"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/raster"
)

var (
	// ErrInvalidColor is returned by Configure for colours that are not six
	// hex digits.
	ErrInvalidColor = errors.New("invalid color")
	// ErrNothingToUndo is returned by Undo when the history is empty.
	ErrNothingToUndo = errors.New("no undo available")
)

// Settings configures the next drawing operation.
type Settings struct {
	Tool        Tool
	StrokeWidth int
	BrushSize   int
	Color       string
	// BrushErases makes brush moves also clear a BrushSize square at the
	// pointer, as the first releases of the tool did.
	BrushErases bool
}

// DefaultSettings returns the settings a fresh canvas starts with.
func DefaultSettings() Settings {
	return Settings{
		Tool:        ToolLine,
		StrokeWidth: 1,
		BrushSize:   4,
		Color:       "#000000",
	}
}

// Canvas is the drawing surface controller.
type Canvas struct {
	img      *image.RGBA
	history  *History
	settings Settings
	color    color.RGBA

	active bool
	saved  *image.RGBA
	start  image.Point
	last   image.Point
}

// Option modifies a Canvas during creation.
type Option func(*Canvas)

// WithUndoLimit sets how many gestures can be undone.
func WithUndoLimit(n int) Option { return func(c *Canvas) { c.history = NewHistory(n) } }

// WithBackground paints the initial raster with col.
func WithBackground(col color.RGBA) Option { return func(c *Canvas) { raster.Paint(c.img, col) } }

// WithImage copies src into the initial raster, anchored at the top-left.
func WithImage(src image.Image) Option {
	return func(c *Canvas) {
		raster.Restore(c.img, raster.FromImage(src))
	}
}

// New creates a transparent canvas of the given size.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		img:     raster.New(width, height),
		history: NewHistory(DefaultUndoLimit),
	}
	def := DefaultSettings()
	c.settings = def
	c.color, _ = raster.ParseHex(def.Color)
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configure replaces the drawing settings. An unparsable colour leaves the
// current settings untouched and returns an error wrapping ErrInvalidColor.
func (c *Canvas) Configure(s Settings) error {
	col, ok := raster.ParseHex(s.Color)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s.Color)
	}
	if s.StrokeWidth < 1 {
		s.StrokeWidth = 1
	}
	if s.BrushSize < 1 {
		s.BrushSize = 1
	}
	c.settings = s
	c.color = col
	return nil
}

// Settings returns the current drawing settings.
func (c *Canvas) Settings() Settings { return c.settings }

// Bounds returns the raster bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Active reports whether a gesture is in progress.
func (c *Canvas) Active() bool { return c.active }

// History exposes the undo history.
func (c *Canvas) History() *History { return c.history }

// Image returns a copy of the current raster.
func (c *Canvas) Image() *image.RGBA { return raster.Clone(c.img) }

// View returns the live raster for read-only display. It must not be modified
// or retained across drawing calls.
func (c *Canvas) View() *image.RGBA { return c.img }

// GestureStart begins a gesture at p.
func (c *Canvas) GestureStart(p image.Point) {
	// Snapshots are never written to, so one copy serves as both the preview
	// base and the undo entry.
	snap := raster.Clone(c.img)
	c.saved = snap
	c.history.Push(snap)
	c.start = p
	c.last = p
	c.active = true

	switch c.settings.Tool {
	case ToolPaintBucket:
		raster.FloodFill(c.img, p, c.color)
	case ToolEraser:
		raster.Clear(c.img, p, c.settings.BrushSize)
	}
}

// GestureMove continues the active gesture to p. It is ignored when no
// gesture is active.
func (c *Canvas) GestureMove(p image.Point) {
	if !c.active {
		return
	}
	s := c.settings
	switch s.Tool {
	case ToolLine, ToolRectangle, ToolCircle, ToolTriangle:
		raster.Restore(c.img, c.saved)
		c.drawShape(p)
	case ToolPencil:
		raster.Line(c.img, c.last, p, c.color, s.StrokeWidth)
	case ToolBrush:
		raster.Line(c.img, c.last, p, c.color, s.BrushSize)
		if s.BrushErases {
			raster.Clear(c.img, p, s.BrushSize)
		}
	case ToolEraser:
		raster.Clear(c.img, p, s.BrushSize)
	}
	c.last = p
}

// GestureEnd finishes the active gesture.
func (c *Canvas) GestureEnd() {
	c.active = false
	c.saved = nil
}

func (c *Canvas) drawShape(p image.Point) {
	w := c.settings.StrokeWidth
	switch c.settings.Tool {
	case ToolLine:
		raster.Line(c.img, c.start, p, c.color, w)
	case ToolRectangle:
		raster.Rectangle(c.img, c.start, p, c.color, w)
	case ToolCircle:
		raster.Circle(c.img, c.start, geom.Distance(c.start, p), c.color, w)
	case ToolTriangle:
		raster.Triangle(c.img, c.start, p, c.color, w)
	}
}

// Undo restores the raster from before the most recent gesture. It returns
// ErrNothingToUndo, leaving the raster as is, when the history is empty.
func (c *Canvas) Undo() error {
	snap, ok := c.history.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	raster.Restore(c.img, snap)
	return nil
}

// Export encodes the current raster in the given format.
func (c *Canvas) Export(w io.Writer, f imagefile.Format) error {
	return imagefile.Encode(w, c.img, f)
}
