package window

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/notify"
	"github.com/example/paintpad/internal/platform"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func newTestUI(t *testing.T) (*ui, *canvas.Canvas) {
	t.Helper()
	c := canvas.New(40, 30, canvas.WithBackground(white))
	u := newUI(c, nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return now }
	u.copyImage = func(image.Image) error { return nil }
	return u, c
}

func at(u *ui, x, y int, dir mouse.Direction) mouse.Event {
	o := u.canvasRect().Min
	return mouse.Event{X: float32(o.X + x), Y: float32(o.Y + y), Button: mouse.ButtonLeft, Direction: dir}
}

func click(r image.Rectangle) mouse.Event {
	c := r.Min.Add(r.Max).Div(2)
	return mouse.Event{X: float32(c.X), Y: float32(c.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func press(r rune, mods key.Modifiers) key.Event {
	return key.Event{Rune: r, Modifiers: mods, Direction: key.DirPress}
}

func TestLayoutFitsCanvas(t *testing.T) {
	u, c := newTestUI(t)
	cr := u.canvasRect()
	if cr.Min != image.Pt(u.toolbarWidth, headerHeight) {
		t.Fatalf("unexpected canvas origin %v", cr.Min)
	}
	if cr.Dx() != c.Bounds().Dx() || cr.Dy() != c.Bounds().Dy() {
		t.Fatalf("unexpected canvas rect %v", cr)
	}
	if u.width < cr.Max.X || u.height < cr.Max.Y+footerHeight {
		t.Fatalf("window %dx%d too small for canvas %v", u.width, u.height, cr)
	}
	if len(u.tools) != len(canvas.Tools()) {
		t.Fatalf("expected a button per tool, got %d", len(u.tools))
	}
	if len(u.swatches) != len(palette) {
		t.Fatalf("expected a swatch per colour, got %d", len(u.swatches))
	}
	for _, r := range u.swatches {
		if r.Max.X > u.toolbarWidth {
			t.Fatalf("swatch %v overflows toolbar width %d", r, u.toolbarWidth)
		}
	}
}

func TestLineGesture(t *testing.T) {
	u, c := newTestUI(t)
	if !u.handleMouse(at(u, 5, 5, mouse.DirPress)) {
		t.Fatal("press on canvas should repaint")
	}
	if !c.Active() {
		t.Fatal("expected an active gesture")
	}
	u.handleMouse(at(u, 15, 5, mouse.DirNone))
	u.handleMouse(at(u, 15, 5, mouse.DirRelease))
	if c.Active() {
		t.Fatal("gesture should end on release")
	}
	img := c.View()
	if got := img.RGBAAt(10, 5); got != black {
		t.Errorf("expected line pixel at (10,5), got %v", got)
	}
	if got := img.RGBAAt(10, 6); got != white {
		t.Errorf("expected untouched pixel at (10,6), got %v", got)
	}
	if c.History().Len() != 1 {
		t.Errorf("expected one undo entry, got %d", c.History().Len())
	}
}

func TestReleaseOverToolbarEndsGestureOnly(t *testing.T) {
	u, c := newTestUI(t)
	u.handleMouse(at(u, 5, 5, mouse.DirPress))
	bucket := click(u.tools[4].Rect())
	bucket.Direction = mouse.DirNone
	u.handleMouse(bucket)
	bucket.Direction = mouse.DirRelease
	u.handleMouse(bucket)
	if c.Active() {
		t.Fatal("gesture should end on release")
	}
	if c.Settings().Tool != canvas.ToolLine {
		t.Fatalf("release over toolbar changed tool to %v", c.Settings().Tool)
	}
}

func TestMoveWithoutGestureIsHoverOnly(t *testing.T) {
	u, c := newTestUI(t)
	if u.handleMouse(at(u, 5, 5, mouse.DirNone)) {
		t.Error("move over canvas without gesture should not repaint")
	}
	if c.History().Len() != 0 {
		t.Fatal("move without gesture recorded history")
	}
	hover := click(u.tools[1].Rect())
	hover.Direction = mouse.DirNone
	if !u.handleMouse(hover) {
		t.Error("entering a button should repaint")
	}
	if u.hover != (target{hitTool, 1}) {
		t.Errorf("unexpected hover %+v", u.hover)
	}
	if u.handleMouse(hover) {
		t.Error("staying on the same button should not repaint")
	}
}

func TestToolbarSelection(t *testing.T) {
	u, c := newTestUI(t)

	u.handleMouse(click(u.swatches[2]))
	if got := c.Settings().Color; got != "#FF0000" {
		t.Fatalf("expected red, got %s", got)
	}

	u.handleMouse(click(u.tools[6].Rect()))
	if c.Settings().Tool != canvas.ToolBrush {
		t.Fatalf("expected brush, got %v", c.Settings().Tool)
	}
	if len(u.widths) != len(brushSizes) {
		t.Fatalf("expected brush sizes, got %v", u.widths)
	}
	u.handleMouse(click(u.widthRect[2]))
	if got := c.Settings().BrushSize; got != brushSizes[2] {
		t.Fatalf("expected brush size %d, got %d", brushSizes[2], got)
	}
	if got := c.Settings().StrokeWidth; got != 1 {
		t.Fatalf("stroke width changed to %d", got)
	}

	u.handleKey(press('f', 0))
	if c.Settings().Tool != canvas.ToolPaintBucket {
		t.Fatalf("expected paint bucket, got %v", c.Settings().Tool)
	}
	if len(u.widthRect) != 0 {
		t.Fatalf("paint bucket should offer no widths, got %d", len(u.widthRect))
	}

	u.handleMouse(at(u, 1, 1, mouse.DirPress))
	u.handleMouse(at(u, 1, 1, mouse.DirRelease))
	img := c.View()
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) != red {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestToolKeys(t *testing.T) {
	u, c := newTestUI(t)
	for _, tk := range toolKeys {
		if !u.handleKey(press(tk.r, 0)) {
			t.Fatalf("key %q not handled", tk.r)
		}
		if c.Settings().Tool != tk.tool {
			t.Fatalf("key %q selected %v, want %v", tk.r, c.Settings().Tool, tk.tool)
		}
	}
	if u.handleKey(key.Event{Rune: 'l', Direction: key.DirRelease}) {
		t.Error("key release should be ignored")
	}
	if u.handleKey(press('x', 0)) {
		t.Error("unbound key should be ignored")
	}
}

func TestUndoEmptyNotice(t *testing.T) {
	u, _ := newTestUI(t)
	var bodies []string
	n := notify.New(notify.DefaultPreferences())
	n.SetSender(func(title, body string, opts platform.Options) error {
		bodies = append(bodies, body)
		return nil
	})
	n.Enable(notify.EventUndo, true)
	u.notifier = n

	if !u.handleKey(press('z', key.ModControl)) {
		t.Fatal("ctrl+z not handled")
	}
	if u.message != notify.UndoEmptyMessage || !u.noticeVisible() {
		t.Fatalf("expected undo notice, got %q", u.message)
	}
	if len(bodies) != 1 || bodies[0] != notify.UndoEmptyMessage {
		t.Fatalf("unexpected notifications %v", bodies)
	}

	// A click while the notice shows only dismisses it.
	u.handleMouse(at(u, 3, 3, mouse.DirPress))
	if u.noticeVisible() {
		t.Fatal("notice should be dismissed")
	}
	if u.canvas.Active() {
		t.Fatal("dismissing click started a gesture")
	}
}

func TestUndoRestores(t *testing.T) {
	u, c := newTestUI(t)
	u.handleKey(press('f', 0))
	u.handleMouse(click(u.swatches[2]))
	u.handleMouse(at(u, 1, 1, mouse.DirPress))
	u.handleMouse(at(u, 1, 1, mouse.DirRelease))
	u.handleMouse(click(u.actions[0].Rect()))
	if got := c.View().RGBAAt(1, 1); got != white {
		t.Fatalf("expected undo to restore white, got %v", got)
	}
	if u.message != "" {
		t.Fatalf("unexpected notice %q", u.message)
	}
}

func TestSave(t *testing.T) {
	u, _ := newTestUI(t)
	u.output = filepath.Join(t.TempDir(), "drawing.png")
	u.handleKey(press('s', key.ModControl))
	img, err := imagefile.Open(u.output)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("unexpected saved bounds %v", img.Bounds())
	}
	if u.message != "saved "+u.output {
		t.Fatalf("unexpected notice %q", u.message)
	}
}

func TestSaveFailure(t *testing.T) {
	u, _ := newTestUI(t)
	u.output = filepath.Join(t.TempDir(), "drawing.unknown")
	u.handleKey(press('s', key.ModControl))
	if u.message != "save failed" {
		t.Fatalf("unexpected notice %q", u.message)
	}
}

func TestCopy(t *testing.T) {
	u, _ := newTestUI(t)
	var got image.Image
	u.copyImage = func(img image.Image) error {
		got = img
		return nil
	}
	u.handleKey(press('c', key.ModControl))
	if got == nil || got.Bounds().Dx() != 40 {
		t.Fatalf("unexpected copied image %v", got)
	}
	if u.message != "image copied to clipboard" {
		t.Fatalf("unexpected notice %q", u.message)
	}

	u.copyImage = func(image.Image) error { return errors.New("no display") }
	u.handleKey(press('c', key.ModControl))
	if u.message != "copy failed" {
		t.Fatalf("unexpected notice %q", u.message)
	}
}

func TestZoomMapsPointer(t *testing.T) {
	u, c := newTestUI(t)
	u.handleKey(press('p', 0))
	u.setZoom(2)
	u.handleMouse(at(u, 20, 20, mouse.DirPress))
	u.handleMouse(at(u, 24, 20, mouse.DirNone))
	u.handleMouse(at(u, 24, 20, mouse.DirRelease))
	if got := c.View().RGBAAt(11, 10); got != black {
		t.Fatalf("expected pencil pixel at (11,10), got %v", got)
	}

	u.setZoom(100)
	if u.zoom != maxZoom {
		t.Errorf("zoom not clamped: %v", u.zoom)
	}
	u.handleKey(press('-', 0))
	if u.zoom >= maxZoom {
		t.Errorf("zoom out had no effect: %v", u.zoom)
	}
}

func TestQuit(t *testing.T) {
	u, _ := newTestUI(t)
	u.handleKey(press('q', 0))
	if !u.quit {
		t.Fatal("expected quit")
	}
}

func TestRender(t *testing.T) {
	u, c := newTestUI(t)
	u.handleMouse(at(u, 5, 5, mouse.DirPress))
	u.handleMouse(at(u, 15, 5, mouse.DirNone))
	u.handleMouse(at(u, 15, 5, mouse.DirRelease))

	dst := image.NewRGBA(image.Rect(0, 0, u.width, u.height))
	u.render(dst)
	o := u.canvasRect().Min
	if got := dst.RGBAAt(o.X+10, o.Y+5); got != black {
		t.Errorf("expected line in frame, got %v", got)
	}
	if got := dst.RGBAAt(o.X+20, o.Y+20); got != white {
		t.Errorf("expected white canvas in frame, got %v", got)
	}
	if c.Active() {
		t.Fatal("render should not change gesture state")
	}

	u.notice(notify.UndoEmptyMessage)
	u.render(dst)
}
