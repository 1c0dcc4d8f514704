package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/geom"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/notify"
	"github.com/example/paintpad/internal/raster"
	"github.com/example/paintpad/internal/theme"
)

const (
	headerHeight = 24
	footerHeight = 24
	buttonHeight = 24
	widthHeight  = 16
	swatchSize   = 16
	swatchGap    = 2

	minZoom = 0.25
	maxZoom = 8

	noticeDuration = 2 * time.Second
)

// ProgramTitle is shown in the header and used as the default window title.
const ProgramTitle = "Paintpad"

var toolKeys = []struct {
	r     rune
	tool  canvas.Tool
	label string
}{
	{'l', canvas.ToolLine, "L:Line"},
	{'r', canvas.ToolRectangle, "R:Rect"},
	{'c', canvas.ToolCircle, "C:Circle"},
	{'t', canvas.ToolTriangle, "T:Triangle"},
	{'f', canvas.ToolPaintBucket, "F:Bucket"},
	{'p', canvas.ToolPencil, "P:Pencil"},
	{'b', canvas.ToolBrush, "B:Brush"},
	{'e', canvas.ToolEraser, "E:Eraser"},
}

var noticeFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	noticeFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitTool
	hitSwatch
	hitWidth
	hitAction
	hitShortcut
)

type target struct {
	kind hitKind
	idx  int
}

// ui holds everything the window shows and reacts to. It is driven from a
// single goroutine and never touches a screen, so it can be exercised with
// synthetic events.
type ui struct {
	canvas     *canvas.Canvas
	theme      *theme.Theme
	notifier   *notify.Notifier
	output     string
	exportOpts imagefile.Options
	copyImage  func(image.Image) error
	now        func() time.Time
	// repaintAfter asks the host to repaint once a notice expires.
	repaintAfter func(time.Duration)

	width, height int
	toolbarWidth  int
	zoom          float64

	tools     []*CacheButton
	actions   []*CacheButton
	shortcuts []*LabelButton
	swatches  []image.Rectangle
	widths    []int
	widthRect []image.Rectangle
	hover     target

	message      string
	messageUntil time.Time
	quit         bool
}

func newUI(c *canvas.Canvas, th *theme.Theme) *ui {
	if th == nil {
		th = theme.Default()
	}
	u := &ui{
		canvas: c,
		theme:  th,
		output: imagefile.DefaultName,
		now:    time.Now,
		zoom:   1,
	}

	u.toolbarWidth = labelWidth(ProgramTitle) + 8
	for _, tk := range toolKeys {
		if w := labelWidth(tk.label) + 8; w > u.toolbarWidth {
			u.toolbarWidth = w
		}
	}

	for _, tk := range toolKeys {
		tool := tk.tool
		u.tools = append(u.tools, &CacheButton{Button: &LabelButton{label: tk.label, theme: th, onSelect: func() { u.selectTool(tool) }}})
	}
	u.actions = []*CacheButton{
		{Button: &LabelButton{label: "Undo", theme: th, onSelect: u.undo}},
		{Button: &LabelButton{label: "Save", theme: th, onSelect: u.save}},
		{Button: &LabelButton{label: "Copy", theme: th, onSelect: u.copy}},
	}
	u.shortcuts = []*LabelButton{
		{label: "^Z:undo", theme: th, onSelect: u.undo},
		{label: "^S:save", theme: th, onSelect: u.save},
		{label: "^C:copy", theme: th, onSelect: u.copy},
		{label: "+/-:zoom", theme: th, onSelect: func() { u.setZoom(u.zoom * 1.25) }},
		{label: "Q:quit", theme: th, onSelect: func() { u.quit = true }},
	}

	b := c.Bounds()
	u.layout()
	u.resize(b.Dx()+u.toolbarWidth, max(b.Dy(), u.toolbarHeight())+headerHeight+footerHeight)
	return u
}

func (u *ui) resize(w, h int) {
	u.width, u.height = w, h
	u.layout()
}

// toolbarHeight is the height of the left column below the header.
func (u *ui) toolbarHeight() int {
	if len(u.actions) == 0 {
		return 0
	}
	return u.actions[len(u.actions)-1].Rect().Max.Y - headerHeight
}

func (u *ui) layout() {
	y := headerHeight
	for _, b := range u.tools {
		b.SetRect(image.Rect(0, y, u.toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}

	y += 4
	x := 4
	u.swatches = u.swatches[:0]
	for range palette {
		if x+swatchSize > u.toolbarWidth {
			x = 4
			y += swatchSize + swatchGap
		}
		u.swatches = append(u.swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + swatchGap
	}
	y += swatchSize + 4

	u.widths = WidthOptions(u.canvas.Settings().Tool)
	u.widthRect = u.widthRect[:0]
	for range u.widths {
		u.widthRect = append(u.widthRect, image.Rect(0, y, u.toolbarWidth, y+widthHeight))
		y += widthHeight
	}

	y += 4
	for _, b := range u.actions {
		b.SetRect(image.Rect(0, y, u.toolbarWidth, y+buttonHeight))
		y += buttonHeight
	}

	x = u.toolbarWidth + 4
	top := u.height - footerHeight
	for _, sc := range u.shortcuts {
		w := labelWidth(sc.label)
		sc.SetRect(image.Rect(x-2, top+2, x+w+6, top+footerHeight-2))
		x = sc.rect.Max.X + 8
	}
}

// canvasRect is where the raster is drawn in window coordinates.
func (u *ui) canvasRect() image.Rectangle {
	b := u.canvas.Bounds()
	origin := image.Pt(u.toolbarWidth, headerHeight)
	w := int(float64(b.Dx()) * u.zoom)
	h := int(float64(b.Dy()) * u.zoom)
	return image.Rect(origin.X, origin.Y, origin.X+w, origin.Y+h)
}

func (u *ui) canvasPoint(e mouse.Event) image.Point {
	return geom.CanvasPoint(e.X, e.Y, u.canvasRect().Min, u.zoom)
}

func (u *ui) targetAt(p image.Point) target {
	for i, b := range u.tools {
		if p.In(b.Rect()) {
			return target{hitTool, i}
		}
	}
	for i, r := range u.swatches {
		if p.In(r) {
			return target{hitSwatch, i}
		}
	}
	for i, r := range u.widthRect {
		if p.In(r) {
			return target{hitWidth, i}
		}
	}
	for i, b := range u.actions {
		if p.In(b.Rect()) {
			return target{hitAction, i}
		}
	}
	for i, b := range u.shortcuts {
		if p.In(b.Rect()) {
			return target{hitShortcut, i}
		}
	}
	return target{}
}

func (u *ui) activate(t target) {
	switch t.kind {
	case hitTool:
		u.tools[t.idx].Activate()
	case hitSwatch:
		u.selectColor(palette[t.idx].Color)
	case hitWidth:
		u.selectWidth(u.widths[t.idx])
	case hitAction:
		u.actions[t.idx].Activate()
	case hitShortcut:
		u.shortcuts[t.idx].Activate()
	}
}

// handleMouse reacts to a pointer event and reports whether a repaint is needed.
func (u *ui) handleMouse(e mouse.Event) bool {
	if u.canvas.Active() {
		switch {
		case e.Direction == mouse.DirNone:
			u.canvas.GestureMove(u.canvasPoint(e))
			return true
		case e.Direction == mouse.DirRelease && e.Button == mouse.ButtonLeft:
			u.canvas.GestureEnd()
			return true
		}
		return false
	}

	p := image.Pt(int(e.X), int(e.Y))
	if e.Direction == mouse.DirPress && u.noticeVisible() {
		u.messageUntil = time.Time{}
		return true
	}

	switch e.Direction {
	case mouse.DirNone:
		t := u.targetAt(p)
		if t != u.hover {
			u.hover = t
			return true
		}
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		if t := u.targetAt(p); t.kind != hitNone {
			u.activate(t)
			return true
		}
		if p.In(u.canvasRect()) {
			u.canvas.GestureStart(u.canvasPoint(e))
			return true
		}
	}
	return false
}

// handleKey reacts to a key event and reports whether a repaint is needed.
func (u *ui) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	r := unicode.ToLower(e.Rune)
	if e.Modifiers&key.ModControl != 0 {
		switch r {
		case 'z':
			u.undo()
		case 's':
			u.save()
		case 'c':
			u.copy()
		default:
			return false
		}
		return true
	}
	for _, tk := range toolKeys {
		if tk.r == r {
			u.selectTool(tk.tool)
			return true
		}
	}
	switch r {
	case '+', '=':
		u.setZoom(u.zoom * 1.25)
	case '-':
		u.setZoom(u.zoom / 1.25)
	case 'q':
		u.quit = true
	default:
		return false
	}
	return true
}

func (u *ui) configure(edit func(*canvas.Settings)) {
	s := u.canvas.Settings()
	edit(&s)
	if err := u.canvas.Configure(s); err != nil {
		log.Printf("configure: %v", err)
		return
	}
	u.layout()
}

func (u *ui) selectTool(t canvas.Tool) {
	u.configure(func(s *canvas.Settings) { s.Tool = t })
}

func (u *ui) selectColor(c color.RGBA) {
	u.configure(func(s *canvas.Settings) { s.Color = raster.Hex(c) })
}

func (u *ui) selectWidth(w int) {
	u.configure(func(s *canvas.Settings) {
		if s.Tool.UsesBrushSize() {
			s.BrushSize = w
		} else {
			s.StrokeWidth = w
		}
	})
}

func (u *ui) setZoom(z float64) {
	u.zoom = min(max(z, minZoom), maxZoom)
}

func (u *ui) undo() {
	err := u.canvas.Undo()
	if errors.Is(err, canvas.ErrNothingToUndo) {
		u.notice(notify.UndoEmptyMessage)
		u.notifier.UndoEmpty()
		return
	}
	if err != nil {
		log.Printf("undo: %v", err)
	}
}

func (u *ui) save() {
	if err := imagefile.Save(u.output, u.canvas.View(), u.exportOpts); err != nil {
		log.Printf("save: %v", err)
		u.notice("save failed")
		return
	}
	u.notice(fmt.Sprintf("saved %s", u.output))
	log.Print(u.message)
	u.notifier.Save(u.output)
}

func (u *ui) copy() {
	if u.copyImage == nil {
		return
	}
	if err := u.copyImage(u.canvas.Image()); err != nil {
		log.Printf("copy: %v", err)
		u.notice("copy failed")
		return
	}
	u.notice("image copied to clipboard")
	log.Print(u.message)
	u.notifier.Copy("image")
}

func (u *ui) notice(msg string) {
	u.message = msg
	u.messageUntil = u.now().Add(noticeDuration)
	if u.repaintAfter != nil {
		u.repaintAfter(noticeDuration)
	}
}

func (u *ui) noticeVisible() bool {
	return u.message != "" && u.now().Before(u.messageUntil)
}

func (u *ui) stateFor(t target, selected bool) ButtonState {
	switch {
	case selected:
		return StatePressed
	case t == u.hover:
		return StateHover
	}
	return StateDefault
}

// render draws one complete frame into dst.
func (u *ui) render(dst *image.RGBA) {
	th := u.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	view := u.canvas.View()
	cr := u.canvasRect()
	drawCheckerboard(dst, cr, 8, th.CheckerLight, th.CheckerDark)
	xdraw.NearestNeighbor.Scale(dst, cr, view, view.Bounds(), draw.Over, nil)

	u.renderHeader(dst)
	u.renderToolbar(dst)
	u.renderFooter(dst)

	if u.noticeVisible() {
		u.renderNotice(dst)
	}
}

func (u *ui) renderHeader(dst *image.RGBA) {
	th := u.theme
	draw.Draw(dst, image.Rect(0, 0, u.width, headerHeight), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	drawLabel(dst, ProgramTitle, image.Pt(4, 16), th.Foreground)

	s := u.canvas.Settings()
	width := s.StrokeWidth
	if s.Tool.UsesBrushSize() {
		width = s.BrushSize
	}
	status := fmt.Sprintf("%s  %s  %dpx  undo %d/%d  %.0f%%", s.Tool, s.Color, width,
		u.canvas.History().Len(), u.canvas.History().Cap(), u.zoom*100)
	drawLabel(dst, status, image.Pt(u.toolbarWidth+4, 16), th.Foreground)
}

func (u *ui) renderToolbar(dst *image.RGBA) {
	th := u.theme
	draw.Draw(dst, image.Rect(0, headerHeight, u.toolbarWidth, u.height-footerHeight), &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)

	s := u.canvas.Settings()
	for i, b := range u.tools {
		b.Draw(dst, u.stateFor(target{hitTool, i}, toolKeys[i].tool == s.Tool))
	}

	current := paletteIndex(u.currentColor())
	for i, r := range u.swatches {
		draw.Draw(dst, r, &image.Uniform{palette[i].Color}, image.Point{}, draw.Src)
		switch {
		case i == current:
			drawBorder(dst, r, th.ButtonTextActive)
			drawBorder(dst, r.Inset(1), th.ButtonBorder)
		case target{hitSwatch, i} == u.hover:
			drawBorder(dst, r, th.ButtonBackgroundHover)
		}
	}

	active := s.StrokeWidth
	if s.Tool.UsesBrushSize() {
		active = s.BrushSize
	}
	col := u.currentColor()
	for i, r := range u.widthRect {
		w := u.widths[i]
		bg := th.ButtonBackground
		switch u.stateFor(target{hitWidth, i}, w == active) {
		case StatePressed:
			bg = th.ButtonBackgroundActive
		case StateHover:
			bg = th.ButtonBackgroundHover
		}
		draw.Draw(dst, r, &image.Uniform{bg}, image.Point{}, draw.Src)
		drawLabel(dst, fmt.Sprintf("%d", w), image.Pt(r.Min.X+4, r.Min.Y+12), th.ButtonText)
		mid := r.Min.Y + widthHeight/2
		raster.Line(dst, image.Pt(r.Min.X+30, mid), image.Pt(r.Max.X-4, mid), col, min(w, widthHeight-4))
	}

	for i, b := range u.actions {
		b.Draw(dst, u.stateFor(target{hitAction, i}, false))
	}
}

func (u *ui) renderFooter(dst *image.RGBA) {
	th := u.theme
	rect := image.Rect(0, u.height-footerHeight, u.width, u.height)
	draw.Draw(dst, rect, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, sc := range u.shortcuts {
		sc.Draw(dst, u.stateFor(target{hitShortcut, i}, false))
		drawBorder(dst, sc.Rect(), th.ButtonBorder)
	}
}

func (u *ui) renderNotice(dst *image.RGBA) {
	th := u.theme
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.NoticeText), Face: noticeFace}
	w := d.MeasureString(u.message).Ceil()
	ascent := noticeFace.Metrics().Ascent.Ceil()
	descent := noticeFace.Metrics().Descent.Ceil()
	px := (u.width - w) / 2
	py := (u.height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+w+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{th.NoticeBackground}, image.Point{}, draw.Over)
	drawBorder(dst, rect, th.NoticeText)
	d.Dot = fixed.P(px, py)
	d.DrawString(u.message)
}

func (u *ui) currentColor() color.RGBA {
	c, _ := raster.ParseHex(u.canvas.Settings().Color)
	return c
}
