// Package window shows a canvas in a desktop window and feeds it pointer
// gestures, tool selections and keyboard shortcuts.
package window

import (
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/clipboard"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/notify"
	"github.com/example/paintpad/internal/theme"
)

// App runs the desktop UI for one canvas.
type App struct {
	Canvas     *canvas.Canvas
	Theme      *theme.Theme
	Output     string
	Title      string
	Notifier   *notify.Notifier
	ExportOpts imagefile.Options

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an App during creation.
type Option func(*App)

// WithTheme sets the colours of the window chrome.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithOutput sets the file written by the save action.
func WithOutput(path string) Option { return func(a *App) { a.Output = path } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *App) { a.Title = title } }

// WithNotifier sets the desktop notifier used for save, copy and undo notices.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithExportOptions tunes how the save action encodes the drawing.
func WithExportOptions(o imagefile.Options) Option { return func(a *App) { a.ExportOpts = o } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App for c with the provided options.
func New(c *canvas.Canvas, opts ...Option) *App {
	a := &App{
		Canvas: c,
		Output: imagefile.DefaultName,
		Title:  ProgramTitle,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *App) newUI() *ui {
	u := newUI(a.Canvas, a.Theme)
	u.output = a.Output
	u.notifier = a.Notifier
	u.exportOpts = a.ExportOpts
	u.copyImage = clipboard.WriteImage
	return u
}

func (a *App) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver. It returns when the window
// is closed.
func (a *App) Run() { driver.Main(a.Main) }

// Main runs the event loop on s. Drawing and painting both happen on the
// calling goroutine.
func (a *App) Main(s screen.Screen) {
	defer a.notifyClose()

	u := a.newUI()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: u.width, Height: u.height, Title: a.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	u.repaintAfter = func(d time.Duration) {
		time.AfterFunc(d, func() { w.Send(paint.Event{}) })
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			u.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			if err := publish(s, w, u); err != nil {
				log.Printf("paint: %v", err)
			}
		case mouse.Event:
			if u.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if u.handleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window: %v", e)
		}
		if u.quit {
			return
		}
	}
}

func publish(s screen.Screen, w screen.Window, u *ui) error {
	if u.width <= 0 || u.height <= 0 {
		return nil
	}
	b, err := s.NewBuffer(image.Point{u.width, u.height})
	if err != nil {
		return err
	}
	defer b.Release()
	u.render(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
	return nil
}
