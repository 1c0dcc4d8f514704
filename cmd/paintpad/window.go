package main

import (
	"flag"

	"github.com/example/paintpad/internal/window"
)

// windowCmd opens the drawing window.
type windowCmd struct {
	*root
	fs     *flag.FlagSet
	canvas canvasFlags
	out    outputFlags
	title  string
}

func (w *windowCmd) FlagSet() *flag.FlagSet {
	return w.fs
}

func parseWindowCmd(args []string, r *root) (*windowCmd, error) {
	fs := flag.NewFlagSet("window", flag.ContinueOnError)
	w := &windowCmd{root: r, fs: fs}
	fs.Usage = usageFunc(w)
	w.canvas.register(fs, r.activeConfig(), true)
	w.out.register(fs, r.activeConfig())
	fs.StringVar(&w.title, "title", "", "window title (defaults to the program name and output file)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: w}
	}
	if err := w.canvas.validate(); err != nil {
		return nil, err
	}
	if err := w.out.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *windowCmd) Run() error {
	c, err := w.canvas.newCanvas(w.canvas.tool)
	if err != nil {
		return err
	}
	title := w.title
	if title == "" {
		title = windowTitle(w.out.output)
	}
	app := window.New(c,
		window.WithTheme(w.activeTheme),
		window.WithOutput(w.out.output),
		window.WithExportOptions(w.out.options()),
		window.WithNotifier(w.notifier),
		window.WithTitle(title),
	)
	app.Run()
	return nil
}
