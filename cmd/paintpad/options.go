package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/clipboard"
	"github.com/example/paintpad/internal/config"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/raster"
	"github.com/example/paintpad/internal/theme"
	"github.com/example/paintpad/internal/window"
)

// parseColor resolves a hex value, a CSS colour name or a palette name to the
// #RRGGBB form the canvas accepts.
func parseColor(s string) (string, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return "", fmt.Errorf("color cannot be empty")
	}
	if c, ok := colornames.Map[spec]; ok {
		return raster.Hex(c), nil
	}
	if c, ok := window.LookupPalette(spec); ok {
		return raster.Hex(c), nil
	}
	if c, ok := raster.ParseHex(spec); ok {
		return raster.Hex(c), nil
	}
	return "", fmt.Errorf("%w: %q", canvas.ErrInvalidColor, s)
}

// canvasFlags describes how a command builds its canvas and drawing settings.
// Defaults come from the config file.
type canvasFlags struct {
	file          string
	fromClipboard bool
	width         int
	height        int
	background    string
	undoLimit     int

	tool        string
	colorSpec   string
	strokeWidth int
	brushSize   int
	brushErases bool
}

func (c *canvasFlags) register(fs *flag.FlagSet, cfg *config.Config, withTool bool) {
	if cfg == nil {
		cfg = config.New()
	}
	fs.StringVar(&c.file, "file", "", "start from this image instead of a blank canvas")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "start from the image on the clipboard")
	fs.IntVar(&c.width, "width", cfg.Canvas.Width, "canvas width in pixels for a blank canvas")
	fs.IntVar(&c.height, "height", cfg.Canvas.Height, "canvas height in pixels for a blank canvas")
	fs.StringVar(&c.background, "background", cfg.Canvas.Background, "background color of a blank canvas (transparent when empty)")
	fs.IntVar(&c.undoLimit, "undo-limit", cfg.Canvas.UndoLimit, "number of gestures that can be undone")
	if withTool {
		fs.StringVar(&c.tool, "tool", cfg.Tools.Tool, "initial drawing tool")
	}
	fs.StringVar(&c.colorSpec, "color", cfg.Tools.Color, "drawing color name or hex value")
	fs.IntVar(&c.strokeWidth, "stroke-width", cfg.Tools.StrokeWidth, "line width for pencil and shape tools")
	fs.IntVar(&c.brushSize, "brush-size", cfg.Tools.BrushSize, "size of the brush and eraser")
	fs.BoolVar(&c.brushErases, "brush-erases", cfg.Tools.BrushErases, "brush strokes also clear a brush-sized square at the pointer")
}

func (c *canvasFlags) settings(tool string) (canvas.Settings, error) {
	t, err := canvas.ParseTool(tool)
	if err != nil {
		return canvas.Settings{}, err
	}
	col, err := parseColor(c.colorSpec)
	if err != nil {
		return canvas.Settings{}, err
	}
	return canvas.Settings{
		Tool:        t,
		StrokeWidth: c.strokeWidth,
		BrushSize:   c.brushSize,
		Color:       col,
		BrushErases: c.brushErases,
	}, nil
}

func (c *canvasFlags) validate() error {
	if c.file != "" && c.fromClipboard {
		return fmt.Errorf("-file and -from-clipboard cannot be combined")
	}
	if c.width < 1 || c.height < 1 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	return nil
}

// newCanvas builds the canvas configured with tool.
func (c *canvasFlags) newCanvas(tool string) (*canvas.Canvas, error) {
	s, err := c.settings(tool)
	if err != nil {
		return nil, err
	}
	opts := []canvas.Option{canvas.WithUndoLimit(c.undoLimit)}
	width, height := c.width, c.height

	src, err := c.loadSource()
	if err != nil {
		return nil, err
	}
	if src != nil {
		width, height = src.Bounds().Dx(), src.Bounds().Dy()
		opts = append(opts, canvas.WithImage(src))
	} else if c.background != "" {
		bg, err := theme.ParseColor(c.background)
		if err != nil {
			hex, perr := parseColor(c.background)
			if perr != nil {
				return nil, fmt.Errorf("background: %w", perr)
			}
			bg, _ = raster.ParseHex(hex)
		}
		opts = append(opts, canvas.WithBackground(bg))
	}

	cv := canvas.New(width, height, opts...)
	if err := cv.Configure(s); err != nil {
		return nil, err
	}
	return cv, nil
}

func (c *canvasFlags) loadSource() (image.Image, error) {
	switch {
	case c.fromClipboard:
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		return img, nil
	case c.file != "":
		return imagefile.Open(c.file)
	}
	return nil, nil
}

// outputFlags describes where a command writes its result.
type outputFlags struct {
	output      string
	toClipboard bool
	scale       float64
	quality     int
}

func (o *outputFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&o.output, "output", defaultOutput(cfg), "output file; the extension picks the format (png, jpg, gif, tif, bmp, pdf)")
	fs.BoolVar(&o.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.Float64Var(&o.scale, "scale", 1, "resize the output by this factor")
	fs.IntVar(&o.quality, "quality", 95, "JPEG quality (1-100)")
}

func (o *outputFlags) options() imagefile.Options {
	return imagefile.Options{Scale: o.scale, Quality: o.quality}
}

func (o *outputFlags) validate() error {
	if o.scale <= 0 {
		return fmt.Errorf("scale must be positive")
	}
	if o.quality < 1 || o.quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100")
	}
	if _, err := imagefile.FormatFromPath(o.output); err != nil {
		return err
	}
	return nil
}

// write saves img and optionally copies it to the clipboard.
func (o *outputFlags) write(r *root, img image.Image) error {
	if err := imagefile.Save(o.output, img, o.options()); err != nil {
		return fmt.Errorf("export %s: %w", o.output, err)
	}
	saved := o.output
	if abs, err := filepath.Abs(o.output); err == nil {
		saved = abs
	}
	fmt.Fprintf(r.stderr, "saved %s\n", saved)
	r.notifySave(saved)
	if o.toClipboard {
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(o.output)
		fmt.Fprintf(r.stderr, "copied %s to clipboard\n", detail)
		r.notifyCopy(detail)
	}
	return nil
}

// defaultOutput is the export path used when none is given.
func defaultOutput(cfg *config.Config) string {
	if cfg == nil || cfg.SaveDir == "" {
		return imagefile.DefaultName
	}
	return filepath.Join(expandHome(cfg.SaveDir), imagefile.DefaultName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (r *root) activeConfig() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}
