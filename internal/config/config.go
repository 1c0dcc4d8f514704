package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/raster"
	"github.com/example/paintpad/internal/theme"
)

// Canvas holds the raster settings used when a new drawing is created.
type Canvas struct {
	Width      int
	Height     int
	Background string // Empty means transparent
	UndoLimit  int
}

// Tools holds the drawing settings a session starts with.
type Tools struct {
	Tool        string
	StrokeWidth int
	BrushSize   int
	Color       string
	BrushErases bool
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
	Undo bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Canvas  Canvas
	Tools   Tools
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	def := canvas.DefaultSettings()
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Canvas: Canvas{
			Width:     800,
			Height:    600,
			UndoLimit: canvas.DefaultUndoLimit,
		},
		Tools: Tools{
			Tool:        def.Tool.String(),
			StrokeWidth: def.StrokeWidth,
			BrushSize:   def.BrushSize,
			Color:       def.Color,
			BrushErases: def.BrushErases,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Settings converts the [tools] section into canvas settings.
func (c *Config) Settings() (canvas.Settings, error) {
	tool, err := canvas.ParseTool(c.Tools.Tool)
	if err != nil {
		return canvas.Settings{}, err
	}
	return canvas.Settings{
		Tool:        tool,
		StrokeWidth: c.Tools.StrokeWidth,
		BrushSize:   c.Tools.BrushSize,
		Color:       c.Tools.Color,
		BrushErases: c.Tools.BrushErases,
	}, nil
}

// CanvasOptions converts the [canvas] section into canvas options.
func (c *Config) CanvasOptions() ([]canvas.Option, error) {
	opts := []canvas.Option{canvas.WithUndoLimit(c.Canvas.UndoLimit)}
	if c.Canvas.Background != "" {
		bg, err := theme.ParseColor(c.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("canvas background: %w", err)
		}
		opts = append(opts, canvas.WithBackground(bg))
	}
	return opts, nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	if c.Canvas.Background != "" {
		fmt.Fprintf(&sb, "background = %s\n", c.Canvas.Background)
	}
	fmt.Fprintf(&sb, "undo_limit = %d\n", c.Canvas.UndoLimit)
	sb.WriteString("\n")

	sb.WriteString("[tools]\n")
	fmt.Fprintf(&sb, "tool = %s\n", c.Tools.Tool)
	fmt.Fprintf(&sb, "stroke_width = %d\n", c.Tools.StrokeWidth)
	fmt.Fprintf(&sb, "brush_size = %d\n", c.Tools.BrushSize)
	fmt.Fprintf(&sb, "color = %s\n", c.Tools.Color)
	fmt.Fprintf(&sb, "brush_erases = %v\n", c.Tools.BrushErases)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "undo = %v\n", c.Notify.Undo)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, raster.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
