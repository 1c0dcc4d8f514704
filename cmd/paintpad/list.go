package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/raster"
	"github.com/example/paintpad/internal/window"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	def, _ := parseColor(c.activeConfig().Tools.Color)
	fmt.Fprintln(c.stdout, "available palette colors (* marks the configured color):")
	for idx, entry := range window.Palette() {
		hex := raster.Hex(entry.Color)
		marker := " "
		if hex == def {
			marker = "*"
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(c.stdout, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, hex, block)
	}
	fmt.Fprintln(c.stdout, "CSS color names and #RRGGBB values are accepted as well.")
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type toolsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	cmd := &toolsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *toolsCmd) Run() error {
	def, _ := canvas.ParseTool(c.activeConfig().Tools.Tool)
	fmt.Fprintln(c.stdout, "available tools (* marks the configured tool):")
	for _, t := range canvas.Tools() {
		marker := " "
		if t == def {
			marker = "*"
		}
		var size string
		switch widths := window.WidthOptions(t); {
		case widths == nil:
			size = "-"
		case t.UsesBrushSize():
			size = "brush-size " + joinInts(widths)
		default:
			size = "stroke-width " + joinInts(widths)
		}
		fmt.Fprintf(c.stdout, "%s %-13s %s\n", marker, t, size)
	}
	return nil
}

func (c *toolsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
