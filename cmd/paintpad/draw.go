package main

import (
	"flag"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/example/paintpad/internal/canvas"
)

// drawCmd replays one pointer gesture on an image and saves the result.
type drawCmd struct {
	*root
	fs     *flag.FlagSet
	canvas canvasFlags
	out    outputFlags
	tool   string
	points []image.Point
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	d.canvas.register(fs, r.activeConfig(), false)
	d.out.register(fs, r.activeConfig())

	flagArgs, positionals, err := splitArgs(args, fs)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) < 3 {
		return nil, &UsageError{of: d}
	}
	tool, err := canvas.ParseTool(positionals[0])
	if err != nil {
		return nil, err
	}
	d.tool = tool.String()
	d.points, err = parsePoints(positionals[1:])
	if err != nil {
		return nil, err
	}
	if tool.IsShape() && len(d.points) < 2 {
		return nil, fmt.Errorf("%s requires a start and an end point", tool)
	}
	if err := d.canvas.validate(); err != nil {
		return nil, err
	}
	if err := d.out.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	c, err := d.canvas.newCanvas(d.tool)
	if err != nil {
		return err
	}
	gesture(c, d.points)
	return d.out.write(d.root, c.View())
}

// gesture presses at the first point, moves through the rest and releases.
func gesture(c *canvas.Canvas, points []image.Point) {
	if len(points) == 0 {
		return
	}
	c.GestureStart(points[0])
	for _, p := range points[1:] {
		c.GestureMove(p)
	}
	c.GestureEnd()
}

func parsePoints(args []string) ([]image.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("coordinates must come in x y pairs, got %d values", len(args))
	}
	vals, err := expectInts(args, len(args))
	if err != nil {
		return nil, err
	}
	points := make([]image.Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		points = append(points, image.Pt(vals[i], vals[i+1]))
	}
	return points, nil
}

func expectInts(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d integer arguments, got %d", n, len(args))
	}
	vals := make([]int, n)
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

// splitArgs separates flags from positionals so flags may follow the
// positional arguments. Negative numbers are positionals.
func splitArgs(args []string, fs *flag.FlagSet) (flags, positionals []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || len(arg) == 1 || isNumber(arg) {
			positionals = append(positionals, arg)
			continue
		}
		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			return nil, nil, fmt.Errorf("flag provided but not defined: %s", arg)
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag needs an argument: %s", arg)
		}
		i++
		flags = append(flags, args[i])
	}
	return flags, positionals, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
