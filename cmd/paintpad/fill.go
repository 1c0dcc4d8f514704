package main

import (
	"flag"

	"github.com/example/paintpad/internal/canvas"
)

// fillCmd flood fills the region around one pixel. It is a draw command
// fixed to the paint bucket with a single point.
type fillCmd struct {
	*drawCmd
}

func (f *fillCmd) FlagSet() *flag.FlagSet {
	return f.fs
}

func parseFillCmd(args []string, r *root) (*fillCmd, error) {
	fs := flag.NewFlagSet("fill", flag.ContinueOnError)
	f := &fillCmd{drawCmd: &drawCmd{root: r, fs: fs, tool: canvas.ToolPaintBucket.String()}}
	fs.Usage = usageFunc(f)
	f.canvas.register(fs, r.activeConfig(), false)
	f.out.register(fs, r.activeConfig())

	flagArgs, positionals, err := splitArgs(args, fs)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) != 2 {
		return nil, &UsageError{of: f}
	}
	f.points, err = parsePoints(positionals)
	if err != nil {
		return nil, err
	}
	if err := f.canvas.validate(); err != nil {
		return nil, err
	}
	if err := f.out.validate(); err != nil {
		return nil, err
	}
	return f, nil
}
