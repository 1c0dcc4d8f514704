package main

import (
	"flag"
	"fmt"

	"github.com/example/paintpad/internal/scene"
)

// renderCmd replays a scene script and saves the drawing.
type renderCmd struct {
	*root
	fs    *flag.FlagSet
	out   outputFlags
	scene string
}

func (r *renderCmd) FlagSet() *flag.FlagSet {
	return r.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	rc := &renderCmd{root: r, fs: fs}
	fs.Usage = usageFunc(rc)
	rc.out.register(fs, r.activeConfig())

	flagArgs, positionals, err := splitArgs(args, fs)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if len(positionals) != 1 {
		return nil, &UsageError{of: rc}
	}
	rc.scene = positionals[0]
	if err := rc.out.validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *renderCmd) Run() error {
	sc, err := scene.Load(r.scene)
	if err != nil {
		return err
	}
	cfg := r.activeConfig()
	c, err := sc.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	if err := c.Configure(settings); err != nil {
		return err
	}
	res, err := sc.Play(c)
	if err != nil {
		return fmt.Errorf("%s: %w", r.scene, err)
	}
	fmt.Fprintf(r.stderr, "rendered %d gestures, %d undos", res.Gestures, res.Undos)
	if res.EmptyUndos > 0 {
		fmt.Fprintf(r.stderr, ", %d empty undos skipped", res.EmptyUndos)
	}
	fmt.Fprintln(r.stderr)
	return r.out.write(r.root, c.View())
}
