package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/paintpad/internal/canvas"
	"github.com/example/paintpad/internal/clipboard"
	"github.com/example/paintpad/internal/imagefile"
	"github.com/example/paintpad/internal/notify"
	"github.com/example/paintpad/internal/window"
)

// errExit ends the shell loop.
var errExit = errors.New("exit")

// commandList collects repeated -e flags.
type commandList []string

func (c *commandList) String() string { return strings.Join(*c, "; ") }

func (c *commandList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	canvas   canvasFlags
	out      outputFlags
	commands commandList

	c *canvas.Canvas
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	i := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(i)
	i.canvas.register(fs, r.activeConfig(), true)
	i.out.register(fs, r.activeConfig())
	fs.Var(&i.commands, "e", "run this command instead of reading standard input (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	if err := i.canvas.validate(); err != nil {
		return nil, err
	}
	if err := i.out.validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *interactiveCmd) Run() error {
	c, err := i.canvas.newCanvas(i.canvas.tool)
	if err != nil {
		return err
	}
	i.c = c

	if len(i.commands) > 0 {
		for _, line := range i.commands {
			if err := i.exec(line); err != nil {
				if errors.Is(err, errExit) {
					return nil
				}
				return err
			}
		}
		return nil
	}
	return i.shell(i.stdin)
}

func (i *interactiveCmd) shell(in io.Reader) error {
	fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		if err := i.exec(scanner.Text()); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			fmt.Fprintln(i.stderr, err)
		}
	}
	return scanner.Err()
}

// exec runs one shell line against the session canvas.
func (i *interactiveCmd) exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}
	name, rest := args[0], args[1:]
	switch name {
	case "exit", "quit":
		return errExit
	case "help":
		return i.help()
	case "tool":
		return i.update(rest, func(s *canvas.Settings, v string) error {
			t, err := canvas.ParseTool(v)
			s.Tool = t
			return err
		})
	case "color":
		return i.update(rest, func(s *canvas.Settings, v string) error {
			col, err := parseColor(v)
			s.Color = col
			return err
		})
	case "width":
		return i.update(rest, func(s *canvas.Settings, v string) error {
			n, err := atoi(v)
			s.StrokeWidth = n
			return err
		})
	case "brush":
		return i.update(rest, func(s *canvas.Settings, v string) error {
			n, err := atoi(v)
			s.BrushSize = n
			return err
		})
	case "down", "move":
		vals, err := expectInts(rest, 2)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		p := image.Pt(vals[0], vals[1])
		if name == "down" {
			i.c.GestureStart(p)
		} else {
			i.c.GestureMove(p)
		}
		return nil
	case "up":
		i.c.GestureEnd()
		return nil
	case "undo":
		if err := i.c.Undo(); err != nil {
			if errors.Is(err, canvas.ErrNothingToUndo) {
				fmt.Fprintln(i.stderr, notify.UndoEmptyMessage)
				i.notifyUndoEmpty()
				return nil
			}
			return err
		}
		return nil
	case "export", "save":
		return i.export(rest)
	case "copy":
		if err := clipboard.WriteImage(i.c.View()); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Fprintln(i.stdout, "copied canvas to clipboard")
		i.notifyCopy("canvas")
		return nil
	case "show":
		window.New(i.c,
			window.WithTheme(i.activeTheme),
			window.WithOutput(i.out.output),
			window.WithExportOptions(i.out.options()),
			window.WithNotifier(i.notifier),
			window.WithTitle(windowTitle(i.out.output)),
		).Run()
		return nil
	case "status":
		i.status()
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", name)
	}
}

func (i *interactiveCmd) update(args []string, set func(*canvas.Settings, string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one value")
	}
	s := i.c.Settings()
	if err := set(&s, args[0]); err != nil {
		return err
	}
	return i.c.Configure(s)
}

func (i *interactiveCmd) export(args []string) error {
	path := i.out.output
	switch len(args) {
	case 0:
	case 1:
		path = expandHome(args[0])
	default:
		return fmt.Errorf("export takes at most one path")
	}
	if err := imagefile.Save(path, i.c.View(), i.out.options()); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fmt.Fprintf(i.stdout, "saved %s\n", path)
	i.notifySave(path)
	return nil
}

func (i *interactiveCmd) status() {
	s := i.c.Settings()
	b := i.c.Bounds()
	h := i.c.History()
	fmt.Fprintf(i.stdout, "canvas %dx%d, tool %s, color %s, width %d, brush %d, undo %d/%d\n",
		b.Dx(), b.Dy(), s.Tool, s.Color, s.StrokeWidth, s.BrushSize, h.Len(), h.Cap())
}

func (i *interactiveCmd) help() error {
	helpOnce.Do(parseHelpTemplates)
	return helpTmpl.ExecuteTemplate(i.stdout, i.Template(), i)
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
