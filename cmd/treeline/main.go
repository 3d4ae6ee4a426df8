// Package main is the entry point for the treeline viewer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dshills/treeline/internal/config"
	"github.com/dshills/treeline/internal/logging"
	"github.com/dshills/treeline/internal/renderer"
	"github.com/dshills/treeline/internal/renderer/backend"
	"github.com/dshills/treeline/internal/treefile"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	guides     string
	width      int
	ascii      bool
	hideRoot   bool
	stats      bool
	screen     bool
	verbosity  int
	version    bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.version {
		fmt.Printf("treeline %s (%s)\n", version, commit)
		return 0
	}

	logging.Setup(opts.verbosity)
	log := logging.Component("cli")

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	tree, err := loadTree(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Configure(tree); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth()
	}

	start := time.Now()
	frame, err := renderer.Render(tree, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Debug().
		Int("width", frame.Width).
		Int("lines", frame.LineCount()).
		Dur("elapsed", time.Since(start)).
		Msg("rendered tree")

	if opts.stats {
		out, err := treefile.Collect(tree, frame).JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	if opts.screen {
		return showFrame(frame)
	}

	fmt.Println(frame.String())
	return 0
}

// loadConfig layers config sources: file, environment, then flags.
func loadConfig(opts options) (config.Options, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return cfg, err
		}
	}
	cfg = config.FromEnv(cfg)
	if opts.guides != "" {
		cfg.Guides = opts.guides
	}
	if opts.ascii {
		cfg.ASCII = true
	}
	if opts.hideRoot {
		cfg.HideRoot = true
	}
	return cfg, nil
}

// loadTree reads a treefile, or builds the demo tree with no path.
func loadTree(path string) (*renderer.Tree, error) {
	if path == "" {
		return demoTree(), nil
	}
	return treefile.Load(path)
}

// demoTree is rendered when no treefile is given.
func demoTree() *renderer.Tree {
	t := renderer.New(renderer.NewText("treeline"))
	cmd := t.Add(t.Root(), renderer.NewText("cmd"))
	t.Add(cmd, renderer.NewText("treeline"))
	internal := t.Add(t.Root(), renderer.NewText("internal"))
	ren := t.Add(internal, renderer.NewText("renderer"))
	t.Add(ren, renderer.NewText("backend"))
	t.Add(ren, renderer.NewText("core"))
	t.Add(ren, renderer.NewText("guide"))
	t.Add(internal, renderer.NewText("treefile"))
	return t
}

// terminalWidth returns the stdout width, or 80 off-terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// showFrame displays the frame on the terminal backend and waits for
// a key press.
func showFrame(frame renderer.Frame) int {
	b, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := b.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer b.Shutdown()

	renderer.DrawFrame(b, frame)
	b.WaitKey()
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to TOML configuration file")
	flag.StringVar(&opts.guides, "guides", "", "Guide set: line, bold, double, ascii")
	flag.IntVar(&opts.width, "width", 0, "Maximum render width (0 = terminal width)")
	flag.BoolVar(&opts.ascii, "ascii", false, "Force ASCII-safe guide glyphs")
	flag.BoolVar(&opts.hideRoot, "hide-root", false, "Hide the root node's own lines")
	flag.BoolVar(&opts.stats, "stats", false, "Print render statistics as JSON instead of the tree")
	flag.BoolVar(&opts.screen, "screen", false, "Display on the terminal backend and wait for a key")
	flag.IntVar(&opts.verbosity, "v", 0, "Verbosity level (0-3)")
	flag.BoolVar(&opts.version, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: treeline [options] [treefile.json]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a JSON tree document as a decorated tree.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	return opts
}
