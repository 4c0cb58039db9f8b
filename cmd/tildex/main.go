package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"tildex/internal/config"
	"tildex/internal/pathutil"
	"tildex/internal/platform"
	"tildex/internal/tui"

	"github.com/alecthomas/kong"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

type CLI struct {
	Config  string     `help:"Path to config file" default:"~/.config/tildex/config.yaml"`
	Expand  ExpandCmd  `cmd:"" default:"withargs" help:"Expand a leading ~ in each path (default)"`
	Init    InitCmd    `cmd:"" help:"Write a config file interactively"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	Stdout io.Writer `kong:"-"`
	Stdin  io.Reader `kong:"-"`
}

func (cli *CLI) out() io.Writer {
	if cli.Stdout == nil {
		return os.Stdout
	}
	return cli.Stdout
}

type ExpandCmd struct {
	Paths    []string `arg:"" help:"Paths to expand"`
	Platform string   `help:"Follow this platform's conventions (e.g. linux, windows)"`
	Explain  bool     `help:"Show where each home directory came from"`
}

func (c *ExpandCmd) Run(cli *CLI) error {
	cfg, err := config.LoadOrDefault(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	expander := cfg.Expander(c.Platform)
	w := cli.out()

	if !c.Explain {
		for _, p := range c.Paths {
			fmt.Fprintln(w, expander.Expand(p))
		}
		return nil
	}

	rows := make([]tui.Expansion, 0, len(c.Paths))
	for _, p := range c.Paths {
		rows = append(rows, tui.Expansion{Input: p, Result: expander.Resolve(p)})
	}

	detector := &platform.Detector{GOOS: expander.Platform}
	fmt.Fprint(w, tui.RenderExplain(detector.Detect(), rows))
	return nil
}

type InitCmd struct {
	Force    bool   `help:"Overwrite an existing config file"`
	Platform string `help:"Pin the platform in the config file"`
}

func (c *InitCmd) Run(cli *CLI) error {
	path := pathutil.Expand(cli.Config)

	cfg, err := config.Load(path)
	switch {
	case err == nil && !c.Force:
		return fmt.Errorf("config already exists at %s, use --force to overwrite", path)
	case errors.Is(err, os.ErrNotExist):
		cfg = config.Default()
	case err != nil && !c.Force:
		return fmt.Errorf("load config: %w", err)
	case err != nil:
		cfg = config.Default()
	}

	form := tui.NewFallbackForm()
	if cli.Stdin != nil {
		form = form.WithInput(cli.Stdin)
	}

	fallback, err := form.Collect(cfg.Fallback)
	if err != nil {
		return err
	}
	cfg.Fallback = fallback

	if c.Platform != "" {
		cfg.Platform = c.Platform
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cli.out(), "Wrote %s\n", path)
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Fprintf(cli.out(), "tildex %s (commit: %s, built: %s)\n", Version, Commit, Date)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("tildex"),
		kong.Description("Expand a leading ~ in paths to the home directory"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
