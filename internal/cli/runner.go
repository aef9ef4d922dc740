package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todokit/internal/config"
	"github.com/idilsaglam/todokit/internal/model"
	"github.com/idilsaglam/todokit/internal/store/liststore"
	"github.com/idilsaglam/todokit/internal/tui"
	"github.com/idilsaglam/todokit/internal/ui"
)

const defaultConfigFile = "todokit.yaml"

// Env is the process surroundings a run talks to.
type Env struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI is the root command. Root flags apply to every subcommand.
type CLI struct {
	Config  string `short:"c" help:"Config file (default ./todokit.yaml if present)." env:"TODOKIT_CONFIG"`
	Theme   string `help:"Theme: classic, neon or mono." env:"TODOKIT_THEME"`
	Color   string `help:"Color output: auto, always or never." env:"TODOKIT_COLOR"`
	Title   string `help:"Heading shown above the list." env:"TODOKIT_TITLE"`
	Format  string `short:"f" help:"Output format." enum:"text,json,yaml" default:"text"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Ls  LsCmd  `cmd:"" help:"List items."`
	Add AddCmd `cmd:"" help:"Add items to the end of the list."`
	Rm  RmCmd  `cmd:"" help:"Remove every item equal to each argument."`
	UI  UICmd  `cmd:"" name:"ui" help:"Interactive list."`
}

// app is what every subcommand's Run receives.
type app struct {
	env    Env
	cfg    config.Config
	theme  ui.Theme
	store  *liststore.Store
	log    *slog.Logger
	format string
}

type exitCode int

// Run parses args, runs the subcommand and returns an exit code
// (0 ok, 1 error, 2 usage). Each run starts from the seed list.
func Run(args []string, env Env) (code int) {
	env = env.withDefaults()
	errTheme := ui.NewTheme("classic", ui.NewRenderer(env.Stderr, ui.ColorAuto))

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("todokit"),
		kong.Description("A tiny in-memory todo list."),
		kong.Writers(env.Stdout, env.Stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		errTheme.Fail(env.Stderr, "cli: "+err.Error())
		return 1
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	if len(args) == 0 {
		if err := printHelp(parser); err != nil {
			errTheme.Fail(env.Stderr, "help: "+err.Error())
			return 1
		}
		return 2
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		errTheme.Fail(env.Stderr, err.Error())
		return 2
	}

	a, err := newApp(cli, env)
	if err != nil {
		errTheme.Fail(env.Stderr, err.Error())
		return 2
	}

	if err := kctx.Run(a); err != nil {
		a.theme.Fail(env.Stderr, err.Error())
		return 1
	}
	return 0
}

func printHelp(parser *kong.Kong) error {
	kctx, err := kong.Trace(parser, nil)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	return kctx.PrintUsage(false)
}

func (e Env) withDefaults() Env {
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	return e
}

func newApp(cli CLI, env Env) (*app, error) {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	path, required := cli.Config, true
	if path == "" {
		path, required = defaultConfigFile, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	if cli.Theme != "" {
		cfg.Theme = cli.Theme
	}
	if cli.Color != "" {
		cfg.Color = ui.ColorMode(cli.Color)
	}
	if cli.Title != "" {
		cfg.Title = cli.Title
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", path, "theme", cfg.Theme, "color", cfg.Color)

	s := liststore.New(liststore.WithLogger(logger))
	s.Subscribe(func(l model.TodoList) {
		logger.Debug("snapshot", "items", len(l))
	})

	return &app{
		env:    env,
		cfg:    cfg,
		theme:  ui.NewTheme(cfg.Theme, ui.NewRenderer(env.Stdout, cfg.Color)),
		store:  s,
		log:    logger,
		format: cli.Format,
	}, nil
}

// -------------- subcommands ----------------

// LsCmd prints the current list.
type LsCmd struct{}

func (c *LsCmd) Run(a *app) error {
	return a.print(a.store.Current())
}

// AddCmd appends each argument, in order.
type AddCmd struct {
	Items []string `arg:"" name:"item" help:"Item text; may be empty or repeat an existing item."`
}

func (c *AddCmd) Run(a *app) error {
	var l model.TodoList
	for _, it := range c.Items {
		l = a.store.Add(model.TodoItem(it))
	}
	if a.format == "text" {
		a.theme.OK(a.env.Stdout, fmt.Sprintf("added %d", len(c.Items)))
	}
	return a.print(l)
}

// RmCmd deletes every item equal to each argument.
type RmCmd struct {
	Items []string `arg:"" name:"item" help:"Item text to remove; all equal items go."`
}

func (c *RmCmd) Run(a *app) error {
	before := len(a.store.Current())
	var l model.TodoList
	for _, it := range c.Items {
		l = a.store.Delete(model.TodoItem(it))
	}
	if a.format == "text" {
		a.theme.OK(a.env.Stdout, fmt.Sprintf("removed %d", before-len(l)))
	}
	return a.print(l)
}

// UICmd runs the interactive list.
type UICmd struct{}

func (c *UICmd) Run(a *app) error {
	return tui.Run(a.env.Ctx, a.store, a.theme, a.cfg,
		tea.WithInput(a.env.Stdin),
		tea.WithOutput(a.env.Stdout),
	)
}
