// Package cli wires the bounding-box command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ironsheep/bounding-box/internal/boundingbox"
	"github.com/ironsheep/bounding-box/internal/config"
	"github.com/ironsheep/bounding-box/internal/grid"
	"github.com/ironsheep/bounding-box/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	// errInvalidInput signals that "Error" was already printed; the process
	// only needs to exit non-zero.
	errInvalidInput = errors.New("invalid grid")

	errUsage = errors.New("Usage: bounding-box < input.txt")
)

// app holds state shared by every command of one invocation.
type app struct {
	configPath string
	logLevel   string
	allBoxes   bool

	cfg    *config.Config
	logger *slog.Logger

	// newScreen opens the terminal for the view command.
	newScreen func() (tcell.Screen, error)
}

// Execute runs the command tree and exits with status 1 on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		switch {
		case errors.Is(err, errInvalidInput):
		case errors.Is(err, errUsage):
			fmt.Fprintln(os.Stderr, err)
		default:
			fmt.Fprintln(os.Stderr, "bounding-box:", err)
		}
		os.Exit(1)
	}
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{newScreen: openTerminal})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bounding-box",
		Short: "Find bounding boxes of connected '*' groups in a grid",
		Long: `bounding-box reads a grid of '*' (marked) and '-' (blank) characters from
standard input, finds the connected groups of marked cells and prints the
bounding box of the largest one as "(x1,y1)(x2,y2)". With --all every box that
overlaps no other is printed. "Error" is printed, with exit status 1, when the
rows differ in length or contain other characters.`,
		Example: `  bounding-box < groups.txt
  bounding-box --all < groups.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errUsage
			}
			return nil
		},
		RunE: a.runCompute,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to bbox.yaml (default $"+config.EnvPath+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.EnvLevel+" or config)")
	pf.BoolVar(&a.allBoxes, "all", false, "report every non-overlapping box instead of the largest")

	root.AddCommand(
		newRenderCommand(a),
		newScanCommand(a),
		newViewCommand(a),
		newServeCommand(a),
		newVersionCommand(),
	)
	return root
}

// setup loads configuration and installs the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := logging.ResolveLevel(a.logLevel, cfg.Logging.Level)
	var base *slog.Logger
	if cfg.Logging.Path != "" {
		if err := logging.Init(cfg.Logging.Path, level); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		base = slog.Default()
	} else {
		base = logging.New(cmd.ErrOrStderr(), level)
	}

	a.logger, _ = logging.WithRun(base)
	a.logger.Debug("command started", "command", cmd.CommandPath(), "config", path)
	return nil
}

// mode resolves --all against the configured default.
func (a *app) mode(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("all") {
		return a.allBoxes
	}
	return a.cfg.Mode.AllBoxes
}

func (a *app) runCompute(cmd *cobra.Command, args []string) error {
	lines, err := grid.CleanLines(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return a.report(cmd.OutOrStdout(), boundingbox.OutputFor(boundingbox.Analyze(cmd.Context(), lines, boundingbox.Options{
		AllBoxes: a.mode(cmd),
		Logger:   a.logger,
	})))
}

// report prints a result line and turns the error marker into errInvalidInput.
func (a *app) report(w io.Writer, result string) error {
	fmt.Fprintln(w, result)
	if result == boundingbox.ErrorMarker {
		return errInvalidInput
	}
	return nil
}

// readGrid parses the grid from args[0] when given, otherwise from stdin.
func readGrid(cmd *cobra.Command, args []string) (*grid.Grid, error) {
	r := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	lines, err := grid.CleanLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return grid.Parse(lines)
}
