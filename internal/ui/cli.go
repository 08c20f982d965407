// Package ui implements the rangepick command line.
package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/rangepick"
	"github.com/javiermolinar/rangepick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// runTUI is swapped in tests; the real TUI needs a terminal.
var runTUI = tui.Run

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string // --config, overrides the default location
	root       *cobra.Command
	debug      bool // Enable debug logging
	year       int
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "rangepick",
		Short: "Pick a date range and split it into weekdays and weekend days",
		Long: `rangepick shows a year calendar in the terminal. Click a start date and an
end date, then apply to list every weekday and weekend day in the range.

Without a subcommand it starts the interactive picker and prints the last
applied range on exit.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPicker(cmd.OutOrStdout())
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	a.root.Flags().IntVar(&a.year, "year", 0, "Year to show first (default: current year)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.classifyCmd())
	a.root.AddCommand(a.yearCmd())

	return a
}

// loadConfig reloads the config when --config is given and applies the
// color preference.
func (a *App) loadConfig(_ *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}
	if !a.config.Output.Color {
		DisableColor()
	}
	return nil
}

// logger returns a development logger on stderr with --debug.
func (a *App) logger() *zap.Logger {
	if !a.debug {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func (a *App) runPicker(out io.Writer) error {
	var last *rangepick.ClassifiedRange
	observer := rangepick.ObserverFunc(func(r rangepick.ClassifiedRange) { last = &r })

	if err := runTUI(a.config, tui.Options{Year: a.year, Debug: a.debug, Observer: observer}); err != nil {
		return err
	}
	if last == nil {
		return nil
	}

	format, err := export.ParseFormat(a.config.Output.Format)
	if err != nil {
		return err
	}
	a.logger().Debug("picker closed", zap.Stringer("start", last.Start), zap.Stringer("end", last.End))
	return export.Write(out, *last, format)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rangepick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
