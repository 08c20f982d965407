package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/config"
	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  rangepick config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.MonthsPerRow = promptInt(reader, out, "Months per row (1-12)", cfg.UI.MonthsPerRow)
	cfg.UI.YearOptions = promptInt(reader, out, "Years offered in the switcher", cfg.UI.YearOptions)
	cfg.Output.Format = promptFormat(reader, out, cfg.Output.Format)
	cfg.Output.Color = promptBool(reader, out, "Colored output", cfg.Output.Color)
	cfg.Log.DebugFile = promptValue(reader, out, "Debug log file", cfg.Log.DebugFile)
	cfg.Log.Level = promptValue(reader, out, "Log level (debug, info, warn, error)", cfg.Log.Level)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  months_per_row = %d\n", cfg.UI.MonthsPerRow)
	fmt.Fprintf(out, "  year_options   = %d\n", cfg.UI.YearOptions)
	fmt.Fprintln(out, "\n[output]")
	fmt.Fprintf(out, "  format         = %s\n", cfg.Output.Format)
	fmt.Fprintf(out, "  color          = %t\n", cfg.Output.Color)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  debug_file     = %s\n", cfg.Log.DebugFile)
	fmt.Fprintf(out, "  level          = %s\n", cfg.Log.Level)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input := strings.ToLower(readLine(reader))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input := readLine(reader)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Not a number: %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, out io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, out, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(out, "  Not a boolean: %q\n", value)
	}
}

func promptFormat(reader *bufio.Reader, out io.Writer, current string) string {
	for {
		value := promptValue(reader, out, "Output format (text, json, ics)", current)
		f, err := export.ParseFormat(value)
		if err == nil {
			return string(f)
		}
		fmt.Fprintf(out, "  %v\n", err)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		// Keeping the current value is always allowed; the TUI falls back to mocha.
		if value == current || theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
