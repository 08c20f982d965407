package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// today is swapped in tests so relative dates are stable.
var today = dateutil.Today

func (a *App) classifyCmd() *cobra.Command {
	var format string
	var output string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "classify START END",
		Short: "Split a date range into weekdays and weekend days",
		Long: `Classify every day from START to END (both included) as a weekday or a
weekend day, the same way the picker does after apply.

Dates are YYYY-MM-DD or relative: today, tomorrow, yesterday, next-week,
a weekday name, or next-<weekday>.

Examples:
  rangepick classify 2024-03-04 2024-03-10
  rangepick classify today next-friday --format json
  rangepick classify 2024-12-23 2025-01-05 --format ics --output holidays.ics`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if format == "" {
				format = a.config.Output.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			r, err := classifyArgs(args[0], args[1], a.logger())
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), r, f)
			}
			// Files never get terminal colors.
			DisableColor()
			if err := writeFile(output, r, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d days to %s\n", r.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json or ics (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// classifyArgs drives a classifier with two clicks and an apply, the same
// path the picker takes.
func classifyArgs(startArg, endArg string, logger *zap.Logger) (rangepick.ClassifiedRange, error) {
	// A second click before the first restarts the range instead of failing,
	// so NewDateRange checks the order up front.
	dr, err := dateutil.NewDateRange(startArg, endArg, today())
	if err != nil {
		return rangepick.ClassifiedRange{}, err
	}
	logger.Debug("classifying", zap.Stringer("start", dr.Start), zap.Stringer("end", dr.End), zap.Int("days", dr.Days()))

	c := rangepick.NewClassifier(rangepick.WithLogger(logger))
	c.OnDayClicked(dr.Start)
	c.OnDayClicked(dr.End)
	return c.OnApplyRequested()
}

func writeFile(path string, r rangepick.ClassifiedRange, f export.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return export.Write(file, r, f)
}
