package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// Printed month geometry: seven right-aligned cells of three columns.
const (
	yearCellWidth  = 3
	yearMonthWidth = calendar.DaysPerWeek * yearCellWidth
	yearMonthGap   = 2
	yearMaxPerRow  = 4
)

func (a *App) yearCmd() *cobra.Command {
	var from, to string
	var perRow int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "year [YEAR]",
		Short: "Print a year calendar with weekends highlighted",
		Long: `Print the twelve months of YEAR (default: this year), Sunday first, with
weekend days highlighted. --from and --to highlight a range the way the
picker does: weekdays and weekend days inside it are shown differently.

Examples:
  rangepick year
  rangepick year 2024 --from 2024-03-04 --to 2024-03-10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			now := today()
			year := now.Year()
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("year %q: %w", args[0], calendar.ErrInvalidYear)
				}
				year = y
			}
			grid, err := calendar.NewYear(year)
			if err != nil {
				return err
			}

			sel, err := rangeSelection(from, to, now)
			if err != nil {
				return err
			}

			if perRow <= 0 {
				perRow = fitMonthsPerRow(termWidth())
			}
			fmt.Fprint(cmd.OutOrStdout(), renderYear(grid, sel, now, perRow))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Highlight a range starting at this date")
	cmd.Flags().StringVar(&to, "to", "", "End of the highlighted range (needs --from)")
	cmd.Flags().IntVar(&perRow, "per-row", 0, "Months per row (default: fit the terminal)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// rangeSelection replays --from and --to as picker clicks.
func rangeSelection(from, to string, now dateutil.Date) (rangepick.Selection, error) {
	var sel rangepick.Selection
	if from == "" {
		if to != "" {
			return sel, errors.New("--to needs --from")
		}
		return sel, nil
	}

	dr, err := dateutil.NewDateRange(from, to, now)
	if err != nil {
		return sel, fmt.Errorf("--from/--to: %w", err)
	}
	sel = rangepick.Click(sel, dr.Start)
	if to == "" {
		return sel, nil
	}
	return rangepick.Click(sel, dr.End), nil
}

func fitMonthsPerRow(width int) int {
	fit := (width + yearMonthGap) / (yearMonthWidth + yearMonthGap)
	return max(min(fit, yearMaxPerRow), 1)
}

// renderYear prints the months of y in rows of perRow, coloring each day
// by its cell kind against sel.
func renderYear(y calendar.Year, sel rangepick.Selection, now dateutil.Date, perRow int) string {
	var b strings.Builder
	gap := strings.Repeat(" ", yearMonthGap)

	title := strconv.Itoa(y.Year)
	fmt.Fprintf(&b, "%s%s\n\n", strings.Repeat(" ", max((perRow*(yearMonthWidth+yearMonthGap)-yearMonthGap-len(title))/2, 0)), formatHeader(title))

	for i, row := range y.Rows(perRow) {
		if i > 0 {
			b.WriteString("\n")
		}

		titles := make([]string, len(row))
		headers := make([]string, len(row))
		for j, m := range row {
			titles[j] = formatHeader(center(m.Month.String(), yearMonthWidth))
			headers[j] = weekdayHeaderLine()
		}
		b.WriteString(strings.TrimRight(strings.Join(titles, gap), " ") + "\n")
		b.WriteString(strings.Join(headers, gap) + "\n")

		for week := range calendar.MaxWeeks(row) {
			cells := make([]string, len(row))
			for j, m := range row {
				cells[j] = weekLine(m, week, sel, now)
			}
			b.WriteString(strings.TrimRight(strings.Join(cells, gap), " ") + "\n")
		}
	}

	b.WriteString("\n" + legend() + "\n")
	return b.String()
}

func weekdayHeaderLine() string {
	var b strings.Builder
	for i, name := range calendar.WeekdayHeaders {
		cell := fmt.Sprintf("%*s", yearCellWidth, name[:2])
		if i == 0 || i == calendar.DaysPerWeek-1 {
			cell = colorWeekend.Sprint(cell)
		} else {
			cell = formatMuted(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

// weekLine renders one week row of m; months with fewer weeks get blanks.
func weekLine(m calendar.Month, week int, sel rangepick.Selection, now dateutil.Date) string {
	weeks := m.Weeks()
	if week >= len(weeks) {
		return strings.Repeat(" ", yearMonthWidth)
	}

	var b strings.Builder
	for _, d := range weeks[week] {
		if d.IsZero() {
			b.WriteString(strings.Repeat(" ", yearCellWidth))
			continue
		}
		b.WriteString(" ")
		b.WriteString(dayColor(d, sel, now).Sprintf("%2d", d.Day()))
	}
	return b.String()
}

func dayColor(d dateutil.Date, sel rangepick.Selection, now dateutil.Date) *color.Color {
	switch calendar.CellKind(d, sel) {
	case calendar.KindSelected:
		return colorSelected
	case calendar.KindSelectedWeekend:
		return colorSelectedWeekend
	case calendar.KindAnchor:
		return colorSelected
	case calendar.KindWeekend:
		if d == now {
			return colorToday
		}
		return colorWeekend
	default:
		if d == now {
			return colorToday
		}
		return colorDay
	}
}

func legend() string {
	return strings.Join([]string{
		colorWeekend.Sprint("weekend"),
		colorSelected.Sprint("selected"),
		colorSelectedWeekend.Sprint("weekend in range"),
		colorToday.Sprint("today"),
	}, formatMuted(" · "))
}

func center(s string, width int) string {
	pad := max(width-len(s), 0)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
