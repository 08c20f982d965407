package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// Month is the grid of one calendar month.
type Month struct {
	Year  int
	Month time.Month
	// LeadingBlanks is the number of empty cells before day 1.
	LeadingBlanks int
	Days          []dateutil.Date
}

// NewMonth builds the grid for the given month.
func NewMonth(year int, month time.Month) (Month, error) {
	if err := ValidateYear(year); err != nil {
		return Month{}, err
	}
	if month < time.January || month > time.December {
		return Month{}, fmt.Errorf("%w: month %d out of range", dateutil.ErrInvalidDate, month)
	}

	first := dateutil.MustDate(year, month, 1)
	n := dateutil.DaysIn(year, month)
	days := make([]dateutil.Date, n)
	for i := range days {
		days[i] = first.AddDays(i)
	}

	return Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          days,
	}, nil
}

// Title returns "January 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// First returns day 1 of the month.
func (m Month) First() dateutil.Date {
	return m.Days[0]
}

// Last returns the last day of the month.
func (m Month) Last() dateutil.Date {
	return m.Days[len(m.Days)-1]
}

// Weeks lays the month out in rows of seven cells. Blank cells hold the zero Date.
func (m Month) Weeks() [][DaysPerWeek]dateutil.Date {
	cells := m.LeadingBlanks + len(m.Days)
	rows := (cells + DaysPerWeek - 1) / DaysPerWeek
	weeks := make([][DaysPerWeek]dateutil.Date, rows)
	for i, d := range m.Days {
		pos := m.LeadingBlanks + i
		weeks[pos/DaysPerWeek][pos%DaysPerWeek] = d
	}
	return weeks
}

// Position returns the week row and column of d, or ok=false if d is not in m.
func (m Month) Position(d dateutil.Date) (row, col int, ok bool) {
	if d.Year() != m.Year || d.Month() != m.Month {
		return 0, 0, false
	}
	pos := m.LeadingBlanks + d.Day() - 1
	return pos / DaysPerWeek, pos % DaysPerWeek, true
}

// Year is the twelve month grids of one year.
type Year struct {
	Year   int
	Months []Month
}

// NewYear builds all twelve months of year.
func NewYear(year int) (Year, error) {
	anchors, err := MonthAnchors(year)
	if err != nil {
		return Year{}, err
	}
	months := make([]Month, 0, len(anchors))
	for _, a := range anchors {
		m, err := NewMonth(a.Year(), a.Month())
		if err != nil {
			return Year{}, err
		}
		months = append(months, m)
	}
	return Year{Year: year, Months: months}, nil
}

// Rows chunks the months into rows of at most perRow months.
func (y Year) Rows(perRow int) [][]Month {
	if perRow <= 0 {
		perRow = 1
	}
	rows := make([][]Month, 0, (len(y.Months)+perRow-1)/perRow)
	for start := 0; start < len(y.Months); start += perRow {
		end := min(start+perRow, len(y.Months))
		rows = append(rows, y.Months[start:end])
	}
	return rows
}

// MaxWeeks returns the largest week count among months, used to align rows.
func MaxWeeks(months []Month) int {
	n := 0
	for _, m := range months {
		n = max(n, len(m.Weeks()))
	}
	return n
}
