package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// Month block geometry, in terminal cells.
const (
	CellWidth   = 3
	MonthWidth  = calendar.DaysPerWeek * CellWidth
	MonthGap    = 2
	MonthHeight = 2 + 6 // title, weekday header, six week rows
	MonthRowGap = 1
)

// MonthStyles groups the styles needed to render a month block.
type MonthStyles struct {
	Title         lipgloss.Style
	TitleCursor   lipgloss.Style
	WeekdayHeader lipgloss.Style
	WeekendHeader lipgloss.Style
	Blank         lipgloss.Style
	Cursor        lipgloss.Style
	Today         lipgloss.Style
	Cell          func(calendar.Kind) lipgloss.Style
}

// MonthModel is what a month block shows.
type MonthModel struct {
	Month     calendar.Month
	Selection rangepick.Selection
	Cursor    dateutil.Date
	Today     dateutil.Date
	Focused   bool // the program has focus; hide the cursor otherwise
}

// RenderMonth renders one month as MonthHeight lines of MonthWidth cells.
// Months with fewer than six weeks are padded with blank rows so blocks in
// the same row line up.
func RenderMonth(m MonthModel, styles MonthStyles) string {
	lines := make([]string, 0, MonthHeight)

	title := styles.Title
	if _, _, ok := m.Month.Position(m.Cursor); ok && m.Focused {
		title = styles.TitleCursor
	}
	lines = append(lines, title.Render(m.Month.Title()))
	lines = append(lines, weekdayHeader(styles))

	weeks := m.Month.Weeks()
	for _, week := range weeks {
		var b strings.Builder
		for _, d := range week {
			b.WriteString(renderCell(d, m, styles))
		}
		lines = append(lines, b.String())
	}
	blankRow := styles.Blank.Render(strings.Repeat(" ", CellWidth))
	for len(lines) < MonthHeight {
		lines = append(lines, strings.Repeat(blankRow, calendar.DaysPerWeek))
	}

	return strings.Join(lines, "\n")
}

func weekdayHeader(styles MonthStyles) string {
	var b strings.Builder
	for i, name := range calendar.WeekdayHeaders {
		style := styles.WeekdayHeader
		// Sunday and Saturday bracket the week.
		if i == 0 || i == calendar.DaysPerWeek-1 {
			style = styles.WeekendHeader
		}
		b.WriteString(style.Render(name[:2]))
	}
	return b.String()
}

func renderCell(d dateutil.Date, m MonthModel, styles MonthStyles) string {
	if d.IsZero() {
		return styles.Blank.Render("")
	}

	kind := calendar.CellKind(d, m.Selection)
	style := styles.Cell(kind)
	if d == m.Today {
		style = style.Underline(true)
		if kind == calendar.KindDay || kind == calendar.KindWeekend {
			style = style.Foreground(styles.Today.GetForeground())
		}
	}
	if m.Focused && d == m.Cursor {
		style = styles.Cursor
	}
	return style.Render(strconv.Itoa(d.Day()))
}

// JoinMonths lays month blocks side by side with the background-filled gap.
func JoinMonths(blocks []string, bg lipgloss.Color) string {
	if len(blocks) == 0 {
		return ""
	}
	gap := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", MonthGap))
	parts := make([]string, 0, 2*len(blocks)-1)
	for i, block := range blocks {
		if i > 0 {
			parts = append(parts, strings.TrimSuffix(strings.Repeat(gap+"\n", MonthHeight), "\n"))
		}
		parts = append(parts, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
