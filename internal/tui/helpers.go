package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/rangepick"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// keyHelp lists the bindings shown in the help modal.
var keyHelp = []view.KeyHelp{
	{Keys: "←↓↑→ / hjkl", Description: "Move by day or week"},
	{Keys: "{ / }", Description: "Previous / next month"},
	{Keys: "[ / ]", Description: "Previous / next year"},
	{Keys: "tab / shift+tab", Description: "Cycle offered years"},
	{Keys: "enter / space", Description: "Click the day under the cursor"},
	{Keys: "mouse", Description: "Click a day"},
	{Keys: "a", Description: "Apply the selected range"},
	{Keys: "c", Description: "Clear the selection"},
	{Keys: "t", Description: "Jump to today"},
	{Keys: "g", Description: "Go to a date or year"},
	{Keys: "y", Description: "Copy the last result"},
	{Keys: "?", Description: "Toggle this help"},
	{Keys: "q / ctrl+c", Description: "Quit"},
}

// setYear switches the displayed year and keeps the cursor inside it.
func (m *Model) setYear(year int) {
	year = calendar.ClampYear(year)
	grid, err := calendar.NewYear(year)
	if err != nil {
		return
	}
	m.year = year
	m.grid = grid
	if m.cursor.Year() != year {
		day := min(max(m.cursor.Day(), 1), dateutil.DaysIn(year, m.cursor.Month()))
		month := m.cursor.Month()
		if month == 0 {
			month = time.January
		}
		m.cursor = dateutil.MustDate(year, month, day)
	}
	m.ensureCursorVisible()
}

// moveCursorTo places the cursor on d, switching years when needed.
func (m *Model) moveCursorTo(d dateutil.Date, reason string) {
	if d.Year() < dateutil.MinYear || d.Year() > dateutil.MaxYear {
		m.statusMsg = "Date out of range"
		return
	}
	m.cursor = d
	if d.Year() != m.year {
		from := m.year
		m.setYear(d.Year())
		LogYearChange(from, m.year)
	}
	m.ensureCursorVisible()
	LogCursorMove(d, reason)
}

// moveCursorDays moves the cursor n days, guarding the supported year range.
func (m *Model) moveCursorDays(n int, reason string) {
	target := m.cursor.Time().AddDate(0, 0, n)
	if target.Year() < dateutil.MinYear || target.Year() > dateutil.MaxYear {
		m.statusMsg = "Date out of range"
		return
	}
	m.moveCursorTo(dateutil.FromTime(target), reason)
}

// moveCursorMonths moves the cursor n months, clamping the day to the
// target month's length.
func (m *Model) moveCursorMonths(n int) {
	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	if first.Year() < dateutil.MinYear || first.Year() > dateutil.MaxYear {
		m.statusMsg = "Date out of range"
		return
	}
	day := min(m.cursor.Day(), dateutil.DaysIn(first.Year(), first.Month()))
	m.moveCursorTo(dateutil.MustDate(first.Year(), first.Month(), day), "month")
}

// shiftYear moves the displayed year by delta, keeping month and day.
func (m *Model) shiftYear(delta int) {
	target := calendar.ClampYear(m.year + delta)
	if target == m.year {
		m.statusMsg = "No more years in that direction"
		return
	}
	from := m.year
	m.setYear(target)
	LogYearChange(from, m.year)
}

// cycleYearOption moves to the next (dir=1) or previous (dir=-1) offered year.
// Years are offered most recent first; tab walks back in time.
func (m *Model) cycleYearOption(dir int) {
	if len(m.years) == 0 {
		return
	}
	idx := -1
	for i, y := range m.years {
		if y == m.year {
			idx = i
			break
		}
	}
	next := 0
	if idx >= 0 {
		next = (idx + dir + len(m.years)) % len(m.years)
	}
	from := m.year
	m.setYear(m.years[next])
	LogYearChange(from, m.year)
}

func (m *Model) ensureCursorVisible() {
	layout := m.layoutCache
	if layout.PerRow <= 0 || layout.VisibleRows <= 0 {
		return
	}
	row := layout.monthRowOf(int(m.cursor.Month()) - 1)
	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+layout.VisibleRows {
		m.scrollOffset = row - layout.VisibleRows + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxOffset := max(m.layoutCache.monthRows()-m.layoutCache.VisibleRows, 0)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxOffset)
}

// dateAt returns the day under a screen position, if any.
func (m Model) dateAt(x, y int) (dateutil.Date, bool) {
	month, week, col, ok := m.layoutCache.hitMonth(x, y, m.scrollOffset)
	if !ok || month >= len(m.grid.Months) {
		return dateutil.Date{}, false
	}
	weeks := m.grid.Months[month].Weeks()
	if week >= len(weeks) {
		return dateutil.Date{}, false
	}
	d := weeks[week][col]
	return d, !d.IsZero()
}

func (m Model) selectionText() string {
	sel := m.classifier.Selection()
	switch sel.State() {
	case rangepick.StateAnchored:
		anchor, _ := sel.Anchor()
		return fmt.Sprintf("Start %s · pick an end date", anchor)
	case rangepick.StateCommitted:
		start, end, _ := sel.Range()
		weekdays, weekendDays, err := rangepick.CountWeekdays(start, end)
		if err != nil {
			return fmt.Sprintf("%s → %s", start, end)
		}
		return fmt.Sprintf("%s → %s · %d weekdays, %d weekend days · press a to apply", start, end, weekdays, weekendDays)
	default:
		return "Click a start date"
	}
}

func (m Model) legendText() string {
	s := m.styles
	parts := []string{
		s.SelectedStyle.Render(" 4 ") + s.HelpStyle.Render(" selected"),
		s.SelectedWeekendStyle.Render(" 9 ") + s.HelpStyle.Render(" weekend in range"),
		s.AnchorStyle.Render(" 1 ") + s.HelpStyle.Render(" start"),
		s.WeekendStyle.Render(" 6 ") + s.HelpStyle.Render(" weekend"),
		s.DayStyle.Foreground(s.colorToday).Underline(true).Render(fmt.Sprint(m.today.Day())) + s.HelpStyle.Render(" today"),
	}
	return strings.Join(parts, s.HelpStyle.Render("   "))
}

func (m Model) statusMsgOrDefault() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	if m.result != nil {
		return "Last apply: " + export.Summary(*m.result)
	}
	return ""
}

func (m Model) helpText() string {
	switch m.mode {
	case ModePrompt:
		return "enter go · tab complete · esc cancel"
	case ModeModal:
		return "esc close"
	default:
		return "enter click · a apply · c clear · g go to · [ ] year · ? help · q quit"
	}
}
