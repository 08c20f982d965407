package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/tui/theme"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWeekend     lipgloss.Color
	colorSelected    lipgloss.Color
	colorAnchor      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Title bar
	TitleStyle       lipgloss.Style
	YearTabStyle     lipgloss.Style
	YearTabActive    lipgloss.Style
	YearOutsideStyle lipgloss.Style

	// Month blocks
	MonthTitleStyle       lipgloss.Style
	MonthTitleCursorStyle lipgloss.Style
	WeekdayHeaderStyle    lipgloss.Style
	WeekendHeaderStyle    lipgloss.Style

	// Day cells, one per calendar.Kind
	DayStyle             lipgloss.Style
	WeekendStyle         lipgloss.Style
	SelectedStyle        lipgloss.Style
	SelectedWeekendStyle lipgloss.Style
	AnchorStyle          lipgloss.Style
	BlankStyle           lipgloss.Style
	CursorStyle          lipgloss.Style
	TodayStyle           lipgloss.Style

	// Footer
	SelectionStyle lipgloss.Style
	StatusStyle    lipgloss.Style
	HelpStyle      lipgloss.Style
	HelpKeyStyle   lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalWeekdayStyle      lipgloss.Style
	ModalWeekendStyle      lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWeekend = palette.Weekend
	s.colorSelected = palette.Selected
	s.colorAnchor = palette.Anchor
	s.colorToday = palette.Today
	s.colorWarning = palette.Warning

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(s.colorAccent)

	s.YearTabStyle = base.
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.YearTabActive = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true).
		Padding(0, 1)

	s.YearOutsideStyle = base.
		Foreground(s.colorWarning).
		Bold(true).
		Padding(0, 1)

	s.MonthTitleStyle = base.
		Bold(true).
		Foreground(s.colorFg).
		Width(view.MonthWidth).
		Align(lipgloss.Center)

	s.MonthTitleCursorStyle = s.MonthTitleStyle.
		Foreground(s.colorAccent)

	s.WeekdayHeaderStyle = base.
		Foreground(s.colorFgMuted).
		Width(view.CellWidth).
		Align(lipgloss.Right)

	s.WeekendHeaderStyle = s.WeekdayHeaderStyle.
		Foreground(s.colorWeekend)

	cell := base.
		Width(view.CellWidth).
		Align(lipgloss.Right)

	s.DayStyle = cell.
		Foreground(s.colorFg)

	s.WeekendStyle = cell.
		Foreground(s.colorWeekend)

	s.SelectedStyle = cell.
		Background(palette.SelectedBg).
		Foreground(palette.TextOnSelected).
		Bold(true)

	// Weekend days inside the range are part of the result but shown quieter.
	s.SelectedWeekendStyle = cell.
		Background(palette.SelectedWeekendBg).
		Foreground(s.colorWeekend).
		Faint(true)

	s.AnchorStyle = cell.
		Background(palette.AnchorBg).
		Foreground(palette.TextOnAnchor).
		Bold(true)

	s.BlankStyle = cell

	s.CursorStyle = cell.
		Background(palette.CursorBg).
		Foreground(s.colorAccent).
		Bold(true)

	s.TodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Underline(true)

	s.SelectionStyle = base.
		Foreground(s.colorSelected).
		Bold(true)

	s.StatusStyle = base.
		Foreground(s.colorWarning).
		Bold(true)

	s.HelpStyle = base.
		Foreground(s.colorFgMuted)

	s.HelpKeyStyle = base.
		Foreground(s.colorFg).
		Bold(true)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(62).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalWeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorSelected).
		Background(modalBg)

	s.ModalWeekendStyle = lipgloss.NewStyle().
		Foreground(s.colorWeekend).
		Background(modalBg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(appPadTop).
		PaddingLeft(appPadLeft).
		PaddingRight(appPadLeft)

	return s
}

// CellStyle returns the style for a day cell of the given kind.
func (s *Styles) CellStyle(k calendar.Kind) lipgloss.Style {
	switch k {
	case calendar.KindWeekend:
		return s.WeekendStyle
	case calendar.KindSelected:
		return s.SelectedStyle
	case calendar.KindSelectedWeekend:
		return s.SelectedWeekendStyle
	case calendar.KindAnchor:
		return s.AnchorStyle
	default:
		return s.DayStyle
	}
}

// MonthStyles returns the subset of styles the month renderer needs.
func (s *Styles) MonthStyles() view.MonthStyles {
	return view.MonthStyles{
		Title:         s.MonthTitleStyle,
		TitleCursor:   s.MonthTitleCursorStyle,
		WeekdayHeader: s.WeekdayHeaderStyle,
		WeekendHeader: s.WeekendHeaderStyle,
		Blank:         s.BlankStyle,
		Cursor:        s.CursorStyle,
		Today:         s.TodayStyle,
		Cell:          s.CellStyle,
	}
}
