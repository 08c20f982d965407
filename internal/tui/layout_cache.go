package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/tui/view"
)

const (
	appPadTop  = 1
	appPadLeft = 2

	headerLines   = 2 // title bar and a spacer
	footerFull    = 4 // selection, legend, status, help
	footerCompact = 2 // status, help
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	GridH   int
	FooterH int

	// Month grid geometry.
	PerRow      int // months side by side
	VisibleRows int // month rows that fit in GridH
	GridX       int // screen column of the first month block
	GridY       int // screen row of the first month block

	FooterFull         bool
	StatusAuxStyle     lipgloss.Style
	HelpAuxStyle       lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptFocusedStyle.GetFrameSize()
	return max(innerW-promptFrameW, 0)
}

// monthsPerRow fits the configured months per row into innerW.
func monthsPerRow(configured, innerW int) int {
	fit := (innerW + view.MonthGap) / (view.MonthWidth + view.MonthGap)
	return max(min(configured, fit), 1)
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	promptWidth := promptContentWidth(styles, innerW)
	promptH := 0
	if m.mode == ModePrompt {
		_, promptFrameV := styles.PromptFocusedStyle.GetFrameSize()
		promptH = len(m.promptLines(promptWidth)) + promptFrameV
	}

	full := innerH-headerLines-footerFull-promptH >= view.MonthHeight
	footerH := footerCompact + promptH
	if full {
		footerH = footerFull + promptH
	}
	gridH := max(innerH-headerLines-footerH, 0)

	perRow := monthsPerRow(m.config.UI.MonthsPerRow, innerW)
	visibleRows := max((gridH+view.MonthRowGap)/(view.MonthHeight+view.MonthRowGap), 1)

	lineStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		HeaderH:            headerLines,
		GridH:              gridH,
		FooterH:            footerH,
		PerRow:             perRow,
		VisibleRows:        visibleRows,
		GridX:              appPadLeft,
		GridY:              appPadTop + headerLines,
		FooterFull:         full,
		StatusAuxStyle:     styles.StatusStyle.Inherit(lineStyle),
		HelpAuxStyle:       styles.HelpStyle.Inherit(lineStyle),
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}

// monthRows is the number of month rows needed for the year.
func (l LayoutCache) monthRows() int {
	return (12 + l.PerRow - 1) / l.PerRow
}

// monthRowOf returns the grid row holding month index i (0 = January).
func (l LayoutCache) monthRowOf(i int) int {
	return i / l.PerRow
}

// hitMonth maps a screen position to a month index, week row and weekday
// column. ok is false outside any day cell.
func (l LayoutCache) hitMonth(x, y, scroll int) (month, week, col int, ok bool) {
	if l.PerRow <= 0 {
		return 0, 0, 0, false
	}
	dx := x - l.GridX
	dy := y - l.GridY
	if dx < 0 || dy < 0 || dy >= l.GridH {
		return 0, 0, 0, false
	}

	blockW := view.MonthWidth + view.MonthGap
	blockH := view.MonthHeight + view.MonthRowGap
	gridCol, inX := dx/blockW, dx%blockW
	gridRow, inY := dy/blockH+scroll, dy%blockH
	if gridCol >= l.PerRow || inX >= view.MonthWidth {
		return 0, 0, 0, false
	}
	// The first two lines of a block are the title and weekday header.
	if inY < 2 || inY >= view.MonthHeight {
		return 0, 0, 0, false
	}

	month = gridRow*l.PerRow + gridCol
	if month >= 12 {
		return 0, 0, 0, false
	}
	return month, inY - 2, inX / view.CellWidth, true
}
