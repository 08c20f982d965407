package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/tui/view"
)

const appTitle = "rangepick"

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	overlay := m.overlay
	modal := ""
	if showModal {
		modal = m.renderModal()
		overlay.Show(m.styles.ModalBackdropColor)
	} else {
		overlay.Hide()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	headerBox := m.placeBox(layout.InnerW, layout.HeaderH, lipgloss.Top, m.renderHeader(layout.InnerW))
	gridBox := m.placeBox(layout.InnerW, layout.GridH, lipgloss.Top, m.renderGrid(layout))
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, headerBox, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	if h <= 0 {
		return ""
	}
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}

func (m Model) renderHeader(width int) string {
	s := m.styles
	return view.RenderHeader(appTitle, m.years, m.year, width, view.HeaderStyles{
		Title:     s.TitleStyle,
		Tab:       s.YearTabStyle,
		TabActive: s.YearTabActive,
		Outside:   s.YearOutsideStyle,
		Fill:      lipgloss.NewStyle().Background(s.colorBg),
	})
}

// renderGrid renders the visible month rows of the displayed year.
func (m Model) renderGrid(layout LayoutCache) string {
	if layout.GridH <= 0 || layout.PerRow <= 0 {
		return ""
	}

	sel := m.classifier.Selection()
	styles := m.styles.MonthStyles()
	rows := make([]string, 0, layout.monthRows())
	for _, months := range m.grid.Rows(layout.PerRow) {
		blocks := make([]string, 0, len(months))
		for _, month := range months {
			blocks = append(blocks, view.RenderMonth(view.MonthModel{
				Month:     month,
				Selection: sel,
				Cursor:    m.cursor,
				Today:     m.today,
				Focused:   m.focused && m.mode != ModeModal,
			}, styles))
		}
		rows = append(rows, view.JoinMonths(blocks, m.styles.colorBg))
	}

	visible := view.VisibleRows(rows, m.scrollOffset, layout.VisibleRows)
	spacer := strings.Repeat("\n", view.MonthRowGap)
	return strings.Join(visible, "\n"+spacer)
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	showPrompt := m.mode == ModePrompt
	var lines []string
	if showPrompt {
		lines = m.promptLines(layout.PromptContentWidth)
	}

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       layout.FooterFull,
		SelectionText:    m.selectionText(),
		LegendText:       m.legendText(),
		StatusText:       m.statusMsgOrDefault(),
		HelpText:         m.helpText(),
		PromptLines:      lines,
		ShowPrompt:       showPrompt,
		SelectionStyle:   m.styles.SelectionStyle,
		LegendStyle:      layout.HelpAuxStyle,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}
