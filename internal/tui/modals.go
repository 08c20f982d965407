package tui

import (
	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

// resultModalChrome is the modal height not used by date rows: border,
// padding, title, bounds, summary, section titles, spacers and buttons.
const resultModalChrome = 16

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalResult:
		return m.renderResultModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         m.styles.ModalBodyStyle,
		MetaStyle:         m.styles.ModalMetaStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		KeyStyle:          m.styles.ModalTitleStyle,
		WeekdayStyle:      m.styles.ModalWeekdayStyle,
		WeekendStyle:      m.styles.ModalWeekendStyle,
	}
}

// resultMaxLines splits the space left by the modal chrome between the
// weekday and weekend lists.
func (m Model) resultMaxLines() int {
	return min(max((m.height-resultModalChrome)/2, 2), 8)
}

// renderResultModal renders the classified range after apply.
func (m Model) renderResultModal() string {
	if m.result == nil {
		return ""
	}
	model := view.NewResultModel(*m.result, export.Summary(*m.result), m.resultMaxLines())
	body := view.RenderResultBody(model, m.modalStyleSet().ResultStyles())
	footer := view.ResultFooter(m.modalStyles())
	return view.RenderModalFrame("Selected Date Range", body, footer, m.modalStyles())
}

// renderHelpModal renders the key bindings.
func (m Model) renderHelpModal() string {
	body := view.RenderHelpBody(keyHelp, m.modalStyleSet().HelpStyles())
	footer := view.HelpFooter(m.modalStyles())
	return view.RenderModalFrame("Keys", body, footer, m.modalStyles())
}
