package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
	"github.com/javiermolinar/rangepick/internal/tui/commands"
	"github.com/javiermolinar/rangepick/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursorDays(-1, "left")
	case "l", "right":
		m.moveCursorDays(1, "right")
	case "k", "up":
		m.moveCursorDays(-7, "up")
	case "j", "down":
		m.moveCursorDays(7, "down")
	case "{", "pgup":
		m.moveCursorMonths(-1)
	case "}", "pgdown":
		m.moveCursorMonths(1)
	case "[":
		m.shiftYear(-1)
	case "]":
		m.shiftYear(1)
	case "tab":
		m.cycleYearOption(1)
	case "shift+tab":
		m.cycleYearOption(-1)
	case "t":
		m.moveCursorTo(m.today, "today")

	// Actions
	case "enter", " ":
		m.clickDay(m.cursor)
	case "a":
		return m.applyRange()
	case "c":
		m.classifier.Reset()
		m.statusMsg = "Selection cleared"
	case "y":
		return m.copyResult()
	case "g", "/":
		return m.openPrompt()
	case "?":
		m = m.openModal(ModalHelp, "help")
	}

	return m, nil
}

// handlePromptKeys handles keys while the jump prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.statusMsg = ""
		return m.closePrompt("prompt cancelled"), nil
	case "enter":
		return m.submitPrompt(), nil
	case "tab":
		if completed, ok := input.Autocomplete(m.prompt.Value()); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, cmd
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalResult:
		switch msg.String() {
		case "y":
			return m.copyResult()
		case "c":
			m.classifier.Reset()
			m.statusMsg = "Selection cleared"
			return m.closeModal("cleared"), nil
		case "esc", "enter", "q":
			return m.closeModal("closed"), nil
		}
	case ModalHelp:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			return m.closeModal("closed"), nil
		}
	}
	return m, nil
}

// clickDay feeds a day click to the classifier and moves the cursor there.
func (m *Model) clickDay(d dateutil.Date) {
	if d.IsZero() {
		return
	}
	m.moveCursorTo(d, "click")
	m.classifier.OnDayClicked(d)
}

// applyRange classifies the committed range and opens the result modal.
func (m Model) applyRange() (tea.Model, tea.Cmd) {
	r, err := m.classifier.OnApplyRequested()
	if err != nil {
		LogError("apply", err)
		if errors.Is(err, rangepick.ErrRangeNotCommitted) {
			m.statusMsg = applyHint(m.classifier.Selection())
			return m, nil
		}
		m.statusMsg = "Error: " + err.Error()
		return m, nil
	}

	LogApplied(r)
	m.result = &r
	return m.openModal(ModalResult, "applied"), nil
}

func applyHint(sel rangepick.Selection) string {
	if sel.State() == rangepick.StateAnchored {
		return "Select an end date first"
	}
	return "Select a start and an end date first"
}

func (m Model) copyResult() (tea.Model, tea.Cmd) {
	if m.result == nil {
		m.statusMsg = "Nothing to copy yet: apply a range first"
		return m, nil
	}
	return m, commands.CopyRange(*m.result)
}

func (m Model) openModal(t ModalType, reason string) Model {
	from := m.mode
	m.mode = ModeModal
	m.modalType = t
	LogModeChange(from, m.mode, reason)
	return m
}

func (m Model) closeModal(reason string) Model {
	from := m.mode
	m.mode = ModeNormal
	m.modalType = ModalNone
	LogModeChange(from, m.mode, reason)
	return m
}
