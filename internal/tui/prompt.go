package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/tui/input"
	"github.com/javiermolinar/rangepick/internal/tui/view"
)

const promptLabel = "Go to: "

// promptMaxContentLines caps the prompt box at input plus suggestions.
const promptMaxContentLines = 2

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Label:       promptLabel,
		Value:       m.prompt.Value(),
		Cursor:      m.promptCursor(),
		Suggestions: input.MatchingKeywords(m.prompt.Value()),
	}
	return view.ClampPromptLines(view.PromptLines(state, contentWidth), promptMaxContentLines, contentWidth)
}

func (m Model) openPrompt() (Model, tea.Cmd) {
	from := m.mode
	m.mode = ModePrompt
	m.prompt.SetValue("")
	m.prompt.Focus()
	LogModeChange(from, m.mode, "open prompt")
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, textinput.Blink
}

func (m Model) closePrompt(reason string) Model {
	from := m.mode
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	LogModeChange(from, m.mode, reason)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.ensureCursorVisible()
	return m
}

// submitPrompt jumps to the typed target. Invalid input keeps the prompt
// open with the error in the status line.
func (m Model) submitPrompt() Model {
	target, err := input.ParseTarget(m.prompt.Value(), m.today)
	if err != nil {
		LogError("prompt", err)
		m.statusMsg = err.Error()
		return m
	}

	m = m.closePrompt("prompt submitted")
	if target.YearOnly {
		from := m.year
		m.setYear(target.Date.Year())
		LogYearChange(from, m.year)
		m.statusMsg = ""
		return m
	}
	m.moveCursorTo(target.Date, "prompt")
	m.statusMsg = ""
	return m
}
