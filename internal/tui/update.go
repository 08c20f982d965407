package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.ensureCursorVisible()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.FocusMsg:
		m.focused = true
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, commands.ClearStatusAfter(5 * time.Second)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(commands.StatusTTL)
		return m, commands.ClearStatusAfter(commands.StatusTTL)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.CopiedMsg:
		return m, commands.Status(fmt.Sprintf("Copied %d dates to the clipboard", msg.Days))
	}

	// Cursor blink and other textinput messages
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleMouseMsg turns left clicks on day cells into day clicks and
// scrolls the month rows with the wheel.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.scrollOffset--
			m.clampScroll()
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.scrollOffset++
			m.clampScroll()
		}
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		d, ok := m.dateAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.statusMsg = ""
		m.clickDay(d)
	}
	return m, nil
}
