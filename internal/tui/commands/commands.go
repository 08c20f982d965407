// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rangepick/internal/export"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// StatusTTL is how long a status message stays in the footer.
const StatusTTL = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after the applied range was placed on the clipboard.
type CopiedMsg struct {
	Days int
}

// writeClipboard is swapped in tests; the real clipboard needs a display.
var writeClipboard = clipboard.WriteAll

// Status returns a command that shows msg in the footer.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyRange writes the plain-text rendering of r to the system clipboard.
func CopyRange(r rangepick.ClassifiedRange) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(export.Text(r)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Days: r.Len()}
	}
}
