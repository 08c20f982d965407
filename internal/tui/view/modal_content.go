package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyHelp is one row of the help modal.
type KeyHelp struct {
	Keys        string
	Description string
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	KeyStyle  lipgloss.Style
	BodyStyle lipgloss.Style
}

// RenderHelpBody renders key bindings as an aligned two-column list.
func RenderHelpBody(rows []KeyHelp, styles HelpStyles) string {
	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Keys))
	}

	var body strings.Builder
	keyStyle := styles.KeyStyle.Width(keyWidth + 2)
	for i, row := range rows {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.BodyStyle.Render(" ") + keyStyle.Render(row.Keys) + styles.BodyStyle.Render(row.Description))
	}
	return body.String()
}
