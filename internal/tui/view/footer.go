package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW        int
	FooterH       int
	FullFooter    bool
	SelectionLine string
	LegendLine    string
	PromptLine    string // empty unless the jump prompt is open
	StatusLine    string
	HelpLine      string
	VAlign        lipgloss.Position
	Bg            lipgloss.Color
}

// RenderFooter renders selection, legend, prompt, status, and help lines.
// The compact footer keeps the prompt, status and help only.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	lines := make([]string, 0, 5)
	if state.FullFooter {
		lines = append(lines, state.SelectionLine, state.LegendLine)
	}
	if state.PromptLine != "" {
		lines = append(lines, state.PromptLine)
	}
	lines = append(lines, state.StatusLine, state.HelpLine)

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, strings.Join(lines, "\n"), state.Bg)
}
