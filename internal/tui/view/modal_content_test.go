package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHelpBody_AlignsDescriptions(t *testing.T) {
	styles := HelpStyles{
		KeyStyle:  lipgloss.NewStyle(),
		BodyStyle: lipgloss.NewStyle(),
	}
	rows := []KeyHelp{
		{Keys: "a", Description: "Apply"},
		{Keys: "enter", Description: "Click day"},
	}

	lines := strings.Split(RenderHelpBody(rows, styles), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if strings.Index(lines[0], "Apply") != strings.Index(lines[1], "Click day") {
		t.Fatalf("descriptions not aligned:\n%s\n%s", lines[0], lines[1])
	}
}
