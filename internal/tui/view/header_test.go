package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestHeaderLabels(t *testing.T) {
	labels, active := HeaderLabels([]int{2024, 2023, 2022}, 2023)
	if strings.Join(labels, ",") != "2022,2023,2024" {
		t.Fatalf("labels = %v, want oldest first", labels)
	}
	if active != 1 {
		t.Fatalf("active = %d, want 1", active)
	}

	if _, active := HeaderLabels([]int{2024}, 1999); active != -1 {
		t.Fatalf("active = %d, want -1 for a year outside the options", active)
	}
}

func TestRenderHeader(t *testing.T) {
	styles := HeaderStyles{
		Title:     lipgloss.NewStyle(),
		Tab:       lipgloss.NewStyle().Padding(0, 1),
		TabActive: lipgloss.NewStyle().Padding(0, 1),
		Outside:   lipgloss.NewStyle().Padding(0, 1),
		Fill:      lipgloss.NewStyle(),
	}
	years := []int{2024, 2023, 2022}

	tests := []struct {
		name     string
		current  int
		width    int
		contains []string
		missing  []string
	}{
		{name: "wide", current: 2024, width: 60, contains: []string{"rangepick", " 2022 ", " 2024 "}},
		{name: "outside", current: 1999, width: 60, contains: []string{" 1999 "}},
		{name: "narrow_drops_oldest", current: 2024, width: 22, contains: []string{" 2024 "}, missing: []string{"2022"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderHeader("rangepick", years, tt.current, tt.width, styles)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("header %q missing %q", got, want)
				}
			}
			for _, unwanted := range tt.missing {
				if strings.Contains(got, unwanted) {
					t.Errorf("header %q should not contain %q", got, unwanted)
				}
			}
		})
	}
}
