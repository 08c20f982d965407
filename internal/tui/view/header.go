package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderStyles groups the styles of the title bar.
type HeaderStyles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	// Outside marks a displayed year that is not one of the offered years.
	Outside lipgloss.Style
	Fill    lipgloss.Style
}

// HeaderLabels returns the year tab labels, oldest first, and the index of
// current among them or -1.
func HeaderLabels(years []int, current int) ([]string, int) {
	labels := make([]string, len(years))
	active := -1
	for i := range years {
		y := years[len(years)-1-i]
		labels[i] = strconv.Itoa(y)
		if y == current {
			active = i
		}
	}
	return labels, active
}

// RenderHeader renders the app title followed by the year tabs, truncated
// from the oldest year when the line is too narrow.
func RenderHeader(title string, years []int, current int, width int, styles HeaderStyles) string {
	labels, active := HeaderLabels(years, current)

	tabs := make([]string, 0, len(labels)+1)
	for i, label := range labels {
		style := styles.Tab
		if i == active {
			style = styles.TabActive
		}
		tabs = append(tabs, style.Render(label))
	}
	if active < 0 {
		tabs = append(tabs, styles.Outside.Render(strconv.Itoa(current)))
	}

	left := styles.Title.Render(title)
	for len(tabs) > 1 && lipgloss.Width(left)+lipgloss.Width(strings.Join(tabs, ""))+1 > width {
		tabs = tabs[1:]
	}
	right := strings.Join(tabs, "")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + styles.Fill.Render(strings.Repeat(" ", gap)) + right
}
