package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Backdrop kept around the modal: columns on the left and right, rows above
// and below.
const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// OverlayModel draws a modal centered over the calendar on a solid backdrop.
type OverlayModel struct {
	active   bool
	backdrop lipgloss.Color
}

// NewOverlayModel initializes an inactive overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Show activates the overlay with the given backdrop color.
func (o *OverlayModel) Show(backdrop lipgloss.Color) {
	o.active = true
	o.backdrop = backdrop
}

// Hide deactivates the overlay.
func (o *OverlayModel) Hide() {
	o.active = false
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// Render draws content centered on top of base. The backdrop band spans
// the modal rows plus a margin so the calendar does not bleed into it.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	modal := trimTrailingEmpty(strings.Split(content, "\n"))
	if len(modal) == 0 {
		return base
	}
	modalW := 0
	for _, line := range modal {
		modalW = max(modalW, lipgloss.Width(line))
	}
	modalW = min(modalW, width)
	modalH := min(len(modal), height)

	bandW := min(modalW+2*overlayMarginX, width)
	bandH := min(modalH+2*overlayMarginY, height)
	bandTop := max((height-bandH)/2, 0)
	bandLeft := max((width-bandW)/2, 0)
	modalTop := bandTop + (bandH-modalH)/2
	modalLeft := (bandW - modalW) / 2

	bgSeq := o.backdropSeq()
	lines := fitLines(base, width, height)
	for row := bandTop; row < bandTop+bandH; row++ {
		inner := strings.Repeat(" ", bandW)
		if i := row - modalTop; i >= 0 && i < modalH {
			inner = strings.Repeat(" ", modalLeft) +
				reapplyBackground(padCut(modal[i], modalW), bgSeq) +
				bgSeq + strings.Repeat(" ", bandW-modalLeft-modalW)
		}
		lines[row] = ansi.Cut(lines[row], 0, bandLeft) +
			bgSeq + inner + ansi.ResetStyle +
			ansi.Cut(lines[row], bandLeft+bandW, width)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) backdropSeq() string {
	if o.backdrop == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.backdrop))).String()
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// padCut forces line to exactly width cells.
func padCut(line string, width int) string {
	w := lipgloss.Width(line)
	if w > width {
		return ansi.Cut(line, 0, width)
	}
	return line + strings.Repeat(" ", width-w)
}

// reapplyBackground restores the backdrop after every reset inside line so
// unstyled gaps in the modal keep the backdrop color.
func reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[m", "\x1b[m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

// fitLines pads or cuts base to exactly width x height.
func fitLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, line := range lines {
		lines[i] = padCut(line, width)
	}
	return lines
}
