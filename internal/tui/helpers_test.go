package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

func TestSelectionText(t *testing.T) {
	tests := []struct {
		name   string
		clicks []dateutil.Date
		want   string
	}{
		{"empty", nil, "Click a start date"},
		{"anchored", []dateutil.Date{testToday}, "Start 2024-03-04 · pick an end date"},
		{
			"committed",
			[]dateutil.Date{testToday, testToday.AddDays(6)},
			"2024-03-04 → 2024-03-10 · 5 weekdays, 2 weekend days · press a to apply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			for _, d := range tt.clicks {
				m.classifier.OnDayClicked(d)
			}
			if got := m.selectionText(); got != tt.want {
				t.Errorf("selectionText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusMsgOrDefault(t *testing.T) {
	m := newTestModel(t)
	if got := m.statusMsgOrDefault(); got != "" {
		t.Errorf("status = %q, want empty", got)
	}

	m = press(t, m, "enter")
	m = press(t, m, "enter")
	m = press(t, m, "a")
	m = press(t, m, "esc")
	if got := m.statusMsgOrDefault(); !strings.HasPrefix(got, "Last apply: 2024-03-04 → 2024-03-04") {
		t.Errorf("status = %q, want last apply summary", got)
	}

	m.statusMsg = "busy"
	if got := m.statusMsgOrDefault(); got != "busy" {
		t.Errorf("status = %q, want busy", got)
	}
}

func TestHelpTextPerMode(t *testing.T) {
	m := newTestModel(t)
	normal := m.helpText()

	m.mode = ModePrompt
	if got := m.helpText(); got == normal || !strings.Contains(got, "esc cancel") {
		t.Errorf("prompt help = %q", got)
	}
	m.mode = ModeModal
	if got := m.helpText(); got != "esc close" {
		t.Errorf("modal help = %q", got)
	}
}

func TestSetYear_ClampsCursorDay(t *testing.T) {
	m := newTestModel(t)
	m.moveCursorTo(dateutil.MustDate(2024, time.February, 29), "test")

	m.setYear(2021)
	if want := dateutil.MustDate(2021, time.February, 28); m.cursor != want {
		t.Errorf("cursor = %s, want %s", m.cursor, want)
	}
	if m.grid.Year != 2021 {
		t.Errorf("grid year = %d, want 2021", m.grid.Year)
	}
}

func TestDateAt(t *testing.T) {
	m := newTestModel(t)

	// March 2024 is the third block of the first row; March 1 is a Friday.
	x, y := dayPos(m, 0, 2, 0, 5)
	d, ok := m.dateAt(x, y)
	if !ok {
		t.Fatal("expected a date")
	}
	if want := dateutil.MustDate(2024, time.March, 1); d != want {
		t.Errorf("dateAt = %s, want %s", d, want)
	}

	// Sixth week row of March 2024 holds only March 31.
	x, y = dayPos(m, 0, 2, 5, 1)
	if _, ok := m.dateAt(x, y); ok {
		t.Error("expected no date after March 31")
	}
}
