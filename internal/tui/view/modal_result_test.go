package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

func plainResultStyles() ResultStyles {
	return ResultStyles{
		MetaStyle:         lipgloss.NewStyle(),
		SectionTitleStyle: lipgloss.NewStyle(),
		BodyStyle:         lipgloss.NewStyle(),
		WeekdayStyle:      lipgloss.NewStyle(),
		WeekendStyle:      lipgloss.NewStyle(),
	}
}

func TestRenderResultBody_ListsBothSections(t *testing.T) {
	r, err := rangepick.Classify(dateutil.MustDate(2024, time.March, 4), dateutil.MustDate(2024, time.March, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := RenderResultBody(NewResultModel(r, "5 weekdays, 2 weekend days", 10), plainResultStyles())

	for _, want := range []string{
		"Start Date: 2024-03-04",
		"End Date:   2024-03-10",
		"WEEKDAY DATES (5)",
		"WEEKEND DATES (2)",
		"2024-03-04 Mon   2024-03-05 Tue   2024-03-06 Wed",
		"2024-03-09 Sat   2024-03-10 Sun",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderResultBody_EmptyWeekdays(t *testing.T) {
	sat := dateutil.MustDate(2024, time.March, 9)
	r, err := rangepick.Classify(sat, sat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := RenderResultBody(NewResultModel(r, "", 10), plainResultStyles())
	if !strings.Contains(body, "WEEKDAY DATES (0)\n  none") {
		t.Fatalf("expected empty weekday section:\n%s", body)
	}
}

func TestDateLines_CollapsesOverflow(t *testing.T) {
	start := dateutil.MustDate(2024, time.January, 1)
	dates := make([]dateutil.Date, 0, 30)
	for i := 0; i < 30; i++ {
		dates = append(dates, start.AddDays(i))
	}

	lines := dateLines(dates, 4)
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4: %v", len(lines), lines)
	}
	if lines[3] != "+21 more" {
		t.Fatalf("last line = %q, want %q", lines[3], "+21 more")
	}
}
