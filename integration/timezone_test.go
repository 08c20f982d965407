package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

func TestTimezone_DateFromLocalTime(t *testing.T) {
	// 23:30 on Sunday in New York is already Monday in UTC.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	local := time.Date(2024, time.March, 10, 23, 30, 0, 0, ny)

	d := dateutil.FromTime(local)
	if d.String() != "2024-03-10" {
		t.Errorf("FromTime = %s, want 2024-03-10", d)
	}
	if !d.IsWeekend() {
		t.Error("expected the local date to stay a Sunday")
	}
	if utc := dateutil.FromTime(local.UTC()); utc.String() != "2024-03-11" {
		t.Errorf("FromTime(UTC) = %s, want 2024-03-11", utc)
	}
}

func TestTimezone_DSTWeekend(t *testing.T) {
	// US clocks moved forward on 2024-03-10; day arithmetic must not lose a day.
	start := mustParseDate(t, "2024-03-08")
	end := mustParseDate(t, "2024-03-12")

	r, err := rangepick.Classify(start, end)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if r.Len() != 5 {
		t.Errorf("got %d days, want 5", r.Len())
	}
	if len(r.WeekendDays) != 2 || r.WeekendDays[1].String() != "2024-03-10" {
		t.Errorf("weekend days = %v", r.WeekendDays)
	}
	if start.DaysUntil(end) != 4 {
		t.Errorf("DaysUntil = %d, want 4", start.DaysUntil(end))
	}
}
