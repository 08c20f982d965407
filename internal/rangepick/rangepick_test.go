package rangepick

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
)

func date(y int, m time.Month, d int) dateutil.Date {
	return dateutil.MustDate(y, m, d)
}

func TestClick_Transitions(t *testing.T) {
	tests := []struct {
		name         string
		clicks       []dateutil.Date
		wantState    State
		wantAnchor   dateutil.Date
		wantTerminus dateutil.Date
	}{
		{
			name:      "no clicks is empty",
			wantState: StateEmpty,
		},
		{
			name:       "first click anchors",
			clicks:     []dateutil.Date{date(2024, 3, 10)},
			wantState:  StateAnchored,
			wantAnchor: date(2024, 3, 10),
		},
		{
			name:       "earlier second click restarts",
			clicks:     []dateutil.Date{date(2024, 3, 10), date(2024, 3, 5)},
			wantState:  StateAnchored,
			wantAnchor: date(2024, 3, 5),
		},
		{
			name:         "later click after restart commits",
			clicks:       []dateutil.Date{date(2024, 3, 10), date(2024, 3, 5), date(2024, 3, 20)},
			wantState:    StateCommitted,
			wantAnchor:   date(2024, 3, 5),
			wantTerminus: date(2024, 3, 20),
		},
		{
			name:         "same day commits a one-day range",
			clicks:       []dateutil.Date{date(2024, 3, 9), date(2024, 3, 9)},
			wantState:    StateCommitted,
			wantAnchor:   date(2024, 3, 9),
			wantTerminus: date(2024, 3, 9),
		},
		{
			name:       "click after commit restarts with later date",
			clicks:     []dateutil.Date{date(2024, 3, 1), date(2024, 3, 5), date(2024, 3, 30)},
			wantState:  StateAnchored,
			wantAnchor: date(2024, 3, 30),
		},
		{
			name:       "click after commit restarts with earlier date",
			clicks:     []dateutil.Date{date(2024, 3, 10), date(2024, 3, 15), date(2024, 1, 1)},
			wantState:  StateAnchored,
			wantAnchor: date(2024, 1, 1),
		},
		{
			name:         "range across year boundary",
			clicks:       []dateutil.Date{date(2024, 12, 30), date(2025, 1, 2)},
			wantState:    StateCommitted,
			wantAnchor:   date(2024, 12, 30),
			wantTerminus: date(2025, 1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sel Selection
			for _, d := range tt.clicks {
				sel = Click(sel, d)
			}

			if sel.State() != tt.wantState {
				t.Fatalf("state = %v, want %v", sel.State(), tt.wantState)
			}
			anchor, hasAnchor := sel.Anchor()
			if hasAnchor != (tt.wantState != StateEmpty) {
				t.Errorf("hasAnchor = %v in state %v", hasAnchor, tt.wantState)
			}
			if anchor != tt.wantAnchor {
				t.Errorf("anchor = %v, want %v", anchor, tt.wantAnchor)
			}
			terminus, hasTerminus := sel.Terminus()
			if hasTerminus != (tt.wantState == StateCommitted) {
				t.Errorf("hasTerminus = %v in state %v", hasTerminus, tt.wantState)
			}
			if hasTerminus && terminus != tt.wantTerminus {
				t.Errorf("terminus = %v, want %v", terminus, tt.wantTerminus)
			}
			if hasTerminus && terminus.Before(anchor) {
				t.Errorf("terminus %v before anchor %v", terminus, anchor)
			}
		})
	}
}

func TestClick_DoesNotMutateInput(t *testing.T) {
	sel := Click(Selection{}, date(2024, 3, 10))
	_ = Click(sel, date(2024, 3, 20))

	if sel.State() != StateAnchored {
		t.Errorf("input selection changed state to %v", sel.State())
	}
}

func TestSelection_Contains(t *testing.T) {
	sel := Click(Click(Selection{}, date(2024, 3, 5)), date(2024, 3, 7))

	for _, tt := range []struct {
		d    dateutil.Date
		want bool
	}{
		{date(2024, 3, 4), false},
		{date(2024, 3, 5), true},
		{date(2024, 3, 6), true},
		{date(2024, 3, 7), true},
		{date(2024, 3, 8), false},
	} {
		if got := sel.Contains(tt.d); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}

	pending := Click(Selection{}, date(2024, 3, 5))
	if pending.Contains(date(2024, 3, 5)) {
		t.Error("anchored selection should not contain any date")
	}
}

func TestClassify_FullWeek(t *testing.T) {
	got, err := Classify(date(2024, 3, 4), date(2024, 3, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantWeekdays := []dateutil.Date{
		date(2024, 3, 4), date(2024, 3, 5), date(2024, 3, 6), date(2024, 3, 7), date(2024, 3, 8),
	}
	wantWeekend := []dateutil.Date{date(2024, 3, 9), date(2024, 3, 10)}

	assertDates(t, "weekdays", got.Weekdays, wantWeekdays)
	assertDates(t, "weekend", got.WeekendDays, wantWeekend)
}

func TestClassify_SingleSaturday(t *testing.T) {
	sat := date(2024, 3, 9)
	got, err := Classify(sat, sat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Weekdays) != 0 {
		t.Errorf("weekdays = %v, want none", got.Weekdays)
	}
	assertDates(t, "weekend", got.WeekendDays, []dateutil.Date{sat})
}

func TestClassify_LeapDay(t *testing.T) {
	got, err := Classify(date(2024, 2, 28), date(2024, 3, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Wed 28, Thu 29, Fri 1
	assertDates(t, "weekdays", got.Weekdays, []dateutil.Date{
		date(2024, 2, 28), date(2024, 2, 29), date(2024, 3, 1),
	})
	if len(got.WeekendDays) != 0 {
		t.Errorf("weekend = %v, want none", got.WeekendDays)
	}
}

func TestClassify_EndBeforeStart(t *testing.T) {
	_, err := Classify(date(2024, 3, 10), date(2024, 3, 9))
	if !errors.Is(err, dateutil.ErrEndDateBeforeStart) {
		t.Errorf("got error %v, want %v", err, dateutil.ErrEndDateBeforeStart)
	}
}

func TestClassify_Properties(t *testing.T) {
	ranges := []struct{ start, end dateutil.Date }{
		{date(2024, 1, 1), date(2024, 12, 31)},
		{date(2023, 12, 25), date(2024, 1, 7)},
		{date(1999, 12, 31), date(2000, 3, 1)},
		{date(2100, 2, 27), date(2100, 3, 2)},
		{date(2024, 3, 3), date(2024, 3, 3)},
		{date(2024, 6, 1), date(2024, 6, 2)},
		{date(1700, 1, 1), date(2024, 1, 1)},
		{date(9999, 12, 1), date(9999, 12, 31)},
	}

	for _, rg := range ranges {
		t.Run(rg.start.String()+"_"+rg.end.String(), func(t *testing.T) {
			got, err := Classify(rg.start, rg.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			wantLen := rg.start.DaysUntil(rg.end) + 1
			if got.Len() != wantLen {
				t.Fatalf("Len() = %d, want %d", got.Len(), wantLen)
			}

			for _, d := range got.Weekdays {
				if d.IsWeekend() {
					t.Errorf("%v (%v) classified as weekday", d, d.Weekday())
				}
			}
			for _, d := range got.WeekendDays {
				if !d.IsWeekend() {
					t.Errorf("%v (%v) classified as weekend", d, d.Weekday())
				}
			}

			all := got.All()
			for i, d := range all {
				if want := rg.start.AddDays(i); d != want {
					t.Fatalf("merged[%d] = %v, want %v", i, d, want)
				}
			}

			wd, we, err := CountWeekdays(rg.start, rg.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wd != len(got.Weekdays) || we != len(got.WeekendDays) {
				t.Errorf("CountWeekdays = (%d, %d), want (%d, %d)", wd, we, len(got.Weekdays), len(got.WeekendDays))
			}
		})
	}
}

func TestClassify_Centuries(t *testing.T) {
	start, end := date(1700, 1, 1), date(2024, 1, 1)

	got, err := Classify(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Weekdays) != 84527 || len(got.WeekendDays) != 33812 {
		t.Errorf("got %d weekdays and %d weekend days, want 84527 and 33812", len(got.Weekdays), len(got.WeekendDays))
	}
	if last := got.Weekdays[len(got.Weekdays)-1]; last != end {
		t.Errorf("classification stopped at %v, want %v", last, end)
	}
}

func TestClassify_EndOfCalendar(t *testing.T) {
	last := date(9999, 12, 31)

	got, err := Classify(last.AddDays(-6), last)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all := got.All()
	if all[len(all)-1] != last {
		t.Errorf("last classified day = %v, want %v", all[len(all)-1], last)
	}
	for _, d := range all {
		if d.Year() > dateutil.MaxYear {
			t.Errorf("classified %v beyond the calendar", d)
		}
	}
}

func TestCountWeekdays_WholeCalendar(t *testing.T) {
	weekdays, weekendDays, err := CountWeekdays(date(1, 1, 1), date(9999, 12, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weekdays != 2608615 || weekendDays != 1043444 {
		t.Errorf("CountWeekdays = (%d, %d), want (2608615, 1043444)", weekdays, weekendDays)
	}
}

func TestClassifier_ApplyBeforeCommit(t *testing.T) {
	notified := false
	c := NewClassifier(WithObserver(ObserverFunc(func(ClassifiedRange) { notified = true })))

	if _, err := c.OnApplyRequested(); !errors.Is(err, ErrRangeNotCommitted) {
		t.Errorf("empty: got error %v, want %v", err, ErrRangeNotCommitted)
	}

	c.OnDayClicked(date(2024, 3, 10))
	if _, err := c.OnApplyRequested(); !errors.Is(err, ErrRangeNotCommitted) {
		t.Errorf("anchored: got error %v, want %v", err, ErrRangeNotCommitted)
	}
	if notified {
		t.Error("observer notified without a committed range")
	}
}

func TestClassifier_Apply(t *testing.T) {
	var applied []ClassifiedRange
	c := NewClassifier(
		WithObserver(ObserverFunc(func(r ClassifiedRange) { applied = append(applied, r) })),
		WithLogger(nil),
	)

	c.OnDayClicked(date(2024, 3, 10))
	c.OnDayClicked(date(2024, 3, 5))
	c.OnDayClicked(date(2024, 3, 20))

	got, err := c.OnApplyRequested()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Start != date(2024, 3, 5) || got.End != date(2024, 3, 20) {
		t.Errorf("range = %v..%v, want 2024-03-05..2024-03-20", got.Start, got.End)
	}
	if len(got.Weekdays) != 12 || len(got.WeekendDays) != 4 {
		t.Errorf("got %d weekdays and %d weekend days, want 12 and 4", len(got.Weekdays), len(got.WeekendDays))
	}
	if len(applied) != 1 {
		t.Fatalf("observer called %d times, want 1", len(applied))
	}

	// Applying again re-emits the same committed range.
	if _, err := c.OnApplyRequested(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(applied) != 2 {
		t.Errorf("observer called %d times, want 2", len(applied))
	}
}

func TestClassifier_Reset(t *testing.T) {
	c := NewClassifier()
	c.OnDayClicked(date(2024, 3, 5))
	c.OnDayClicked(date(2024, 3, 6))
	c.Reset()

	if c.Selection().State() != StateEmpty {
		t.Errorf("state after reset = %v, want %v", c.Selection().State(), StateEmpty)
	}
}

func assertDates(t *testing.T, label string, got, want []dateutil.Date) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", label, i, got[i], want[i])
		}
	}
}
