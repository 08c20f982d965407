package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// ICSProductID identifies the generator in exported calendars.
const ICSProductID = "-//rangepick//Date Range Picker//EN"

// nowFunc is swapped in tests to get a stable DTSTAMP.
var nowFunc = time.Now

// ToICS builds a calendar with one all-day event per day of r.
func ToICS(r rangepick.ClassifiedRange) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ICSProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText("X-WR-CALNAME", fmt.Sprintf("Range %s to %s", r.Start, r.End))

	stamp := nowFunc().UTC()
	for _, d := range r.All() {
		cal.Children = append(cal.Children, dayEvent(d, stamp).Component)
	}
	return cal
}

func dayEvent(d dateutil.Date, stamp time.Time) *ical.Event {
	summary := "Weekday"
	if d.IsWeekend() {
		summary = "Weekend"
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@rangepick", d, summary))
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetText(ical.PropDescription, fmt.Sprintf("%s is a %s", d, d.Weekday()))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	event.Props.SetDate(ical.PropDateTimeStart, d.Time())
	event.Props.SetDate(ical.PropDateTimeEnd, d.AddDays(1).Time())
	return event
}

// WriteICS encodes r as an iCalendar stream.
func WriteICS(w io.Writer, r rangepick.ClassifiedRange) error {
	if err := ical.NewEncoder(w).Encode(ToICS(r)); err != nil {
		return fmt.Errorf("encoding ics: %w", err)
	}
	return nil
}
