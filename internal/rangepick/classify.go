package rangepick

import (
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// ClassifiedRange partitions every day of [Start, End] into weekdays and
// weekend days. Both slices are in ascending order.
type ClassifiedRange struct {
	Start       dateutil.Date   `json:"start"`
	End         dateutil.Date   `json:"end"`
	Weekdays    []dateutil.Date `json:"weekdays"`
	WeekendDays []dateutil.Date `json:"weekend_days"`
}

// Len returns the number of days in the range.
func (r ClassifiedRange) Len() int {
	return len(r.Weekdays) + len(r.WeekendDays)
}

// All merges both partitions back into the contiguous ascending sequence.
func (r ClassifiedRange) All() []dateutil.Date {
	all := make([]dateutil.Date, 0, r.Len())
	i, j := 0, 0
	for i < len(r.Weekdays) && j < len(r.WeekendDays) {
		if r.Weekdays[i].Before(r.WeekendDays[j]) {
			all = append(all, r.Weekdays[i])
			i++
		} else {
			all = append(all, r.WeekendDays[j])
			j++
		}
	}
	all = append(all, r.Weekdays[i:]...)
	return append(all, r.WeekendDays[j:]...)
}

// Classify walks [start, end] one day at a time and sorts each day into
// weekdays or weekend days. It returns dateutil.ErrEndDateBeforeStart when
// end precedes start.
func Classify(start, end dateutil.Date) (ClassifiedRange, error) {
	if end.Before(start) {
		return ClassifiedRange{}, dateutil.ErrEndDateBeforeStart
	}

	days := start.DaysUntil(end) + 1
	weekendCap := days/7*2 + 2
	result := ClassifiedRange{
		Start:       start,
		End:         end,
		Weekdays:    make([]dateutil.Date, 0, days),
		WeekendDays: make([]dateutil.Date, 0, min(weekendCap, days)),
	}

	d, wd := start, start.Weekday()
	for i := range days {
		// Advance before each day but the first so the walk never steps past end.
		if i > 0 {
			d = d.AddDays(1)
		}
		if dateutil.IsWeekendDay(wd) {
			result.WeekendDays = append(result.WeekendDays, d)
		} else {
			result.Weekdays = append(result.Weekdays, d)
		}
		wd = (wd + 1) % 7
	}

	return result, nil
}

// CountWeekdays returns the number of weekdays and weekend days in [start, end]
// without materializing the dates.
func CountWeekdays(start, end dateutil.Date) (weekdays, weekendDays int, err error) {
	if end.Before(start) {
		return 0, 0, dateutil.ErrEndDateBeforeStart
	}
	days := start.DaysUntil(end) + 1
	weeks, rest := days/7, days%7
	weekendDays = weeks * 2
	wd := start.Weekday()
	for i := 0; i < rest; i++ {
		if dateutil.IsWeekendDay(wd) {
			weekendDays++
		}
		wd = (wd + 1) % 7
	}
	return days - weekendDays, weekendDays, nil
}
