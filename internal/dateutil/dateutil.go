// Package dateutil provides a calendar date type plus parsing and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDate        = errors.New("invalid calendar date")
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
)

// Supported year range. Years outside it cannot be rendered as YYYY.
const (
	MinYear = 1
	MaxYear = 9999
)

const (
	layout        = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Date is a calendar day with no time-of-day component.
// The zero value is not a valid date; see IsZero.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for year, month and day, or ErrInvalidDate when
// any component is out of range.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on invalid input.
// Intended for constants and tests.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d. UTC avoids DST gaps when doing day arithmetic.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	return IsWeekendDay(d.Weekday())
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of days from d to other (negative if other is earlier).
// It works on Unix seconds because a time.Duration overflows past 292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d == other }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsWeekendDay reports whether wd is Saturday or Sunday.
func IsWeekendDay(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// DateRange represents a validated, inclusive date range.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange parses both bounds with ParseRelativeDate against relativeTo.
// An empty endDate means a one-day range. It returns ErrEndDateBeforeStart
// when the end precedes the start.
func NewDateRange(startDate, endDate string, relativeTo Date) (*DateRange, error) {
	start, err := ParseRelativeDate(startDate, relativeTo)
	if err != nil {
		return nil, fmt.Errorf("start date %q: %w", startDate, err)
	}

	end := start
	if strings.TrimSpace(endDate) != "" {
		end, err = ParseRelativeDate(endDate, relativeTo)
		if err != nil {
			return nil, fmt.Errorf("end date %q: %w", endDate, err)
		}
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%s → %s: %w", start, end, ErrEndDateBeforeStart)
	}

	return &DateRange{Start: start, End: end}, nil
}

// Days returns the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	d := FromTime(t)
	if d.year < MinYear || d.year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, d.year)
	}
	return d, nil
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week"
//
// All inputs are case-insensitive.
// Returns ErrInvalidDateFormat for unrecognized input and ErrInvalidDate when
// the result falls outside MinYear..MaxYear.
func ParseRelativeDate(s string, relativeTo Date) (Date, error) {
	d, err := parseRelative(strings.ToLower(strings.TrimSpace(s)), relativeTo)
	if err != nil {
		return Date{}, err
	}
	// Keywords near the ends of the calendar can step out of it.
	if d.year < MinYear || d.year > MaxYear {
		return Date{}, fmt.Errorf("%w: %q from %s is outside years %d-%d", ErrInvalidDate, s, relativeTo, MinYear, MaxYear)
	}
	return d, nil
}

func parseRelative(input string, relativeTo Date) (Date, error) {
	switch input {
	case "", "today":
		return relativeTo, nil
	case "tomorrow":
		return relativeTo.AddDays(1), nil
	case "yesterday":
		return relativeTo.AddDays(-1), nil
	case "next-week":
		return relativeTo.AddDays(7), nil
	}

	if strings.HasPrefix(input, "next-") {
		weekdayName := strings.TrimPrefix(input, "next-")
		if targetDay, ok := weekdayMap[weekdayName]; ok {
			return nextWeekday(relativeTo, targetDay), nil
		}
		return Date{}, ErrInvalidDateFormat
	}

	if targetDay, ok := weekdayMap[input]; ok {
		return nextWeekday(relativeTo, targetDay), nil
	}

	return ParseDate(input)
}

// nextWeekday returns the next occurrence of the given weekday after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(today Date, target time.Weekday) Date {
	daysUntil := int(target) - int(today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return today.AddDays(daysUntil)
}
