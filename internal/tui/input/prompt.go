// Package input parses what the user types into the jump prompt.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/rangepick/internal/calendar"
	"github.com/javiermolinar/rangepick/internal/dateutil"
)

// ErrEmptyTarget is returned when the prompt is submitted blank.
var ErrEmptyTarget = errors.New("type a date, a year or a keyword like today")

// Target is where the cursor should go.
type Target struct {
	Date     dateutil.Date
	YearOnly bool // only the year was given; keep the cursor's month and day
}

// Keywords are the relative forms the prompt understands besides plain dates.
var Keywords = []string{
	"today",
	"tomorrow",
	"yesterday",
	"next-week",
	"next-monday",
	"next-tuesday",
	"next-wednesday",
	"next-thursday",
	"next-friday",
	"next-saturday",
	"next-sunday",
}

// ParseTarget resolves input relative to today. A bare number is a year;
// anything else goes through dateutil.ParseRelativeDate.
func ParseTarget(input string, today dateutil.Date) (Target, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Target{}, ErrEmptyTarget
	}

	if year, err := strconv.Atoi(s); err == nil {
		if err := calendar.ValidateYear(year); err != nil {
			return Target{}, err
		}
		d, err := dateutil.NewDate(year, today.Month(), min(today.Day(), dateutil.DaysIn(year, today.Month())))
		if err != nil {
			return Target{}, err
		}
		return Target{Date: d, YearOnly: true}, nil
	}

	d, err := dateutil.ParseRelativeDate(s, today)
	if err != nil {
		return Target{}, fmt.Errorf("jump to %q: %w", s, err)
	}
	return Target{Date: d}, nil
}

// MatchingKeywords returns keywords that start with the current input.
func MatchingKeywords(input string) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	if prefix == "" || strings.ContainsAny(prefix, "0123456789") {
		return nil
	}

	matches := make([]string, 0, len(Keywords))
	for _, kw := range Keywords {
		if strings.HasPrefix(kw, prefix) {
			matches = append(matches, kw)
		}
	}
	return matches
}

// Autocomplete returns the first matching keyword and whether it exists.
func Autocomplete(input string) (string, bool) {
	matches := MatchingKeywords(input)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}
