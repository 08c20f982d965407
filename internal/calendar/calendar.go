// Package calendar builds the year and month grids the picker renders.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/rangepick/internal/dateutil"
	"github.com/javiermolinar/rangepick/internal/rangepick"
)

// ErrInvalidYear is returned for years that cannot be shown as four digits.
var ErrInvalidYear = errors.New("year must be between 1 and 9999")

// DaysPerWeek is the number of columns in a month grid.
const DaysPerWeek = 7

// WeekdayHeaders labels the grid columns. Weeks start on Sunday.
var WeekdayHeaders = [DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Kind describes how a day cell is rendered.
type Kind int

const (
	KindDay             Kind = iota // plain weekday
	KindWeekend                     // Saturday or Sunday outside a committed range
	KindSelected                    // weekday inside the committed range
	KindSelectedWeekend             // weekend day inside the committed range
	KindAnchor                      // anchor of a pending range
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDay:
		return "day"
	case KindWeekend:
		return "weekend"
	case KindSelected:
		return "selected"
	case KindSelectedWeekend:
		return "selected-weekend"
	case KindAnchor:
		return "anchor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CellKind classifies d for display against the current selection.
func CellKind(d dateutil.Date, sel rangepick.Selection) Kind {
	if sel.Contains(d) {
		if d.IsWeekend() {
			return KindSelectedWeekend
		}
		return KindSelected
	}
	if anchor, ok := sel.Anchor(); ok && sel.State() == rangepick.StateAnchored && anchor == d {
		return KindAnchor
	}
	if d.IsWeekend() {
		return KindWeekend
	}
	return KindDay
}

// ValidateYear checks that year is in the supported range.
func ValidateYear(year int) error {
	if year < dateutil.MinYear || year > dateutil.MaxYear {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return nil
}

// ClampYear forces year into the supported range.
func ClampYear(year int) int {
	return min(max(year, dateutil.MinYear), dateutil.MaxYear)
}

// MonthAnchors returns the first day of each month of year.
func MonthAnchors(year int) ([]dateutil.Date, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	anchors := make([]dateutil.Date, 0, 12)
	for m := time.January; m <= time.December; m++ {
		anchors = append(anchors, dateutil.MustDate(year, m, 1))
	}
	return anchors, nil
}

// YearOptions returns the n years ending at current, most recent first.
func YearOptions(current, n int) []int {
	years := make([]int, 0, n)
	for i := 0; i < n; i++ {
		y := current - i
		if y < dateutil.MinYear {
			break
		}
		years = append(years, y)
	}
	return years
}
